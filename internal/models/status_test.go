package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseStatus("closed")
	assert.Error(t, err)
}

func TestValidateTransition(t *testing.T) {
	testCases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusUnassigned, StatusAssigned, true},
		{StatusUnassigned, StatusResolved, true},
		{StatusUnassigned, StatusRejected, true},
		{StatusUnassigned, StatusInProgress, false},
		{StatusAssigned, StatusInProgress, true},
		{StatusAssigned, StatusUnassigned, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusAssigned, false},
		{StatusResolved, StatusResolved, true},
		{StatusResolved, StatusInProgress, false},
		{StatusRejected, StatusAssigned, false},
		{StatusAssigned, Status("archived"), false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			err := ValidateTransition(tc.from, tc.to)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusAssigned.IsTerminal())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusRejected.IsActive())
	assert.False(t, Status("bogus").IsActive())
}

func TestPointIsValid(t *testing.T) {
	assert.True(t, Point{Longitude: 30.3, Latitude: 59.9}.IsValid())
	assert.False(t, Point{Longitude: 181, Latitude: 0}.IsValid())
	assert.False(t, Point{Longitude: 0, Latitude: -90.5}.IsValid())
}

func TestReleasesWorkload(t *testing.T) {
	officeID := uuid.New()
	assigned := &Complaint{AssignedOfficeID: &officeID}
	unrouted := &Complaint{}
	duplicate := &Complaint{AssignedOfficeID: &officeID, DuplicateInfo: DuplicateInfo{IsDuplicate: true}}

	assert.True(t, ReleasesWorkload(StatusAssigned, StatusResolved, assigned))
	assert.True(t, ReleasesWorkload(StatusInProgress, StatusRejected, assigned))
	assert.False(t, ReleasesWorkload(StatusResolved, StatusResolved, assigned))
	assert.False(t, ReleasesWorkload(StatusResolved, StatusRejected, assigned))
	assert.False(t, ReleasesWorkload(StatusAssigned, StatusInProgress, assigned))
	assert.False(t, ReleasesWorkload(StatusUnassigned, StatusResolved, unrouted))
	assert.False(t, ReleasesWorkload(StatusUnassigned, StatusRejected, duplicate))
}
