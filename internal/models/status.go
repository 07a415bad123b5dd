package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Status - статус обращения. Набор значений закрыт.
type Status string

const (
	StatusUnassigned Status = "unassigned"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusRejected   Status = "rejected"
)

// allowedTransitions - граф переходов. Переход в тот же статус разрешен всегда.
var allowedTransitions = map[Status][]Status{
	StatusUnassigned: {StatusAssigned, StatusResolved, StatusRejected},
	StatusAssigned:   {StatusInProgress, StatusResolved, StatusRejected},
	StatusInProgress: {StatusResolved, StatusRejected},
	StatusResolved:   nil,
	StatusRejected:   nil,
}

// ParseStatus возвращает ошибку для неизвестного значения
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if _, ok := allowedTransitions[status]; !ok {
		return "", fmt.Errorf("unknown complaint status %q", s)
	}
	return status, nil
}

func (s Status) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal - resolved и rejected
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// IsActive - обращение еще удерживает нагрузку офиса
func (s Status) IsActive() bool {
	return s.IsValid() && !s.IsTerminal()
}

// ValidateTransition проверяет переход from -> to.
// unassigned может сразу закрываться в resolved/rejected.
func ValidateTransition(from, to Status) error {
	if !to.IsValid() {
		return fmt.Errorf("unknown complaint status %q", to)
	}
	if from == to {
		return nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("transition from %q to %q is not allowed", from, to)
}

// ReleasesWorkload - переход освобождает нагрузку офиса только из активного статуса
// в терминальный. Дубликаты нагрузку не занимали, поэтому и не освобождают.
func ReleasesWorkload(previous, next Status, complaint *Complaint) bool {
	return !previous.IsTerminal() &&
		next.IsTerminal() &&
		complaint.AssignedOfficeID != nil &&
		!complaint.DuplicateInfo.IsDuplicate
}

// StatusGuard вызывается репозиторием на заблокированной строке внутри транзакции.
// Возвращает офис, нагрузку которого нужно уменьшить в той же транзакции, или nil.
// Ошибка отменяет транзакцию.
type StatusGuard func(current *Complaint) (releaseOfficeID *uuid.UUID, err error)

// StatusChange - результат примененного перехода
type StatusChange struct {
	Complaint        *Complaint
	Previous         Status
	ReleasedOfficeID *uuid.UUID
}
