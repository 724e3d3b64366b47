package service

import (
	"errors"
	"fmt"
)

// Service layer errors. Handlers map these onto the HTTP contract: input and
// conflict errors become 400s, everything else a 500.
var (
	ErrActiveScheduleExists = errors.New("you already have an active schedule")
	ErrNoActiveSchedule     = errors.New("no active schedule")
	ErrRoleModelNotFound    = errors.New("role model not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("user with this email already exists")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
)

// PersistenceError is a data-store write failure partway through the confirm
// flow, surfaced after the compensating deletes have been attempted.
type PersistenceError struct {
	Step string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to save schedule at step %s: %v", e.Step, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
