package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const taskCompletionPoints = 10

type TaskService interface {
	Start(ctx context.Context, taskID uuid.UUID) (*StartTaskOutput, error)
	Complete(ctx context.Context, taskID uuid.UUID) (*CompleteTaskOutput, error)
}

type taskService struct {
	tasks     repo.TaskRepo
	schedules repo.ScheduleRepo
	log       *zap.Logger

	// now is swapped out in tests.
	now func() time.Time
}

func NewTaskService(tasks repo.TaskRepo, schedules repo.ScheduleRepo, log *zap.Logger) TaskService {
	return &taskService{tasks: tasks, schedules: schedules, log: log, now: time.Now}
}

type StartTaskOutput struct {
	TaskID    uuid.UUID `json:"taskId"`
	StartedAt time.Time `json:"startedAt"`
}

func (s *taskService) Start(ctx context.Context, taskID uuid.UUID) (*StartTaskOutput, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted {
		return nil, ErrTaskAlreadyCompleted
	}

	startedAt := s.now()
	if err := s.tasks.MarkStarted(ctx, taskID, startedAt); err != nil {
		return nil, err
	}
	return &StartTaskOutput{TaskID: taskID, StartedAt: startedAt}, nil
}

type CompleteTaskOutput struct {
	TaskID            uuid.UUID `json:"taskId"`
	PointsAwarded     int       `json:"pointsAwarded"`
	ScheduleTotal     int       `json:"scheduleTotal"`
	CompletedDuration *int      `json:"completedDuration,omitempty"`
}

// Complete marks the task done and credits the schedule with a fixed reward.
// Duration is recorded only when the task was explicitly started.
func (s *taskService) Complete(ctx context.Context, taskID uuid.UUID) (*CompleteTaskOutput, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted {
		return nil, ErrTaskAlreadyCompleted
	}

	completedAt := s.now()
	var duration *int
	if task.StartedAt != nil {
		minutes := int(completedAt.Sub(*task.StartedAt).Minutes())
		if minutes < 0 {
			minutes = 0
		}
		duration = &minutes
	}

	if err := s.tasks.MarkCompleted(ctx, taskID, completedAt, duration); err != nil {
		return nil, err
	}
	if err := s.schedules.AddScore(ctx, task.UserScheduleID, taskCompletionPoints); err != nil {
		// The task row is already completed; surface the score failure so
		// callers do not believe points were credited.
		s.log.Error("failed to credit schedule score",
			zap.String("task_id", taskID.String()),
			zap.String("schedule_id", task.UserScheduleID.String()),
			zap.Error(err))
		return nil, err
	}

	header, err := s.schedules.GetByID(ctx, task.UserScheduleID)
	if err != nil {
		return nil, err
	}

	return &CompleteTaskOutput{
		TaskID:            taskID,
		PointsAwarded:     taskCompletionPoints,
		ScheduleTotal:     header.TotalScore,
		CompletedDuration: duration,
	}, nil
}

func (s *taskService) getTask(ctx context.Context, taskID uuid.UUID) (*model.UserTask, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}
