package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"gorm.io/gorm"
)

type TaskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserTask, error)
	MarkStarted(ctx context.Context, id uuid.UUID, startedAt time.Time) error
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time, durationMinutes *int) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.UserTask, error) {
	var t model.UserTask
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) MarkStarted(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.UserTask{}).
		Where("id = ?", id).
		Update("started_at", startedAt).Error
}

func (r *taskRepo) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time, durationMinutes *int) error {
	updates := map[string]interface{}{
		"is_completed": true,
		"completed_at": completedAt,
	}
	if durationMinutes != nil {
		updates["completed_duration"] = *durationMinutes
	}
	return r.db.WithContext(ctx).
		Model(&model.UserTask{}).
		Where("id = ?", id).
		Updates(updates).Error
}
