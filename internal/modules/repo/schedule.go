package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"gorm.io/gorm"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s *model.UserSchedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserSchedule, error)
	// GetByIDWithTasks preloads the task rows ordered by display_order.
	GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*model.UserSchedule, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	AddScore(ctx context.Context, id uuid.UUID, delta int) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateTasks(ctx context.Context, tasks []model.UserTask) error
	DeleteTasks(ctx context.Context, scheduleID uuid.UUID) error
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepo(db *gorm.DB) ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, s *model.UserSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *scheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.UserSchedule, error) {
	var s model.UserSchedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*model.UserSchedule, error) {
	var s model.UserSchedule
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.UserSchedule{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *scheduleRepo) AddScore(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&model.UserSchedule{}).
		Where("id = ?", id).
		Update("total_score", gorm.Expr("total_score + ?", delta)).Error
}

func (r *scheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserSchedule{}).Error
}

func (r *scheduleRepo) CreateTasks(ctx context.Context, tasks []model.UserTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

func (r *scheduleRepo) DeleteTasks(ctx context.Context, scheduleID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_schedule_id = ?", scheduleID).
		Delete(&model.UserTask{}).Error
}
