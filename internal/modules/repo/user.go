package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// LinkActiveSchedule points the user at a new schedule header, but only
	// if no header is currently linked. Returns false when the conditional
	// update matched no row, which means the user lost a confirm race (or
	// does not exist).
	LinkActiveSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (bool, error)
	ClearActiveSchedule(ctx context.Context, userID uuid.UUID) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) LinkActiveSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND active_schedule_id IS NULL", userID).
		Update("active_schedule_id", scheduleID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *userRepo) ClearActiveSchedule(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Update("active_schedule_id", nil).Error
}
