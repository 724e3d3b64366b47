package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"gorm.io/gorm"
)

type RoleModelRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.RoleModel, error)
	List(ctx context.Context) ([]model.RoleModel, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, roleModels []model.RoleModel) error
}

type roleModelRepo struct{ db *gorm.DB }

func NewRoleModelRepo(db *gorm.DB) RoleModelRepo {
	return &roleModelRepo{db: db}
}

func (r *roleModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.RoleModel, error) {
	var rm model.RoleModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rm).Error
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *roleModelRepo) List(ctx context.Context) ([]model.RoleModel, error) {
	var items []model.RoleModel
	return items, r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
}

func (r *roleModelRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	return n, r.db.WithContext(ctx).Model(&model.RoleModel{}).Count(&n).Error
}

func (r *roleModelRepo) CreateBatch(ctx context.Context, roleModels []model.RoleModel) error {
	if len(roleModels) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&roleModels).Error
}
