package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) LinkActiveSchedule(ctx context.Context, userID, scheduleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, scheduleID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ClearActiveSchedule(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) Create(ctx context.Context, s *model.UserSchedule) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.UserSchedule, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*model.UserSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) GetByIDWithTasks(ctx context.Context, id uuid.UUID) (*model.UserSchedule, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*model.UserSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockScheduleRepo) AddScore(ctx context.Context, id uuid.UUID, delta int) error {
	return m.Called(ctx, id, delta).Error(0)
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockScheduleRepo) CreateTasks(ctx context.Context, tasks []model.UserTask) error {
	return m.Called(ctx, tasks).Error(0)
}

func (m *mockScheduleRepo) DeleteTasks(ctx context.Context, scheduleID uuid.UUID) error {
	return m.Called(ctx, scheduleID).Error(0)
}

type mockTaskRepo struct{ mock.Mock }

func (m *mockTaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.UserTask, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*model.UserTask); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) MarkStarted(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	return m.Called(ctx, id, startedAt).Error(0)
}

func (m *mockTaskRepo) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time, durationMinutes *int) error {
	return m.Called(ctx, id, completedAt, durationMinutes).Error(0)
}

type mockRankingRepo struct{ mock.Mock }

func (m *mockRankingRepo) Create(ctx context.Context, rk *model.Ranking) error {
	return m.Called(ctx, rk).Error(0)
}

func (m *mockRankingRepo) ListWithCursor(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Ranking, error) {
	args := m.Called(ctx, afterCreatedAt, afterID, limit, timeDesc)
	if items, ok := args.Get(0).([]model.Ranking); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRankingRepo) Top(ctx context.Context, limit int) ([]model.Ranking, error) {
	args := m.Called(ctx, limit)
	if items, ok := args.Get(0).([]model.Ranking); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoleModelService struct{ mock.Mock }

func (m *mockRoleModelService) Get(ctx context.Context, id uuid.UUID) (*model.RoleModel, error) {
	args := m.Called(ctx, id)
	if rm, ok := args.Get(0).(*model.RoleModel); ok {
		return rm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleModelService) List(ctx context.Context) ([]model.RoleModel, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]model.RoleModel); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTextGenerator struct{ mock.Mock }

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
