package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/serializer"
	"github.com/modelday/modelday/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRoleModelService struct {
	mock.Mock
}

func (m *MockRoleModelService) Get(ctx context.Context, id uuid.UUID) (*model.RoleModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RoleModel), args.Error(1)
}

func (m *MockRoleModelService) List(ctx context.Context) ([]model.RoleModel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RoleModel), args.Error(1)
}

func TestRoleModelHandler_ListRoleModels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	svc := &MockRoleModelService{}
	svc.On("List", mock.Anything).Return([]model.RoleModel{
		{ID: uuid.New(), Name: "Marcus Aurelius"},
		{ID: uuid.New(), Name: "Marie Curie"},
	}, nil)

	h := NewRoleModelHandler(svc)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/role-models", h.ListRoleModels)

	req := httptest.NewRequest(http.MethodGet, "/role-models", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp serializer.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	items, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 2)
}

func TestRoleModelHandler_GetRoleModel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	id := uuid.New()

	tests := []struct {
		name           string
		idParam        string
		setup          func(*MockRoleModelService)
		expectedStatus int
	}{
		{
			name:    "success",
			idParam: id.String(),
			setup: func(svc *MockRoleModelService) {
				svc.On("Get", mock.Anything, id).Return(&model.RoleModel{ID: id, Name: "Marie Curie"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - invalid id",
			idParam:        "nope",
			setup:          func(svc *MockRoleModelService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "error - not found",
			idParam: id.String(),
			setup: func(svc *MockRoleModelService) {
				svc.On("Get", mock.Anything, id).Return(nil, service.ErrRoleModelNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockRoleModelService{}
			tt.setup(svc)

			h := NewRoleModelHandler(svc)

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.GET("/role-models/:id", h.GetRoleModel)

			req := httptest.NewRequest(http.MethodGet, "/role-models/"+tt.idParam, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
