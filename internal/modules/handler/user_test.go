package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
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

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Signup(ctx context.Context, in service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Signin(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestUserHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	tests := []struct {
		name           string
		body           string
		setup          func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"ada@example.com","name":"Ada"}`,
			setup: func(svc *MockUserService) {
				svc.On("Signup", mock.Anything, service.SignupInput{Email: "ada@example.com", Name: "Ada"}).
					Return(&model.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - invalid email",
			body:           `{"email":"not-an-email","name":"Ada"}`,
			setup:          func(svc *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - missing name",
			body:           `{"email":"ada@example.com"}`,
			setup:          func(svc *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error - email taken",
			body: `{"email":"ada@example.com","name":"Ada"}`,
			setup: func(svc *MockUserService) {
				svc.On("Signup", mock.Anything, mock.Anything).Return(nil, service.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setup(svc)

			h := NewUserHandler(svc)

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.POST("/users/signup", h.Signup)

			req := httptest.NewRequest(http.MethodPost, "/users/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_Signin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	tests := []struct {
		name           string
		body           string
		setup          func(*MockUserService)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"email":"ada@example.com"}`,
			setup: func(svc *MockUserService) {
				svc.On("Signin", mock.Anything, "ada@example.com").
					Return(&model.User{ID: uuid.New(), Email: "ada@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error - unknown user returns 404",
			body: `{"email":"nobody@example.com"}`,
			setup: func(svc *MockUserService) {
				svc.On("Signin", mock.Anything, "nobody@example.com").Return(nil, service.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockUserService{}
			tt.setup(svc)

			h := NewUserHandler(svc)

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.POST("/users/signin", h.Signin)

			req := httptest.NewRequest(http.MethodPost, "/users/signin", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
