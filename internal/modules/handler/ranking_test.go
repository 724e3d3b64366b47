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
	"github.com/modelday/modelday/internal/pkg/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) List(ctx context.Context, in service.ListRankingsInput) (*service.ListRankingsOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListRankingsOutput), args.Error(1)
}

func (m *MockRankingService) Top(ctx context.Context, limit int) ([]model.Ranking, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ranking), args.Error(1)
}

func TestRankingHandler_GetRankings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	tests := []struct {
		name           string
		queryParams    string
		setup          func(*MockRankingService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - default limit",
			queryParams: "",
			setup: func(svc *MockRankingService) {
				svc.On("List", mock.Anything, mock.MatchedBy(func(in service.ListRankingsInput) bool {
					return in.Limit == 20 && in.Cursor == ""
				})).Return(&service.ListRankingsOutput{
					Items:   []model.Ranking{{ID: uuid.New(), UserName: "Ada", FinalScore: 40}},
					HasMore: false,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp serializer.Response
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)

				data, ok := resp.Data.(map[string]interface{})
				assert.True(t, ok)
				assert.False(t, data["hasMore"].(bool))
				assert.Len(t, data["items"], 1)
			},
		},
		{
			name:        "error - invalid cursor",
			queryParams: "?cursor=garbage",
			setup: func(svc *MockRankingService) {
				svc.On("List", mock.Anything, mock.Anything).Return(nil, paging.ErrInvalidCursor)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "error - limit too high",
			queryParams:    "?limit=500",
			setup:          func(svc *MockRankingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockRankingService{}
			tt.setup(svc)

			h := NewRankingHandler(svc)

			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.GET("/rankings", h.GetRankings)

			req := httptest.NewRequest(http.MethodGet, "/rankings"+tt.queryParams, nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestRankingHandler_GetTopRankings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	svc := &MockRankingService{}
	svc.On("Top", mock.Anything, 5).Return([]model.Ranking{
		{ID: uuid.New(), UserName: "Ada", FinalScore: 90},
		{ID: uuid.New(), UserName: "Lin", FinalScore: 70},
	}, nil)

	h := NewRankingHandler(svc)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/rankings/top", h.GetTopRankings)

	req := httptest.NewRequest(http.MethodGet, "/rankings/top?limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp serializer.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, items, 2)
	svc.AssertExpectations(t)
}
