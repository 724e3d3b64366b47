package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/pkg/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListRankingsFirstPageWithMore(t *testing.T) {
	rankings := new(mockRankingRepo)
	svc := NewRankingService(rankings)

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	rows := make([]model.Ranking, 3)
	for i := range rows {
		rows[i] = model.Ranking{
			ID:        uuid.New(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	// limit 2 requested, repo asked for 3 to detect the next page
	rankings.On("ListWithCursor", mock.Anything, time.Time{}, uuid.Nil, 3, false).Return(rows, nil)

	out, err := svc.List(context.Background(), ListRankingsInput{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.True(t, out.HasMore)

	gotTime, gotID, err := paging.DecodeCursor(out.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, rows[1].ID, gotID)
	assert.True(t, rows[1].CreatedAt.Equal(gotTime))
}

func TestListRankingsLastPage(t *testing.T) {
	rankings := new(mockRankingRepo)
	svc := NewRankingService(rankings)

	rows := []model.Ranking{{ID: uuid.New(), CreatedAt: time.Now()}}
	rankings.On("ListWithCursor", mock.Anything, mock.Anything, mock.Anything, 21, false).Return(rows, nil)

	out, err := svc.List(context.Background(), ListRankingsInput{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.False(t, out.HasMore)
	assert.Empty(t, out.NextCursor)
}

func TestListRankingsInvalidCursor(t *testing.T) {
	rankings := new(mockRankingRepo)
	svc := NewRankingService(rankings)

	_, err := svc.List(context.Background(), ListRankingsInput{Cursor: "not-a-cursor"})
	assert.ErrorIs(t, err, paging.ErrInvalidCursor)
	rankings.AssertNotCalled(t, "ListWithCursor", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListRankingsClampsLimit(t *testing.T) {
	rankings := new(mockRankingRepo)
	svc := NewRankingService(rankings)

	rankings.On("ListWithCursor", mock.Anything, mock.Anything, mock.Anything, maxRankingPageSize+1, true).
		Return([]model.Ranking{}, nil)

	_, err := svc.List(context.Background(), ListRankingsInput{Limit: 10_000, TimeDesc: true})
	require.NoError(t, err)
	rankings.AssertExpectations(t)
}

func TestTopRankingsDefaultsLimit(t *testing.T) {
	rankings := new(mockRankingRepo)
	svc := NewRankingService(rankings)

	rankings.On("Top", mock.Anything, defaultRankingPageSize).Return([]model.Ranking{}, nil)

	_, err := svc.Top(context.Background(), 0)
	require.NoError(t, err)
	rankings.AssertExpectations(t)
}
