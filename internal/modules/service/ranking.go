package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/repo"
	"github.com/modelday/modelday/internal/pkg/paging"
)

const (
	defaultRankingPageSize = 20
	maxRankingPageSize     = 100
)

type RankingService interface {
	List(ctx context.Context, in ListRankingsInput) (*ListRankingsOutput, error)
	Top(ctx context.Context, limit int) ([]model.Ranking, error)
}

type rankingService struct {
	rankings repo.RankingRepo
}

func NewRankingService(rankings repo.RankingRepo) RankingService {
	return &rankingService{rankings: rankings}
}

type ListRankingsInput struct {
	Cursor   string `json:"cursor"`
	Limit    int    `json:"limit"`
	TimeDesc bool   `json:"timeDesc"`
}

type ListRankingsOutput struct {
	Items      []model.Ranking `json:"items"`
	NextCursor string          `json:"nextCursor,omitempty"`
	HasMore    bool            `json:"hasMore"`
}

// List pages ranking snapshots by creation time. The cursor is opaque to
// clients; an unparsable one is reported as paging.ErrInvalidCursor.
func (s *rankingService) List(ctx context.Context, in ListRankingsInput) (*ListRankingsOutput, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultRankingPageSize
	}
	if limit > maxRankingPageSize {
		limit = maxRankingPageSize
	}

	var afterCreatedAt time.Time
	var afterID uuid.UUID
	if in.Cursor != "" {
		var err error
		afterCreatedAt, afterID, err = paging.DecodeCursor(in.Cursor)
		if err != nil {
			return nil, err
		}
	}

	// Fetch one extra row to learn whether another page exists.
	items, err := s.rankings.ListWithCursor(ctx, afterCreatedAt, afterID, limit+1, in.TimeDesc)
	if err != nil {
		return nil, err
	}

	out := &ListRankingsOutput{Items: items}
	if len(items) > limit {
		out.Items = items[:limit]
		out.HasMore = true
	}
	if n := len(out.Items); n > 0 && out.HasMore {
		last := out.Items[n-1]
		out.NextCursor = paging.EncodeCursor(last.CreatedAt, last.ID)
	}
	return out, nil
}

func (s *rankingService) Top(ctx context.Context, limit int) ([]model.Ranking, error) {
	if limit <= 0 {
		limit = defaultRankingPageSize
	}
	if limit > maxRankingPageSize {
		limit = maxRankingPageSize
	}
	return s.rankings.Top(ctx, limit)
}
