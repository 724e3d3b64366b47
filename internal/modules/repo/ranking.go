package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"gorm.io/gorm"
)

type RankingRepo interface {
	Create(ctx context.Context, rk *model.Ranking) error
	// ListWithCursor pages through ranking rows by creation time using the
	// (created_at, id) keyset.
	ListWithCursor(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Ranking, error)
	// Top returns the highest-scoring rows.
	Top(ctx context.Context, limit int) ([]model.Ranking, error)
}

type rankingRepo struct{ db *gorm.DB }

func NewRankingRepo(db *gorm.DB) RankingRepo {
	return &rankingRepo{db: db}
}

func (r *rankingRepo) Create(ctx context.Context, rk *model.Ranking) error {
	return r.db.WithContext(ctx).Create(rk).Error
}

func (r *rankingRepo) ListWithCursor(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int, timeDesc bool) ([]model.Ranking, error) {
	q := r.db.WithContext(ctx)

	if !afterCreatedAt.IsZero() && afterID != uuid.Nil {
		comparisonOp := ">"
		if timeDesc {
			comparisonOp = "<"
		}
		q = q.Where(
			"(created_at "+comparisonOp+" ?) OR (created_at = ? AND id "+comparisonOp+" ?)",
			afterCreatedAt, afterCreatedAt, afterID,
		)
	}

	orderBy := "created_at ASC, id ASC"
	if timeDesc {
		orderBy = "created_at DESC, id DESC"
	}

	var items []model.Ranking
	return items, q.Order(orderBy).Limit(limit).Find(&items).Error
}

func (r *rankingRepo) Top(ctx context.Context, limit int) ([]model.Ranking, error) {
	var items []model.Ranking
	return items, r.db.WithContext(ctx).
		Order("final_score DESC, created_at ASC").
		Limit(limit).
		Find(&items).Error
}
