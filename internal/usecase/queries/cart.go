package queries

import (
	"context"

	"github.com/google/uuid"
)

type CartSummary struct {
	Items      []*CartItemView `json:"items"`
	TotalCents int64           `json:"total_cents"`
}

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartSummary, error)
}

type CartViewRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*CartItemView, error)
}

type cartQueriesImpl struct {
	repo CartViewRepo
}

func NewCartQueries(repo CartViewRepo) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (*CartSummary, error) {
	items, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{Items: items}
	if summary.Items == nil {
		summary.Items = []*CartItemView{}
	}
	for _, item := range items {
		summary.TotalCents += item.TotalPriceCents
	}
	return summary, nil
}
