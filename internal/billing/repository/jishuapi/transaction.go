package jishuapi

import (
	"context"
	"time"

	"jishu-admin/internal/model"
	"jishu-admin/pkg/errors"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

// transactionDTO is the upstream wire shape of a payment record.
type transactionDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// statsDTO is the upstream revenue summary.
type statsDTO struct {
	TotalRevenue int64  `json:"total_revenue"`
	Currency     string `json:"currency"`
	PaidCount    int    `json:"paid_count"`
	PendingCount int    `json:"pending_count"`
	FailedCount  int    `json:"failed_count"`
}

// transactionStore adapts the upstream collection to the resource store
// contract. Transactions are immutable from the console, so every
// mutating verb is rejected before it reaches the wire.
type transactionStore struct {
	coll *jishu.Collection[transactionDTO]
}

func (s *transactionStore) List(ctx context.Context, q paginate.Query) (paginate.Page[model.Transaction], error) {
	page, err := s.coll.List(ctx, q)
	if err != nil {
		return paginate.Page[model.Transaction]{}, err
	}
	txs := make([]model.Transaction, len(page.Items))
	for i, dto := range page.Items {
		txs[i] = model.Transaction(dto)
	}
	return paginate.Page[model.Transaction]{Items: txs, Pagination: page.Pagination}, nil
}

func (s *transactionStore) Create(ctx context.Context, payload model.Transaction) (model.Transaction, error) {
	return model.Transaction{}, errors.NewValidationError("transactions are read-only")
}

func (s *transactionStore) Update(ctx context.Context, id string, payload model.Transaction) (model.Transaction, error) {
	return model.Transaction{}, errors.NewValidationError("transactions are read-only")
}

func (s *transactionStore) Delete(ctx context.Context, id string) error {
	return errors.NewValidationError("transactions are read-only")
}

func (s *transactionStore) ToggleStatus(ctx context.Context, id string) (model.Transaction, error) {
	return model.Transaction{}, errors.NewValidationError("transactions are read-only")
}
