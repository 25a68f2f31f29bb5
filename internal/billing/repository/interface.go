package repository

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// Stats is the upstream revenue summary for the transaction collection.
type Stats struct {
	TotalRevenue int64
	Currency     string
	PaidCount    int
	PendingCount int
	FailedCount  int
}

// Repository is the read-only transaction data source.
type Repository interface {
	Transactions() resource.Store[model.Transaction]
	Detail(ctx context.Context, id string) (model.Transaction, error)
	Stats(ctx context.Context) (Stats, error)
}
