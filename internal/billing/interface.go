package billing

import "context"

// UseCase exposes the read-only transaction collection.
type UseCase interface {
	ListTransactions(ctx context.Context, input ListTransactionsInput) (ListTransactionsOutput, error)
	GetTransaction(ctx context.Context, id string) (TransactionOutput, error)
	Stats(ctx context.Context) (StatsOutput, error)
}
