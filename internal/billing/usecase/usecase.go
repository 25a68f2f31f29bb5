package usecase

import (
	"context"
	"errors"

	"jishu-admin/internal/billing"
	"jishu-admin/internal/resource"
	pkgErrors "jishu-admin/pkg/errors"
)

// ListTransactions loads the requested page of payment records.
func (uc *implUseCase) ListTransactions(ctx context.Context, input billing.ListTransactionsInput) (billing.ListTransactionsOutput, error) {
	if err := uc.transactions.Load(ctx, input.Query()); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.ListTransactions Load: %v", err)
		return billing.ListTransactionsOutput{}, err
	}
	snap := uc.transactions.Snapshot()
	return billing.ListTransactionsOutput{
		Transactions: snap.Items,
		Pagination:   snap.Pagination,
		Loading:      snap.Loading,
	}, nil
}

// GetTransaction fetches one record from upstream, bypassing the page
// cache. Detail views want the authoritative state.
func (uc *implUseCase) GetTransaction(ctx context.Context, id string) (billing.TransactionOutput, error) {
	tx, err := uc.repo.Detail(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetTransaction: %v", err)
		if pkgErrors.IsNotFound(err) {
			return billing.TransactionOutput{}, billing.ErrTransactionNotFound
		}
		return billing.TransactionOutput{}, err
	}
	return billing.TransactionOutput{Transaction: tx}, nil
}

// Stats returns the upstream revenue summary.
func (uc *implUseCase) Stats(ctx context.Context) (billing.StatsOutput, error) {
	stats, err := uc.repo.Stats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats: %v", err)
		return billing.StatsOutput{}, err
	}
	return billing.StatsOutput(stats), nil
}
