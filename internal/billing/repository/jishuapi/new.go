package jishuapi

import (
	"context"

	"jishu-admin/internal/billing/repository"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/log"
)

const transactionsPath = "transactions"

// implRepository fronts the upstream transaction collection.
type implRepository struct {
	client       *jishu.Client
	transactions *transactionStore
	l            log.Logger
}

// New creates a billing repository backed by the Jishu API.
func New(client *jishu.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		transactions: &transactionStore{
			coll: jishu.NewCollection[transactionDTO](client, transactionsPath, nil),
		},
		l: l,
	}
}

func (r *implRepository) Transactions() resource.Store[model.Transaction] {
	return r.transactions
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Transaction, error) {
	dto, err := jishu.Get[transactionDTO](ctx, r.client, transactionsPath, id)
	if err != nil {
		return model.Transaction{}, err
	}
	return model.Transaction(dto), nil
}

func (r *implRepository) Stats(ctx context.Context) (repository.Stats, error) {
	dto, err := jishu.Get[statsDTO](ctx, r.client, transactionsPath, "stats")
	if err != nil {
		return repository.Stats{}, err
	}
	return repository.Stats(dto), nil
}
