package usecase

import (
	"jishu-admin/internal/billing/repository"
	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/pkg/log"
)

// implUseCase is the private implementation of billing.UseCase.
type implUseCase struct {
	repo         repository.Repository
	transactions *resource.Manager[model.Transaction]
	l            log.Logger
}

// New creates a billing UseCase over the transaction collection.
func New(repo repository.Repository, opts resource.Options, l log.Logger) *implUseCase {
	transactions := resource.New[model.Transaction]("transactions", repo.Transactions(), resource.Accessors[model.Transaction]{
		ID:   func(t model.Transaction) string { return t.ID },
		Name: func(t model.Transaction) string { return t.Reference },
	}, opts, l)

	return &implUseCase{
		repo:         repo,
		transactions: transactions,
		l:            l,
	}
}
