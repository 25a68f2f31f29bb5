package billing

import (
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
)

type ListTransactionsInput struct {
	Page    int
	PerPage int
	Search  string
	Status  string
	UserID  string
}

func (i ListTransactionsInput) Query() paginate.Query {
	filters := map[string]string{}
	if i.Status != "" {
		filters["status"] = i.Status
	}
	if i.UserID != "" {
		filters["user_id"] = i.UserID
	}
	return paginate.Query{
		Page:    i.Page,
		PerPage: i.PerPage,
		Search:  i.Search,
		Filters: filters,
	}.Normalize()
}

type ListTransactionsOutput struct {
	Transactions []model.Transaction
	Pagination   paginate.Pagination
	Loading      bool
}

type TransactionOutput struct {
	Transaction model.Transaction
}

// StatsOutput is the revenue summary the dashboard charts.
type StatsOutput struct {
	TotalRevenue int64
	Currency     string
	PaidCount    int
	PendingCount int
	FailedCount  int
}
