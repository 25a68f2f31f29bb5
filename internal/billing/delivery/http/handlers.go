package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"jishu-admin/internal/billing"
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
	"jishu-admin/pkg/response"

	pkgErrors "jishu-admin/pkg/errors"
)

type listTransactionsReq struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
	Status  string `form:"status"`
	UserID  string `form:"user_id"`
}

type transactionResp struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Amount    int64             `json:"amount"`
	Currency  string            `json:"currency"`
	Reference string            `json:"reference"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newTransactionResp(t model.Transaction) transactionResp {
	return transactionResp{
		ID:        t.ID,
		UserID:    t.UserID,
		Amount:    t.Amount,
		Currency:  t.Currency,
		Reference: t.Reference,
		Status:    t.Status,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

type listTransactionsResp struct {
	Items      []transactionResp   `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
	Loading    bool                `json:"loading"`
}

type statsResp struct {
	TotalRevenue int64  `json:"total_revenue"`
	Currency     string `json:"currency"`
	PaidCount    int    `json:"paid_count"`
	PendingCount int    `json:"pending_count"`
	FailedCount  int    `json:"failed_count"`
}

// List godoc
// @Summary     List transactions
// @Description Returns a paginated list of payment records. Read-only.
// @Tags        Billing
// @Produce     json
// @Param       page     query int    false "1-based page number"
// @Param       per_page query int    false "Page size (default: 20)"
// @Param       search   query string false "Free-text search on reference"
// @Param       status   query string false "Filter by status (paid/pending/failed)"
// @Param       user_id  query string false "Filter by paying user"
// @Success     200 {object} listTransactionsResp
// @Router      /api/v1/transactions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listTransactionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListTransactions(ctx, billing.ListTransactionsInput(req))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTransactions: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	items := make([]transactionResp, len(output.Transactions))
	for i, t := range output.Transactions {
		items[i] = newTransactionResp(t)
	}
	response.OK(c, listTransactionsResp{
		Items:      items,
		Pagination: output.Pagination,
		Loading:    output.Loading,
	})
}

// Detail godoc
// @Summary     Get one transaction
// @Tags        Billing
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} transactionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/transactions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewValidationError("id is required"), nil)
		return
	}

	output, err := h.uc.GetTransaction(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetTransaction: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTransactionResp(output.Transaction))
}

// Stats godoc
// @Summary     Revenue summary
// @Description Totals the dashboard charts: revenue plus per-status counts.
// @Tags        Billing
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/transactions/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, statsResp(output))
}

func (h *handler) mapError(err error) error {
	if errors.Is(err, billing.ErrTransactionNotFound) {
		return pkgErrors.NewNotFoundError(err.Error())
	}
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return pkgErrors.NewNetworkError("upstream request failed")
}
