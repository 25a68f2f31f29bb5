package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/billing"
	"jishu-admin/pkg/log"
)

// Handler is the public interface for the billing HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Stats(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc billing.UseCase
}

// New creates a new HTTP handler for the billing domain.
func New(l log.Logger, uc billing.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
