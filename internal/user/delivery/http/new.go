package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/user"
	"jishu-admin/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ToggleStatus(c *gin.Context)
	ChangePage(c *gin.Context)
	Watch(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
