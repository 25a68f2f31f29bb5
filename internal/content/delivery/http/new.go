package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/content"
	"jishu-admin/pkg/log"
)

// Handler is the public interface for the content HTTP delivery layer.
type Handler interface {
	ListPosts(c *gin.Context)
	DetailPost(c *gin.Context)
	CreatePost(c *gin.Context)
	UpdatePost(c *gin.Context)
	DeletePost(c *gin.Context)
	TogglePostStatus(c *gin.Context)

	ListComments(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc content.UseCase
}

// New creates a new HTTP handler for the content domain.
func New(l log.Logger, uc content.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
