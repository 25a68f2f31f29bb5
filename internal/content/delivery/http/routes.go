package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	posts := rg.Group("/posts")
	{
		posts.GET("", mw.Auth(), h.ListPosts)
		posts.POST("", mw.Auth(), h.CreatePost)
		posts.GET("/:id", mw.Auth(), h.DetailPost)
		posts.PUT("/:id", mw.Auth(), h.UpdatePost)
		posts.DELETE("/:id", mw.Auth(), h.DeletePost)
		posts.PATCH("/:id/status", mw.Auth(), h.TogglePostStatus)
	}

	comments := rg.Group("/comments")
	{
		comments.GET("", mw.Auth(), h.ListComments)
		comments.DELETE("/:id", mw.Auth(), h.DeleteComment)
	}
}
