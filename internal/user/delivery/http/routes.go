package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.GET("", mw.Auth(), h.List)
		users.POST("", mw.Auth(), h.Create)
		users.POST("/page", mw.Auth(), h.ChangePage)
		users.GET("/watch", mw.Auth(), h.Watch)
		users.GET("/:id", mw.Auth(), h.Detail)
		users.PUT("/:id", mw.Auth(), h.Update)
		users.DELETE("/:id", mw.Auth(), h.Delete)
		users.PATCH("/:id/status", mw.Auth(), h.ToggleStatus)
	}
}
