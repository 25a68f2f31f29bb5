package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// /stats is registered before /:id so gin does not shadow it.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	transactions := rg.Group("/transactions")
	{
		transactions.GET("", mw.Auth(), h.List)
		transactions.GET("/stats", mw.Auth(), h.Stats)
		transactions.GET("/:id", mw.Auth(), h.Detail)
	}
}
