package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	courses := rg.Group("/courses")
	{
		courses.GET("", mw.Auth(), h.ListCourses)
		courses.POST("", mw.Auth(), h.CreateCourse)
		courses.GET("/:id", mw.Auth(), h.DetailCourse)
		courses.PUT("/:id", mw.Auth(), h.UpdateCourse)
		courses.DELETE("/:id", mw.Auth(), h.DeleteCourse)
		courses.PATCH("/:id/status", mw.Auth(), h.ToggleCourseStatus)
	}

	subjects := rg.Group("/subjects")
	{
		subjects.GET("", mw.Auth(), h.ListSubjects)
		subjects.POST("", mw.Auth(), h.CreateSubject)
		subjects.GET("/:id", mw.Auth(), h.DetailSubject)
		subjects.PUT("/:id", mw.Auth(), h.UpdateSubject)
		subjects.DELETE("/:id", mw.Auth(), h.DeleteSubject)
	}
}
