package http

import (
	"github.com/gin-gonic/gin"

	"jishu-admin/internal/catalog"
	"jishu-admin/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	ListCourses(c *gin.Context)
	DetailCourse(c *gin.Context)
	CreateCourse(c *gin.Context)
	UpdateCourse(c *gin.Context)
	DeleteCourse(c *gin.Context)
	ToggleCourseStatus(c *gin.Context)

	ListSubjects(c *gin.Context)
	DetailSubject(c *gin.Context)
	CreateSubject(c *gin.Context)
	UpdateSubject(c *gin.Context)
	DeleteSubject(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
