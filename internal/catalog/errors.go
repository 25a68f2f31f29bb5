package catalog

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrCourseRequired  = errors.New("subject needs a course")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrCourseNotFound  = errors.New("course not found on current page")
	ErrSubjectNotFound = errors.New("subject not found on current page")
)
