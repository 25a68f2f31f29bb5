package content

import "errors"

// Domain-specific errors for the content package.
var (
	ErrTitleRequired   = errors.New("title is required")
	ErrBodyRequired    = errors.New("body is required")
	ErrPostNotFound    = errors.New("post not found on current page")
	ErrCommentNotFound = errors.New("comment not found on current page")
)
