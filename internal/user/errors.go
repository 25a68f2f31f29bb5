package user

import "errors"

// Domain-specific errors for the user package.
var (
	ErrNameRequired  = errors.New("user name is required")
	ErrEmailRequired = errors.New("user email is required")
	ErrUserNotFound  = errors.New("user not found on current page")
	ErrInvalidRole   = errors.New("unknown user role")
)
