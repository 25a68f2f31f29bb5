package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get user")
	ErrFailedToList   = errors.New("failed to list users")
	ErrFailedToCreate = errors.New("failed to create user")
	ErrFailedToUpdate = errors.New("failed to update user")
	ErrFailedToDelete = errors.New("failed to delete user")
)
