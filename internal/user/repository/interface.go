package repository

import (
	"context"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
)

// Repository is the remote user collection. It satisfies the resource
// manager's store contract so a Manager can front it directly.
type Repository interface {
	resource.Store[model.User]

	// Detail fetches one user by ID, independent of any loaded page.
	Detail(ctx context.Context, id string) (model.User, error)
}
