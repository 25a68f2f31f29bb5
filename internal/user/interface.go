package user

import "context"

// UseCase manages the platform user collection for the admin console.
type UseCase interface {
	List(ctx context.Context, input ListUsersInput) (ListUsersOutput, error)
	Detail(ctx context.Context, id string) (DetailUserOutput, error)
	Create(ctx context.Context, input CreateUserInput) (CreateUserOutput, error)
	Update(ctx context.Context, input UpdateUserInput) (UpdateUserOutput, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (ToggleUserStatusOutput, error)
	ChangePage(ctx context.Context, page int) (ListUsersOutput, error)
	Watch(ctx context.Context) (<-chan ListUsersOutput, func())
}
