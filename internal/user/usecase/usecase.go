package usecase

import (
	"context"
	"errors"
	"strings"

	"jishu-admin/internal/model"
	"jishu-admin/internal/resource"
	"jishu-admin/internal/user"
	pkgErrors "jishu-admin/pkg/errors"
)

// List loads the page identified by the input and returns the resulting
// state. A load that got superseded mid-flight is not an error: the
// snapshot already reflects the newer query.
func (uc *implUseCase) List(ctx context.Context, input user.ListUsersInput) (user.ListUsersOutput, error) {
	if err := uc.mgr.Load(ctx, input.Query()); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.List Load: %v", err)
		return user.ListUsersOutput{}, err
	}
	return uc.output(), nil
}

// Detail fetches one user straight from upstream; detail views want the
// authoritative state, not the cached page entry.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailUserOutput, error) {
	u, err := uc.repo.Detail(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail: %v", err)
		if pkgErrors.IsNotFound(err) {
			return user.DetailUserOutput{}, user.ErrUserNotFound
		}
		return user.DetailUserOutput{}, err
	}
	return user.DetailUserOutput{User: u}, nil
}

func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (user.CreateUserOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return user.CreateUserOutput{}, user.ErrNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return user.CreateUserOutput{}, user.ErrEmailRequired
	}
	role := input.Role
	if role == "" {
		role = model.RoleStudent
	}
	if role != model.RoleStudent && role != model.RoleAdmin {
		return user.CreateUserOutput{}, user.ErrInvalidRole
	}

	created, err := uc.mgr.Create(ctx, model.User{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Role:   role,
		Status: model.StatusActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create: %v", err)
		return user.CreateUserOutput{}, err
	}
	return user.CreateUserOutput{User: created}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (user.UpdateUserOutput, error) {
	updated, err := uc.mgr.Update(ctx, input.ID, model.User{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  input.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update: %v", err)
		return user.UpdateUserOutput{}, uc.mapNotOnPage(err)
	}
	return user.UpdateUserOutput{User: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.mgr.Remove(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete: %v", err)
		return uc.mapNotOnPage(err)
	}
	return nil
}

func (uc *implUseCase) ToggleStatus(ctx context.Context, id string) (user.ToggleUserStatusOutput, error) {
	toggled, err := uc.mgr.ToggleStatus(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus: %v", err)
		return user.ToggleUserStatusOutput{}, uc.mapNotOnPage(err)
	}
	return user.ToggleUserStatusOutput{User: toggled}, nil
}

// ChangePage navigates inside the already-loaded collection. Out-of-range
// pages are ignored and the current state is returned unchanged.
func (uc *implUseCase) ChangePage(ctx context.Context, page int) (user.ListUsersOutput, error) {
	if err := uc.mgr.ChangePage(ctx, page); err != nil && !errors.Is(err, resource.ErrSuperseded) {
		uc.l.Errorf(ctx, "uc.ChangePage: %v", err)
		return user.ListUsersOutput{}, err
	}
	return uc.output(), nil
}

// Watch streams every state transition of the user collection until the
// caller invokes the returned stop function. The channel is never closed;
// consumers select on it together with their own context.
func (uc *implUseCase) Watch(ctx context.Context) (<-chan user.ListUsersOutput, func()) {
	out := make(chan user.ListUsersOutput, 8)

	unsubscribe := uc.mgr.Subscribe(func(snap resource.Snapshot[model.User]) {
		select {
		case out <- snapshotOutput(snap):
		default:
			// Drop rather than block a slow consumer.
		}
	})

	return out, unsubscribe
}

func (uc *implUseCase) output() user.ListUsersOutput {
	return snapshotOutput(uc.mgr.Snapshot())
}

func snapshotOutput(snap resource.Snapshot[model.User]) user.ListUsersOutput {
	return user.ListUsersOutput{
		Users:      snap.Items,
		Pagination: snap.Pagination,
		Loading:    snap.Loading,
	}
}

func (uc *implUseCase) mapNotOnPage(err error) error {
	if errors.Is(err, resource.ErrNotOnPage) {
		return user.ErrUserNotFound
	}
	return err
}
