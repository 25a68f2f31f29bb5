package jishuapi

import (
	"context"
	"errors"
	"time"

	"jishu-admin/internal/model"
	"jishu-admin/internal/user/repository"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

// userDTO is the upstream wire shape of a user.
type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d userDTO) toModel() model.User {
	return model.User(d)
}

func toDTO(u model.User) userDTO {
	return userDTO(u)
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	dto, err := jishu.Get[userDTO](ctx, r.client, usersPath, id)
	if err != nil {
		return model.User{}, errors.Join(repository.ErrFailedToGet, err)
	}
	return dto.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, q paginate.Query) (paginate.Page[model.User], error) {
	page, err := jishu.List[userDTO](ctx, r.client, usersPath, q)
	if err != nil {
		return paginate.Page[model.User]{}, errors.Join(repository.ErrFailedToList, err)
	}

	users := make([]model.User, len(page.Items))
	for i, dto := range page.Items {
		users[i] = dto.toModel()
	}
	return paginate.Page[model.User]{Items: users, Pagination: page.Pagination}, nil
}

func (r *implRepository) Create(ctx context.Context, payload model.User) (model.User, error) {
	created, err := jishu.Create[userDTO](ctx, r.client, usersPath, toDTO(payload))
	if err != nil {
		return model.User{}, errors.Join(repository.ErrFailedToCreate, err)
	}
	return created.toModel(), nil
}

func (r *implRepository) Update(ctx context.Context, id string, payload model.User) (model.User, error) {
	updated, err := jishu.Update[userDTO](ctx, r.client, usersPath, id, toDTO(payload))
	if err != nil {
		return model.User{}, errors.Join(repository.ErrFailedToUpdate, err)
	}
	return updated.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	if err := jishu.Delete(ctx, r.client, usersPath, id); err != nil {
		return errors.Join(repository.ErrFailedToDelete, err)
	}
	return nil
}

// ToggleStatus flips active/blocked. The upstream API has no dedicated
// toggle endpoint, so this reads the current state and writes it back.
func (r *implRepository) ToggleStatus(ctx context.Context, id string) (model.User, error) {
	current, err := jishu.Get[userDTO](ctx, r.client, usersPath, id)
	if err != nil {
		return model.User{}, errors.Join(repository.ErrFailedToUpdate, err)
	}
	current.Status = model.ToggleStatus(current.Status)

	updated, err := jishu.Update[userDTO](ctx, r.client, usersPath, id, current)
	if err != nil {
		return model.User{}, errors.Join(repository.ErrFailedToUpdate, err)
	}
	return updated.toModel(), nil
}
