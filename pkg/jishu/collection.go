package jishu

import (
	"context"
	"errors"

	"jishu-admin/pkg/paginate"
)

// ErrNoToggle is returned by ToggleStatus on a Collection built without
// a toggle function.
var ErrNoToggle = errors.New("jishu: collection has no status toggle")

// Collection binds the generic verbs to one upstream collection path.
// D is the wire (DTO) type of the collection's entities.
type Collection[D any] struct {
	client *Client
	path   string
	// toggle flips the status field of a DTO. Required only when
	// ToggleStatus is used; the upstream API has no toggle endpoint,
	// so the flip happens client-side between a read and a write.
	toggle func(D) D
}

// NewCollection creates a Collection for path. toggle may be nil for
// collections without a status toggle.
func NewCollection[D any](client *Client, path string, toggle func(D) D) *Collection[D] {
	return &Collection[D]{client: client, path: path, toggle: toggle}
}

func (c *Collection[D]) List(ctx context.Context, q paginate.Query) (paginate.Page[D], error) {
	return List[D](ctx, c.client, c.path, q)
}

func (c *Collection[D]) Get(ctx context.Context, id string) (D, error) {
	return Get[D](ctx, c.client, c.path, id)
}

func (c *Collection[D]) Create(ctx context.Context, payload D) (D, error) {
	return Create[D](ctx, c.client, c.path, payload)
}

func (c *Collection[D]) Update(ctx context.Context, id string, payload D) (D, error) {
	return Update[D](ctx, c.client, c.path, id, payload)
}

func (c *Collection[D]) Delete(ctx context.Context, id string) error {
	return Delete(ctx, c.client, c.path, id)
}

// ToggleStatus reads the current entity, flips its status and writes it
// back.
func (c *Collection[D]) ToggleStatus(ctx context.Context, id string) (D, error) {
	var zero D
	if c.toggle == nil {
		return zero, ErrNoToggle
	}
	current, err := c.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	return c.Update(ctx, id, c.toggle(current))
}
