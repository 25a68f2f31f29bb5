package resource

import (
	"context"
	"time"

	"jishu-admin/pkg/paginate"
)

// Store is the remote collection a Manager fronts. Implementations live
// in the domain repository packages and talk to the upstream API.
type Store[T any] interface {
	List(ctx context.Context, q paginate.Query) (paginate.Page[T], error)
	Create(ctx context.Context, payload T) (T, error)
	Update(ctx context.Context, id string, payload T) (T, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (T, error)
}

// Accessors tells the Manager how to read fields off an opaque entity.
type Accessors[T any] struct {
	// ID returns the entity identity. Required.
	ID func(T) string
	// Name returns the field that must be non-empty on create. Required.
	Name func(T) string
}

// Options configures per-collection behavior.
type Options struct {
	// StepBackOnEmptyPage re-issues the load for the previous page when a
	// removal leaves the current page empty and the page is not the first.
	StepBackOnEmptyPage bool
	// ReloadAfterCreate refetches the current query after a successful
	// create instead of appending locally.
	ReloadAfterCreate bool
	// CacheSize and CacheTTL bound the page cache. Zero values pick defaults.
	CacheSize int
	CacheTTL  time.Duration
}

const (
	defaultCacheSize = 64
	defaultCacheTTL  = 30 * time.Second
)

func (o Options) withDefaults() Options {
	if o.CacheSize <= 0 {
		o.CacheSize = defaultCacheSize
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = defaultCacheTTL
	}
	return o
}

// Snapshot is an immutable copy of the manager state, as handed to
// subscribers and callers. Loading and Err are never both set.
type Snapshot[T any] struct {
	Query      paginate.Query
	Items      []T
	Pagination paginate.Pagination
	Loading    bool
	Err        error
}
