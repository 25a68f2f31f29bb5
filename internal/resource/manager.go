package resource

import (
	"context"
	"strings"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"jishu-admin/pkg/log"
	"jishu-admin/pkg/paginate"
)

// Manager owns the displayed state of one named remote collection:
// the active query, the fetched page, and the loading/error flags.
// Loads are last-write-wins: a newer Load cancels and supersedes any
// in-flight one, so a slow stale response can never overwrite fresher
// data. Mutations go upstream first, patch the local page only after
// the server acknowledged them, and supersede in-flight loads the same
// way so a pre-mutation page cannot resurface.
type Manager[T any] struct {
	name  string
	store Store[T]
	acc   Accessors[T]
	opts  Options
	l     log.Logger

	mu      sync.Mutex
	query   paginate.Query
	page    paginate.Page[T]
	loading bool
	err     error
	gen     uint64
	cancel  context.CancelFunc

	cache *expirable.LRU[string, paginate.Page[T]]

	subMu   sync.Mutex
	subs    map[int]func(Snapshot[T])
	nextSub int
}

// New creates a Manager for one collection. Accessors are mandatory;
// missing ones are a programming error.
func New[T any](name string, store Store[T], acc Accessors[T], opts Options, l log.Logger) *Manager[T] {
	if acc.ID == nil || acc.Name == nil {
		panic("resource: Accessors.ID and Accessors.Name are required")
	}
	opts = opts.withDefaults()
	return &Manager[T]{
		name:  name,
		store: store,
		acc:   acc,
		opts:  opts,
		l:     l,
		cache: expirable.NewLRU[string, paginate.Page[T]](opts.CacheSize, nil, opts.CacheTTL),
		subs:  make(map[int]func(Snapshot[T])),
	}
}

// Load fetches the page identified by q and makes it the displayed state.
// A Load that gets superseded by a newer one returns ErrSuperseded and
// leaves the newer state untouched. Failures keep the previous items.
func (m *Manager[T]) Load(ctx context.Context, q paginate.Query) error {
	q = q.Normalize()

	m.mu.Lock()
	m.gen++
	gen := m.gen
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	if page, ok := m.cache.Get(q.Key()); ok {
		m.query = q
		m.page = page
		m.loading = false
		m.err = nil
		snap := m.snapshotLocked()
		m.mu.Unlock()
		m.notify(snap)
		return nil
	}

	loadCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.query = q
	m.loading = true
	m.err = nil
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)

	page, err := m.store.List(loadCtx, q)
	cancel()

	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return ErrSuperseded
	}
	m.cancel = nil
	m.loading = false
	if err != nil {
		m.err = err
		snap = m.snapshotLocked()
		m.mu.Unlock()
		m.l.Errorf(ctx, "resource %s: load failed: %v", m.name, err)
		m.notify(snap)
		return err
	}

	// The collection may have shrunk since the caller last saw it.
	// Redirect an overflowing page request to the last real page.
	if pages := page.Pagination.Pages; pages > 0 && q.Page > pages {
		m.mu.Unlock()
		return m.Load(ctx, q.WithPage(paginate.Clamp(q.Page, pages)))
	}

	m.page = page
	m.cache.Add(q.Key(), page)
	snap = m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
	return nil
}

// Create sends the payload upstream and, on success, places the stored
// entity into the displayed page. When ReloadAfterCreate is set or the
// page has no room for the new entity, the current query is refetched
// instead.
func (m *Manager[T]) Create(ctx context.Context, payload T) (T, error) {
	var zero T
	if strings.TrimSpace(m.acc.Name(payload)) == "" {
		return zero, ErrEmptyName
	}

	created, err := m.store.Create(ctx, payload)
	if err != nil {
		m.reportErr(ctx, "create", err)
		return zero, err
	}

	id := m.acc.ID(created)
	m.mu.Lock()
	m.supersedeLocked()
	m.cache.Purge()
	q := m.query
	perPage := m.page.Pagination.PerPage
	if perPage == 0 {
		perPage = m.query.PerPage
	}
	pageFull := perPage > 0 && len(m.page.Items) >= perPage && m.indexOfLocked(id) < 0

	if m.opts.ReloadAfterCreate || pageFull {
		m.mu.Unlock()
		// No room on the displayed page (or reload was requested): refetch
		// so totals and placement come from upstream instead of dropping
		// the new entity locally.
		if err := m.Load(ctx, q); err != nil && err != ErrSuperseded {
			m.l.Warnf(ctx, "resource %s: reload after create failed: %v", m.name, err)
		}
		return created, nil
	}

	if idx := m.indexOfLocked(id); idx >= 0 {
		// Upstream echoed an entity we already display; keep one copy.
		m.page.Items[idx] = created
	} else {
		m.page.Items = append(m.page.Items, created)
		m.page.Pagination.Total++
		m.page.Pagination.Pages = paginate.PageCount(m.page.Pagination.Total, perPage)
		if m.page.Pagination.Page == 0 {
			m.page.Pagination.Page = 1
		}
	}
	m.err = nil
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
	return created, nil
}

// Update replaces the entity with the given id in place. An id that is
// not on the displayed page is a no-op reported as ErrNotOnPage.
func (m *Manager[T]) Update(ctx context.Context, id string, payload T) (T, error) {
	var zero T
	if !m.onPage(id) {
		m.reportErr(ctx, "update", ErrNotOnPage)
		return zero, ErrNotOnPage
	}

	updated, err := m.store.Update(ctx, id, payload)
	if err != nil {
		m.reportErr(ctx, "update", err)
		return zero, err
	}

	m.patch(id, updated)
	return updated, nil
}

// ToggleStatus flips the status of the entity with the given id.
func (m *Manager[T]) ToggleStatus(ctx context.Context, id string) (T, error) {
	var zero T
	if !m.onPage(id) {
		m.reportErr(ctx, "toggle status", ErrNotOnPage)
		return zero, ErrNotOnPage
	}

	updated, err := m.store.ToggleStatus(ctx, id)
	if err != nil {
		m.reportErr(ctx, "toggle status", err)
		return zero, err
	}

	m.patch(id, updated)
	return updated, nil
}

// Remove deletes the entity upstream and drops it from the displayed
// page. When the page empties and StepBackOnEmptyPage is set, the
// previous page is loaded.
func (m *Manager[T]) Remove(ctx context.Context, id string) error {
	if !m.onPage(id) {
		m.reportErr(ctx, "remove", ErrNotOnPage)
		return ErrNotOnPage
	}

	if err := m.store.Delete(ctx, id); err != nil {
		m.reportErr(ctx, "remove", err)
		return err
	}

	m.mu.Lock()
	m.supersedeLocked()
	m.cache.Purge()
	if idx := m.indexOfLocked(id); idx >= 0 {
		m.page.Items = append(m.page.Items[:idx], m.page.Items[idx+1:]...)
		if m.page.Pagination.Total > 0 {
			m.page.Pagination.Total--
		}
		m.page.Pagination.Pages = paginate.PageCount(m.page.Pagination.Total, m.page.Pagination.PerPage)
	}
	stepBack := m.opts.StepBackOnEmptyPage && len(m.page.Items) == 0 && m.query.Page > 1
	prev := m.query.WithPage(m.query.Page - 1)
	m.err = nil
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)

	if stepBack {
		if err := m.Load(ctx, prev); err != nil && err != ErrSuperseded {
			return err
		}
	}
	return nil
}

// ChangePage navigates to page n. Out-of-range requests (below 1, past
// the last page, or against an empty collection) are silently ignored.
func (m *Manager[T]) ChangePage(ctx context.Context, n int) error {
	m.mu.Lock()
	pages := m.page.Pagination.Pages
	current := m.query.Page
	next := m.query.WithPage(n)
	m.mu.Unlock()

	if n < 1 || pages == 0 || n > pages || n == current {
		return nil
	}
	return m.Load(ctx, next)
}

// Snapshot returns a copy of the current state.
func (m *Manager[T]) Snapshot() Snapshot[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn to receive every state transition. The returned
// function removes the subscription.
func (m *Manager[T]) Subscribe(fn func(Snapshot[T])) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(m.page.Items))
	copy(items, m.page.Items)
	return Snapshot[T]{
		Query:      m.query,
		Items:      items,
		Pagination: m.page.Pagination,
		Loading:    m.loading,
		Err:        m.err,
	}
}

func (m *Manager[T]) notify(snap Snapshot[T]) {
	m.subMu.Lock()
	fns := make([]func(Snapshot[T]), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// supersedeLocked invalidates any in-flight Load so it can no longer
// commit a page that predates the mutation that just landed. Callers
// hold mu.
func (m *Manager[T]) supersedeLocked() {
	m.gen++
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = false
}

func (m *Manager[T]) indexOfLocked(id string) int {
	for i, item := range m.page.Items {
		if m.acc.ID(item) == id {
			return i
		}
	}
	return -1
}

func (m *Manager[T]) onPage(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexOfLocked(id) >= 0
}

func (m *Manager[T]) patch(id string, updated T) {
	m.mu.Lock()
	m.supersedeLocked()
	m.cache.Purge()
	if idx := m.indexOfLocked(id); idx >= 0 {
		m.page.Items[idx] = updated
	}
	m.err = nil
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}

func (m *Manager[T]) reportErr(ctx context.Context, op string, err error) {
	m.l.Errorf(ctx, "resource %s: %s failed: %v", m.name, op, err)
	m.mu.Lock()
	m.err = err
	m.loading = false
	snap := m.snapshotLocked()
	m.mu.Unlock()
	m.notify(snap)
}
