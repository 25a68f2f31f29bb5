package resource_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"jishu-admin/internal/resource"
	"jishu-admin/pkg/paginate"
)

type subject struct {
	ID     string
	Name   string
	Status string
}

var subjectAccessors = resource.Accessors[subject]{
	ID:   func(s subject) string { return s.ID },
	Name: func(s subject) string { return s.Name },
}

// fakeStore drives the manager with func-valued behavior per method.
type fakeStore struct {
	listFunc   func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error)
	createFunc func(ctx context.Context, payload subject) (subject, error)
	updateFunc func(ctx context.Context, id string, payload subject) (subject, error)
	deleteFunc func(ctx context.Context, id string) error
	toggleFunc func(ctx context.Context, id string) (subject, error)
}

func (f *fakeStore) List(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
	if f.listFunc == nil {
		return paginate.Page[subject]{}, nil
	}
	return f.listFunc(ctx, q)
}

func (f *fakeStore) Create(ctx context.Context, payload subject) (subject, error) {
	if f.createFunc == nil {
		return payload, nil
	}
	return f.createFunc(ctx, payload)
}

func (f *fakeStore) Update(ctx context.Context, id string, payload subject) (subject, error) {
	if f.updateFunc == nil {
		payload.ID = id
		return payload, nil
	}
	return f.updateFunc(ctx, id, payload)
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, id)
}

func (f *fakeStore) ToggleStatus(ctx context.Context, id string) (subject, error) {
	if f.toggleFunc == nil {
		return subject{ID: id}, nil
	}
	return f.toggleFunc(ctx, id)
}

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func pageOf(q paginate.Query, total int, items ...subject) paginate.Page[subject] {
	return paginate.Page[subject]{
		Items: items,
		Pagination: paginate.Pagination{
			Page:    q.Page,
			Pages:   paginate.PageCount(total, q.PerPage),
			Total:   total,
			PerPage: q.PerPage,
		},
	}
}

func newManager(store *fakeStore, opts resource.Options) *resource.Manager[subject] {
	return resource.New[subject]("subjects", store, subjectAccessors, opts, &mockLogger{})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Replaces State Wholesale", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 25, subject{ID: "s1", Name: "Physics 101"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})

		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := mgr.Snapshot()
		if len(snap.Items) != 1 || snap.Items[0].Name != "Physics 101" {
			t.Errorf("unexpected items: %+v", snap.Items)
		}
		if snap.Pagination.Pages != 3 {
			t.Errorf("expected 3 pages for total=25 per_page=10, got %d", snap.Pagination.Pages)
		}
		if snap.Loading || snap.Err != nil {
			t.Errorf("expected settled state, got loading=%v err=%v", snap.Loading, snap.Err)
		}
	})

	t.Run("Failure Retains Previous Items", func(t *testing.T) {
		boom := errors.New("upstream down")
		healthy := true
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				if !healthy {
					return paginate.Page[subject]{}, boom
				}
				return pageOf(q, 1, subject{ID: "s1", Name: "Physics 101"}), nil
			},
		}
		mgr := newManager(store, resource.Options{CacheTTL: time.Nanosecond})

		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		healthy = false
		err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10, Search: "x"})
		if !errors.Is(err, boom) {
			t.Fatalf("expected load error, got %v", err)
		}

		snap := mgr.Snapshot()
		if len(snap.Items) != 1 {
			t.Errorf("previous items must survive a failed load, got %+v", snap.Items)
		}
		if snap.Err == nil || snap.Loading {
			t.Errorf("expected err set and loading cleared, got loading=%v err=%v", snap.Loading, snap.Err)
		}
	})

	t.Run("Last Write Wins Out Of Order", func(t *testing.T) {
		release := make(chan struct{})
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				if q.Search == "slow" {
					<-release
					return pageOf(q, 1, subject{ID: "old", Name: "Stale"}), nil
				}
				return pageOf(q, 1, subject{ID: "new", Name: "Fresh"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})

		firstDone := make(chan error, 1)
		go func() {
			firstDone <- mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10, Search: "slow"})
		}()

		// Give the slow load time to get in flight before superseding it.
		time.Sleep(20 * time.Millisecond)

		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10, Search: "fast"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		close(release)
		if err := <-firstDone; !errors.Is(err, resource.ErrSuperseded) {
			t.Errorf("expected ErrSuperseded from stale load, got %v", err)
		}

		snap := mgr.Snapshot()
		if len(snap.Items) != 1 || snap.Items[0].ID != "new" {
			t.Errorf("stale response must not win, got %+v", snap.Items)
		}
		if snap.Query.Search != "fast" {
			t.Errorf("expected query of the newer load, got %+v", snap.Query)
		}
	})

	t.Run("Cache Hit Skips Upstream", func(t *testing.T) {
		var calls int32
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				atomic.AddInt32(&calls, 1)
				return pageOf(q, 1, subject{ID: "s1", Name: "Physics 101"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})

		q := paginate.Query{Page: 1, PerPage: 10}
		if err := mgr.Load(ctx, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := mgr.Load(ctx, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := atomic.LoadInt32(&calls); n != 1 {
			t.Errorf("expected 1 upstream call, got %d", n)
		}
	})

	t.Run("Overflowing Page Redirects To Last", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				if q.Page > 3 {
					return pageOf(q, 25), nil
				}
				return pageOf(q, 25, subject{ID: "s1", Name: "Last Page Item"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})

		if err := mgr.Load(ctx, paginate.Query{Page: 9, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap := mgr.Snapshot()
		if snap.Query.Page != 3 {
			t.Errorf("expected redirect to page 3, got %d", snap.Query.Page)
		}
	})
}

func TestChangePage(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*resource.Manager[subject], *int32) {
		var calls int32
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				atomic.AddInt32(&calls, 1)
				return pageOf(q, 25, subject{ID: "s1", Name: "Item"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return mgr, &calls
	}

	t.Run("Beyond Last Page Is Ignored", func(t *testing.T) {
		mgr, calls := setup(t)
		before := atomic.LoadInt32(calls)
		if err := mgr.ChangePage(ctx, 99); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mgr.Snapshot().Query.Page != 1 {
			t.Errorf("page must stay unchanged, got %d", mgr.Snapshot().Query.Page)
		}
		if atomic.LoadInt32(calls) != before {
			t.Error("out-of-range change must not hit upstream")
		}
	})

	t.Run("Below First Page Is Ignored", func(t *testing.T) {
		mgr, _ := setup(t)
		if err := mgr.ChangePage(ctx, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mgr.Snapshot().Query.Page != 1 {
			t.Errorf("page must stay unchanged, got %d", mgr.Snapshot().Query.Page)
		}
	})

	t.Run("In Range Navigates", func(t *testing.T) {
		mgr, _ := setup(t)
		if err := mgr.ChangePage(ctx, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mgr.Snapshot().Query.Page != 2 {
			t.Errorf("expected page 2, got %d", mgr.Snapshot().Query.Page)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Name Rejected Before Upstream", func(t *testing.T) {
		var called bool
		store := &fakeStore{
			createFunc: func(ctx context.Context, payload subject) (subject, error) {
				called = true
				return payload, nil
			},
		}
		mgr := newManager(store, resource.Options{})

		_, err := mgr.Create(ctx, subject{Name: "   "})
		if !errors.Is(err, resource.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
		if called {
			t.Error("upstream must not be called for an invalid payload")
		}
	})

	t.Run("Success Appears Exactly Once", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 1, subject{ID: "s1", Name: "Existing"}), nil
			},
			createFunc: func(ctx context.Context, payload subject) (subject, error) {
				payload.ID = "s2"
				return payload, nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		created, err := mgr.Create(ctx, subject{Name: "Algebra"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "s2" {
			t.Errorf("unexpected created entity: %+v", created)
		}

		var count int
		for _, it := range mgr.Snapshot().Items {
			if it.ID == "s2" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("created item must appear exactly once, got %d", count)
		}
		if got := mgr.Snapshot().Pagination.Total; got != 2 {
			t.Errorf("expected total 2, got %d", got)
		}
	})

	t.Run("Full Page Reloads Instead Of Dropping", func(t *testing.T) {
		newestFirst := []subject{{ID: "s1", Name: "Existing"}}
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				end := q.PerPage
				if end > len(newestFirst) {
					end = len(newestFirst)
				}
				return pageOf(q, len(newestFirst), newestFirst[:end]...), nil
			},
			createFunc: func(ctx context.Context, payload subject) (subject, error) {
				payload.ID = "s2"
				newestFirst = append([]subject{payload}, newestFirst...)
				return payload, nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		created, err := mgr.Create(ctx, subject{Name: "Algebra"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := mgr.Snapshot()
		var count int
		for _, it := range snap.Items {
			if it.ID == created.ID {
				count++
			}
		}
		if count != 1 {
			t.Errorf("created item must appear exactly once, got %d occurrences (%+v)", count, snap.Items)
		}
		if snap.Pagination.Total != 2 || snap.Pagination.Pages != 2 {
			t.Errorf("totals must come from upstream after the reload, got %+v", snap.Pagination)
		}
	})

	t.Run("Upstream Failure Leaves List Unchanged", func(t *testing.T) {
		boom := errors.New("validation failed upstream")
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 1, subject{ID: "s1", Name: "Existing"}), nil
			},
			createFunc: func(ctx context.Context, payload subject) (subject, error) {
				return subject{}, boom
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := mgr.Create(ctx, subject{Name: "Algebra"}); !errors.Is(err, boom) {
			t.Fatalf("expected upstream error, got %v", err)
		}
		if n := len(mgr.Snapshot().Items); n != 1 {
			t.Errorf("list must be unchanged after failure, got %d items", n)
		}
	})
}

func TestMutationOverlapsLoad(t *testing.T) {
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	store := &fakeStore{
		listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
			if atomic.AddInt32(&calls, 1) == 1 {
				close(started)
				<-release
				// The view of the collection before the create landed.
				return pageOf(q, 1, subject{ID: "s1", Name: "Existing"}), nil
			}
			return pageOf(q, 2,
				subject{ID: "s1", Name: "Existing"},
				subject{ID: "s2", Name: "Algebra"},
			), nil
		},
		createFunc: func(ctx context.Context, payload subject) (subject, error) {
			payload.ID = "s2"
			return payload, nil
		},
	}
	mgr := newManager(store, resource.Options{})

	loadDone := make(chan error, 1)
	go func() {
		loadDone <- mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10})
	}()
	<-started

	if _, err := mgr.Create(ctx, subject{Name: "Algebra"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(release)
	if err := <-loadDone; !errors.Is(err, resource.ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded from the overlapped load, got %v", err)
	}

	snap := mgr.Snapshot()
	var count int
	for _, it := range snap.Items {
		if it.ID == "s2" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("created item must survive the overlapped load, got %d occurrences (%+v)", count, snap.Items)
	}
	if snap.Loading {
		t.Error("loading must be cleared once the mutation settles")
	}

	// The pre-mutation page must not have been parked in the cache either.
	if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(mgr.Snapshot().Items); n != 2 {
		t.Errorf("reload must come from upstream, got %d items", n)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces In Place", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 2,
					subject{ID: "s1", Name: "Physics 101"},
					subject{ID: "s2", Name: "Chemistry"},
				), nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := mgr.Update(ctx, "s2", subject{Name: "Chemistry II"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := mgr.Snapshot()
		if snap.Items[1].Name != "Chemistry II" {
			t.Errorf("expected in-place replacement, got %+v", snap.Items)
		}
		if snap.Items[0].Name != "Physics 101" {
			t.Errorf("other items must be untouched, got %+v", snap.Items)
		}
	})

	t.Run("Unknown Id Is A Reported No-Op", func(t *testing.T) {
		var called bool
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 1, subject{ID: "s1", Name: "Physics 101"}), nil
			},
			updateFunc: func(ctx context.Context, id string, payload subject) (subject, error) {
				called = true
				return payload, nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := mgr.Update(ctx, "ghost", subject{Name: "X"}); !errors.Is(err, resource.ErrNotOnPage) {
			t.Fatalf("expected ErrNotOnPage, got %v", err)
		}
		if called {
			t.Error("upstream must not be called for an unknown id")
		}
		if mgr.Snapshot().Items[0].Name != "Physics 101" {
			t.Error("list must be unchanged")
		}
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing Id Is Removed", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 2,
					subject{ID: "s1", Name: "Physics 101"},
					subject{ID: "s2", Name: "Chemistry"},
				), nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := mgr.Remove(ctx, "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := mgr.Snapshot()
		for _, it := range snap.Items {
			if it.ID == "s1" {
				t.Error("removed item must be absent")
			}
		}
		if snap.Pagination.Total != 1 {
			t.Errorf("expected total 1, got %d", snap.Pagination.Total)
		}
	})

	t.Run("Unknown Id Leaves List Unchanged", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 1, subject{ID: "s1", Name: "Physics 101"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := mgr.Remove(ctx, "ghost"); !errors.Is(err, resource.ErrNotOnPage) {
			t.Fatalf("expected ErrNotOnPage, got %v", err)
		}
		if n := len(mgr.Snapshot().Items); n != 1 {
			t.Errorf("list must be unchanged, got %d items", n)
		}
	})

	t.Run("Step Back When Page Empties", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				if q.Page == 2 {
					return pageOf(q, 11, subject{ID: "s11", Name: "Lonely"}), nil
				}
				return pageOf(q, 11,
					subject{ID: "s1", Name: "First Page Item"},
				), nil
			},
		}
		mgr := newManager(store, resource.Options{StepBackOnEmptyPage: true, CacheTTL: time.Nanosecond})
		if err := mgr.Load(ctx, paginate.Query{Page: 2, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := mgr.Remove(ctx, "s11"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		snap := mgr.Snapshot()
		if snap.Query.Page != 1 {
			t.Errorf("expected step back to page 1, got %d", snap.Query.Page)
		}
		if len(snap.Items) != 1 || snap.Items[0].ID != "s1" {
			t.Errorf("expected previous page content, got %+v", snap.Items)
		}
	})

	t.Run("No Step Back Without Option", func(t *testing.T) {
		store := &fakeStore{
			listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
				return pageOf(q, 11, subject{ID: "s11", Name: "Lonely"}), nil
			},
		}
		mgr := newManager(store, resource.Options{})
		if err := mgr.Load(ctx, paginate.Query{Page: 2, PerPage: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := mgr.Remove(ctx, "s11"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mgr.Snapshot().Query.Page; got != 2 {
			t.Errorf("page must not move without the option, got %d", got)
		}
	})
}

func TestToggleStatus(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{
		listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
			return pageOf(q, 1, subject{ID: "s1", Name: "Physics 101", Status: "published"}), nil
		},
		toggleFunc: func(ctx context.Context, id string) (subject, error) {
			return subject{ID: id, Name: "Physics 101", Status: "draft"}, nil
		},
	}
	mgr := newManager(store, resource.Options{})
	if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	toggled, err := mgr.ToggleStatus(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Status != "draft" {
		t.Errorf("expected toggled status, got %+v", toggled)
	}
	if mgr.Snapshot().Items[0].Status != "draft" {
		t.Error("local copy must be patched after toggle")
	}
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{
		listFunc: func(ctx context.Context, q paginate.Query) (paginate.Page[subject], error) {
			return pageOf(q, 1, subject{ID: "s1", Name: "Physics 101"}), nil
		},
	}
	mgr := newManager(store, resource.Options{})

	var snaps []resource.Snapshot[subject]
	unsubscribe := mgr.Subscribe(func(s resource.Snapshot[subject]) {
		snaps = append(snaps, s)
	})

	if err := mgr.Load(ctx, paginate.Query{Page: 1, PerPage: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Loading transition, then settled result.
	if len(snaps) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(snaps))
	}
	if !snaps[0].Loading {
		t.Error("first notification must be the loading state")
	}
	if snaps[1].Loading || len(snaps[1].Items) != 1 {
		t.Errorf("second notification must carry the result, got %+v", snaps[1])
	}

	unsubscribe()
	before := len(snaps)
	if err := mgr.ChangePage(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != before {
		t.Error("unsubscribed callback must not fire")
	}
}
