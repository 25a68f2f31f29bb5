package jishu_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "jishu-admin/pkg/errors"
	"jishu-admin/pkg/jishu"
	"jishu-admin/pkg/paginate"
)

type course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Method == http.MethodPost {
			var c course
			json.NewDecoder(r.Body).Decode(&c)
			c.ID = "c-1"
			json.NewEncoder(w).Encode(c)
			return
		}
		if r.Method == http.MethodGet {
			if r.URL.Query().Get("search") == "boom" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(paginate.Page[course]{
				Items:      []course{{ID: "c-1", Name: "Physics 101"}},
				Pagination: paginate.Pagination{Page: 1, Pages: 1, Total: 1, PerPage: 20},
			})
			return
		}
	})

	mux.HandleFunc("/courses/c-1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(course{ID: "c-1", Name: "Physics 101"})
		case http.MethodPut:
			var c course
			json.NewDecoder(r.Body).Decode(&c)
			c.ID = "c-1"
			json.NewEncoder(w).Encode(c)
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	})

	mux.HandleFunc("/courses/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := jishu.NewClient(ts.URL, "test-token", 0)
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		page, err := jishu.List[course](ctx, client, "courses", paginate.Query{Page: 1, PerPage: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].Name != "Physics 101" {
			t.Errorf("unexpected page: %+v", page)
		}
		if page.Pagination.Total != 1 {
			t.Errorf("expected total 1, got %d", page.Pagination.Total)
		}
	})

	t.Run("List Upstream Failure Is Network Error", func(t *testing.T) {
		_, err := jishu.List[course](ctx, client, "courses", paginate.Query{Page: 1, PerPage: 20, Search: "boom"})
		if !pkgErrors.IsNetwork(err) {
			t.Errorf("expected network error, got %v", err)
		}
	})

	t.Run("Create", func(t *testing.T) {
		created, err := jishu.Create[course](ctx, client, "courses", course{Name: "Algebra"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "c-1" || created.Name != "Algebra" {
			t.Errorf("unexpected created entity: %+v", created)
		}
	})

	t.Run("Get", func(t *testing.T) {
		got, err := jishu.Get[course](ctx, client, "courses", "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Physics 101" {
			t.Errorf("unexpected entity: %+v", got)
		}
	})

	t.Run("Get Missing Is Not Found", func(t *testing.T) {
		_, err := jishu.Get[course](ctx, client, "courses", "missing")
		if !pkgErrors.IsNotFound(err) {
			t.Errorf("expected not-found error, got %v", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		updated, err := jishu.Update[course](ctx, client, "courses", "c-1", course{Name: "Physics 201"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Physics 201" {
			t.Errorf("unexpected entity: %+v", updated)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := jishu.Delete(ctx, client, "courses", "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCollectionWithoutToggle(t *testing.T) {
	// No server: the guard must fire before any request goes out.
	coll := jishu.NewCollection[course](jishu.NewClient("http://127.0.0.1:0", "", 0), "courses", nil)

	_, err := coll.ToggleStatus(context.Background(), "c-1")
	if !errors.Is(err, jishu.ErrNoToggle) {
		t.Errorf("expected ErrNoToggle, got %v", err)
	}
}
