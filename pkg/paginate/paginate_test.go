package paginate_test

import (
	"testing"

	"jishu-admin/pkg/paginate"
)

func TestPageCount(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		perPage int
		want    int
	}{
		{"Exact Multiple", 40, 10, 4},
		{"Partial Last Page", 25, 10, 3},
		{"Single Page", 5, 10, 1},
		{"Empty Collection", 0, 10, 0},
		{"Invalid PerPage", 25, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := paginate.PageCount(tc.total, tc.perPage); got != tc.want {
				t.Errorf("PageCount(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name  string
		page  int
		pages int
		want  int
	}{
		{"In Range", 2, 3, 2},
		{"Beyond Last", 7, 3, 3},
		{"Below First", 0, 3, 1},
		{"Empty Collection", 5, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := paginate.Clamp(tc.page, tc.pages); got != tc.want {
				t.Errorf("Clamp(%d, %d) = %d, want %d", tc.page, tc.pages, got, tc.want)
			}
		})
	}
}

func TestMatchSearch(t *testing.T) {
	t.Run("Case Insensitive Substring", func(t *testing.T) {
		if !paginate.MatchSearch("physics", "Physics 101") {
			t.Error("expected 'physics' to match 'Physics 101'")
		}
		if paginate.MatchSearch("physics", "Chemistry") {
			t.Error("expected 'physics' not to match 'Chemistry'")
		}
	})

	t.Run("Any Field Matches", func(t *testing.T) {
		if !paginate.MatchSearch("smith", "Course", "John Smith") {
			t.Error("expected match on second field")
		}
	})

	t.Run("Empty Term Matches All", func(t *testing.T) {
		if !paginate.MatchSearch("", "anything") {
			t.Error("empty term should match")
		}
	})
}

func TestQueryNormalize(t *testing.T) {
	q := paginate.Query{Page: 0, PerPage: -5}.Normalize()
	if q.Page != 1 {
		t.Errorf("expected page 1, got %d", q.Page)
	}
	if q.PerPage != paginate.DefaultPerPage {
		t.Errorf("expected per_page %d, got %d", paginate.DefaultPerPage, q.PerPage)
	}

	q = paginate.Query{Page: 2, PerPage: 500}.Normalize()
	if q.PerPage != paginate.DefaultPerPage {
		t.Errorf("oversized per_page should reset to default, got %d", q.PerPage)
	}
}

func TestQueryKey(t *testing.T) {
	t.Run("Filter Order Does Not Matter", func(t *testing.T) {
		a := paginate.Query{Page: 1, PerPage: 10, Filters: map[string]string{"status": "active", "role": "admin"}}
		b := paginate.Query{Page: 1, PerPage: 10, Filters: map[string]string{"role": "admin", "status": "active"}}
		if a.Key() != b.Key() {
			t.Errorf("equal queries produced different keys: %q vs %q", a.Key(), b.Key())
		}
	})

	t.Run("Different Pages Differ", func(t *testing.T) {
		a := paginate.Query{Page: 1, PerPage: 10}
		b := paginate.Query{Page: 2, PerPage: 10}
		if a.Key() == b.Key() {
			t.Error("different pages must not share a key")
		}
	})
}

func TestQueryValues(t *testing.T) {
	q := paginate.Query{
		Page:    2,
		PerPage: 10,
		Search:  "algebra",
		Filters: map[string]string{"status": "active", "empty": ""},
	}
	v := q.Values()
	if v.Get("page") != "2" || v.Get("per_page") != "10" {
		t.Errorf("unexpected pagination params: %v", v)
	}
	if v.Get("search") != "algebra" {
		t.Errorf("unexpected search param: %q", v.Get("search"))
	}
	if v.Get("status") != "active" {
		t.Errorf("unexpected status filter: %q", v.Get("status"))
	}
	if _, ok := v["empty"]; ok {
		t.Error("empty filter values must be omitted")
	}
}
