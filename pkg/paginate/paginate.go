package paginate

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Query identifies one page of a remote collection. Any field change
// means a different page of results and therefore a refetch.
type Query struct {
	Page    int
	PerPage int
	Search  string
	Filters map[string]string
	OrderBy string
}

// Normalize returns a copy with Page and PerPage forced into valid ranges.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage <= 0 || q.PerPage > MaxPerPage {
		q.PerPage = DefaultPerPage
	}
	return q
}

// WithPage returns a copy of q pointing at page n.
func (q Query) WithPage(n int) Query {
	q.Page = n
	return q
}

// Values encodes the query as upstream API parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	for name, val := range q.Filters {
		if val != "" {
			v.Set(name, val)
		}
	}
	return v
}

// Key returns a stable string identity for the query, usable as a cache key.
// Filters are emitted in sorted order so equal queries always collide.
func (q Query) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(q.Page))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(q.PerPage))
	b.WriteByte('|')
	b.WriteString(q.Search)
	b.WriteByte('|')
	b.WriteString(q.OrderBy)

	names := make([]string, 0, len(q.Filters))
	for name := range q.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte('|')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(q.Filters[name])
	}
	return b.String()
}

// Pagination describes where a page sits inside the full collection.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// Page is one fetched page of a collection.
// Invariant: 1 <= Pagination.Page <= Pagination.Pages, except Pages == 0
// when Total == 0; len(Items) never exceeds Pagination.PerPage.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PageCount returns the number of pages needed to hold total items.
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// Clamp forces page into [1, pages]. With an empty collection (pages == 0)
// the only sensible page is 1.
func Clamp(page, pages int) int {
	if pages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// MatchSearch reports whether any field contains term, case-insensitively.
// An empty term matches everything.
func MatchSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
