package content

import (
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
)

// --- Post Inputs/Outputs ---

type ListPostsInput struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}

func (i ListPostsInput) Query() paginate.Query {
	filters := map[string]string{}
	if i.Status != "" {
		filters["status"] = i.Status
	}
	return paginate.Query{
		Page:    i.Page,
		PerPage: i.PerPage,
		Search:  i.Search,
		Filters: filters,
	}.Normalize()
}

type CreatePostInput struct {
	Title  string
	Body   string
	Author string
}

type UpdatePostInput struct {
	ID    string
	Title string
	Body  string
}

type ListPostsOutput struct {
	Posts      []model.Post
	Pagination paginate.Pagination
	Loading    bool
}

type PostOutput struct {
	Post model.Post
}

// --- Comment Inputs/Outputs ---

type ListCommentsInput struct {
	Page           int
	PerPage        int
	Search         string
	PostID         string
	IncludeDeleted bool
}

func (i ListCommentsInput) Query() paginate.Query {
	filters := map[string]string{}
	if i.PostID != "" {
		filters["post_id"] = i.PostID
	}
	// Soft-deleted comments stay upstream; hide them unless asked for.
	if !i.IncludeDeleted {
		filters["deleted"] = "false"
	}
	return paginate.Query{
		Page:    i.Page,
		PerPage: i.PerPage,
		Search:  i.Search,
		Filters: filters,
	}.Normalize()
}

type ListCommentsOutput struct {
	Comments   []model.Comment
	Pagination paginate.Pagination
	Loading    bool
}
