package http

import (
	"jishu-admin/internal/content"
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
	"jishu-admin/pkg/response"
)

// --- Post DTOs ---

type listPostsReq struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
	Status  string `form:"status"`
}

func (r listPostsReq) toInput() content.ListPostsInput {
	return content.ListPostsInput{
		Page:    r.Page,
		PerPage: r.PerPage,
		Search:  r.Search,
		Status:  r.Status,
	}
}

type postReq struct {
	ID     string `json:"-"`
	Title  string `json:"title"  binding:"required,min=1,max=255"`
	Body   string `json:"body"   binding:"required"`
	Author string `json:"author" binding:"max=255"`
}

type postResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Author    string            `json:"author,omitempty"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newPostResp(p model.Post) postResp {
	return postResp{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Author:    p.Author,
		Status:    p.Status,
		CreatedAt: response.DateTime(p.CreatedAt),
		UpdatedAt: response.DateTime(p.UpdatedAt),
	}
}

type listPostsResp struct {
	Items      []postResp          `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
	Loading    bool                `json:"loading"`
}

func (h *handler) newListPostsResp(out content.ListPostsOutput) listPostsResp {
	items := make([]postResp, len(out.Posts))
	for i, p := range out.Posts {
		items[i] = newPostResp(p)
	}
	return listPostsResp{
		Items:      items,
		Pagination: out.Pagination,
		Loading:    out.Loading,
	}
}

type postDetailResp struct {
	Post postResp `json:"post"`
}

// --- Comment DTOs ---

type listCommentsReq struct {
	Page           int    `form:"page"`
	PerPage        int    `form:"per_page"`
	Search         string `form:"search"`
	PostID         string `form:"post_id"`
	IncludeDeleted bool   `form:"include_deleted"`
}

func (r listCommentsReq) toInput() content.ListCommentsInput {
	return content.ListCommentsInput{
		Page:           r.Page,
		PerPage:        r.PerPage,
		Search:         r.Search,
		PostID:         r.PostID,
		IncludeDeleted: r.IncludeDeleted,
	}
}

type commentResp struct {
	ID        string            `json:"id"`
	PostID    string            `json:"post_id"`
	Author    string            `json:"author"`
	Body      string            `json:"body"`
	Deleted   bool              `json:"deleted"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    c.Author,
		Body:      c.Body,
		Deleted:   c.Deleted,
		CreatedAt: response.DateTime(c.CreatedAt),
		UpdatedAt: response.DateTime(c.UpdatedAt),
	}
}

type listCommentsResp struct {
	Items      []commentResp       `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
	Loading    bool                `json:"loading"`
}

func (h *handler) newListCommentsResp(out content.ListCommentsOutput) listCommentsResp {
	items := make([]commentResp, len(out.Comments))
	for i, c := range out.Comments {
		items[i] = newCommentResp(c)
	}
	return listCommentsResp{
		Items:      items,
		Pagination: out.Pagination,
		Loading:    out.Loading,
	}
}
