package http

import (
	"jishu-admin/internal/model"
	"jishu-admin/internal/user"
	"jishu-admin/pkg/paginate"
	"jishu-admin/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
	Role    string `form:"role"`
	Status  string `form:"status"`
}

func (r listReq) toInput() user.ListUsersInput {
	return user.ListUsersInput{
		Page:    r.Page,
		PerPage: r.PerPage,
		Search:  r.Search,
		Role:    r.Role,
		Status:  r.Status,
	}
}

type changePageReq struct {
	Page int `json:"page" binding:"required"`
}

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"max=32"`
	Role  string `json:"role"  binding:"omitempty,oneof=student admin"`
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Role:  r.Role,
	}
}

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"omitempty,min=1,max=255"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"max=32"`
	Role  string `json:"role"  binding:"omitempty,oneof=student admin"`
}

func (r updateReq) toInput() user.UpdateUserInput {
	return user.UpdateUserInput{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Role:  r.Role,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	Role      string            `json:"role"`
	Status    string            `json:"status"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: response.DateTime(u.CreatedAt),
		UpdatedAt: response.DateTime(u.UpdatedAt),
	}
}

type listResp struct {
	Items      []userResp          `json:"items"`
	Pagination paginate.Pagination `json:"pagination"`
	Loading    bool                `json:"loading"`
}

func (h *handler) newListResp(out user.ListUsersOutput) listResp {
	items := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		items[i] = newUserResp(u)
	}
	return listResp{
		Items:      items,
		Pagination: out.Pagination,
		Loading:    out.Loading,
	}
}

type userDetailResp struct {
	User userResp `json:"user"`
}
