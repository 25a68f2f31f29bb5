package user

import (
	"jishu-admin/internal/model"
	"jishu-admin/pkg/paginate"
)

// --- UseCase Inputs ---

type ListUsersInput struct {
	Page    int
	PerPage int
	Search  string
	Role    string
	Status  string
}

// Query translates the input into a resource query.
func (i ListUsersInput) Query() paginate.Query {
	filters := map[string]string{}
	if i.Role != "" {
		filters["role"] = i.Role
	}
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

type CreateUserInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

type UpdateUserInput struct {
	ID    string
	Name  string
	Email string
	Phone string
	Role  string
}

// --- UseCase Outputs ---

type ListUsersOutput struct {
	Users      []model.User
	Pagination paginate.Pagination
	Loading    bool
}

type DetailUserOutput struct {
	User model.User
}

type CreateUserOutput struct {
	User model.User
}

type UpdateUserOutput struct {
	User model.User
}

type ToggleUserStatusOutput struct {
	User model.User
}
