package http

import (
	"errors"

	"jishu-admin/internal/user"
	pkgErrors "jishu-admin/pkg/errors"
)

var errMissingID = pkgErrors.NewValidationError("id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrNameRequired),
		errors.Is(err, user.ErrEmailRequired),
		errors.Is(err, user.ErrInvalidRole):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	}

	// Upstream failures already carry their taxonomy.
	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return pkgErrors.NewNetworkError("upstream request failed")
}
