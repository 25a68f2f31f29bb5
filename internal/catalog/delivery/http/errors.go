package http

import (
	"errors"

	"jishu-admin/internal/catalog"
	pkgErrors "jishu-admin/pkg/errors"
)

var errMissingID = pkgErrors.NewValidationError("id is required")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNameRequired),
		errors.Is(err, catalog.ErrCourseRequired),
		errors.Is(err, catalog.ErrNegativePrice):
		return pkgErrors.NewValidationError(err.Error())
	case errors.Is(err, catalog.ErrCourseNotFound),
		errors.Is(err, catalog.ErrSubjectNotFound):
		return pkgErrors.NewNotFoundError(err.Error())
	}

	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return pkgErrors.NewNetworkError("upstream request failed")
}
