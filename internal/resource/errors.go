package resource

import "errors"

var (
	// ErrSuperseded is returned from Load when a newer Load took over
	// before this one resolved. The caller's result was discarded.
	ErrSuperseded = errors.New("load superseded by a newer query")

	// ErrNotOnPage is returned when a mutation targets an id that is not
	// part of the currently displayed page. The list is left unchanged.
	ErrNotOnPage = errors.New("item not on current page")

	// ErrEmptyName is returned when a create payload has no name.
	ErrEmptyName = errors.New("name is required")
)
