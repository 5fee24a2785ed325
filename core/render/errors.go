package render

import "errors"

var (
	// ErrViewNotFound is returned when no template or component is
	// registered under the view name.
	ErrViewNotFound = errors.New("view not found")

	// ErrNoTemplates is returned when a template set holds no templates.
	ErrNoTemplates = errors.New("no templates parsed")
)
