package term

import "github.com/teadoc/teadoc/toolkit"

// Predefined errors (sentinel values).
var (
	ErrNotWindow   = toolkit.NewError("root widget is not a window")
	ErrCannotFocus = toolkit.NewError("widget cannot accept focus")
	ErrThemeConfig = toolkit.NewError("failed to load theme configuration")
)
