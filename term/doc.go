// Package term renders compiled documents in the terminal.
//
// It implements [toolkit.Toolkit] on Bubble Tea: widgets are lipgloss
// renderers, containers realize the pack, grid, and place strategies as
// string composition, and [Toolkit.Run] drives a program that routes
// keystrokes to the focused widget. Tab and Shift+Tab cycle focus, Enter
// and Space activate, and Ctrl+C quits.
//
// Colors come from a [Theme], either [DefaultTheme] or one loaded from the
// user's configuration directory with [LoadTheme].
package term
