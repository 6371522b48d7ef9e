// Package toolkit defines the widget abstraction targeted by the markup
// compiler.
//
// A [Toolkit] turns widget kinds into concrete [Widget] values and runs the
// resulting interface. The compiler in package lang drives any Toolkit
// implementation; package term provides the terminal renderer used by the
// command line tool, and tests substitute lightweight doubles.
//
// Geometry management is expressed as [Layout] strategies named in markup
// (pack, grid, place). Containers opt into a strategy by implementing the
// matching capability interface ([PackContainer], [GridContainer],
// [PlaceContainer]); attaching a child through a strategy the parent does
// not support fails with [ErrLayoutOption].
//
// Widgets that select or edit values share state through [Variable]
// implementations ([IntVar], [StringVar]). Variables notify registered
// watchers on every store, which is how a terminal widget repaints when a
// callback mutates its backing value.
package toolkit
