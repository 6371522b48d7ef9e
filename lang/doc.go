// Package lang compiles declarative markup documents into widget trees.
//
// # Markup
//
// A document is a stream of tags. Each tag begins with a marker rune and
// runs to the next marker; newlines and tabs carry no meaning:
//
//	\	open an element and nest inside it
//	/	close the innermost element, placing it in its parent
//	|	open and close an element in one tag
//	$	call a function, or import a module
//	,	add an argument to the preceding tag
//
// Arguments containing an equals sign become keyword arguments, split at
// the first equals sign. Everything else is positional:
//
//	\root
//	  , title = Login
//	  \frame
//	    | label , text = Username
//	    | entry , key = username
//	  / , layout = grid , row = 0 , column = 0
//	/
//
// Three keyword names are reserved: key registers the element under a
// name, var_key names the shared variable of radio, check, and combo
// elements, and layout selects the layout manager when an element closes.
//
// # Literals
//
// Argument values evaluate by shape. The exact words True and False are
// booleans; text shaped like a number is an int or float; {a:b:c} is a
// list; ?alias.fn references an imported function; ??alias.fn references
// an imported function that receives the compiled interface as its first
// argument when invoked. Anything else is a string, with one layer of
// surrounding double quotes removed.
//
// # Compilation
//
// [Compiler.Compile] processes tags strictly in document order. Structural
// tags stage one pending action each, argument tags accumulate onto it,
// and the next structural tag commits it. Import statements execute
// immediately so imported names are available to the arguments that
// follow. The result is a [GUI]: the root widget plus a registry of named
// elements and shared variables.
package lang
