package lang

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/teadoc/teadoc/log"
	"github.com/teadoc/teadoc/toolkit"
)

// Compiler translates markup documents into widget trees. Tags are
// processed strictly in document order: each structural tag stages one
// action, subsequent argument tags accumulate onto it, and the next
// structural tag commits it. At most one action is ever pending.
//
// A Compiler is reusable but not safe for concurrent use. Imports persist
// across documents compiled by the same Compiler.
type Compiler struct {
	tk       toolkit.Toolkit
	resolver Resolver
	builder  *Builder
	log      log.Logger

	imports map[string]Module
	pending *action
	promise *guiPromise
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithResolver supplies the modules documents may import.
func WithResolver(r Resolver) Option {
	return func(c *Compiler) { c.resolver = r }
}

// WithLogger routes compilation diagnostics to the given logger.
func WithLogger(l log.Logger) Option {
	return func(c *Compiler) { c.log = l }
}

// New constructs a Compiler that realizes elements with the given toolkit.
func New(tk toolkit.Toolkit, opts ...Option) *Compiler {
	c := &Compiler{
		tk:      tk,
		builder: NewBuilder(tk),
		imports: make(map[string]Module),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.builder.log = c.log

	return c
}

// Compile scans the document, processes every tag, and returns the
// finished interface. The document may be markup text or the path of a
// file containing markup. The first error aborts compilation.
func (c *Compiler) Compile(ctx context.Context, document string) (*GUI, error) {
	defer func() { c.pending = nil }()

	scanner, err := NewScanner(document)
	if err != nil {
		return nil, err
	}

	c.promise = &guiPromise{}
	c.builder.promise = c.promise

	for tag := range scanner.Tags() {
		c.log.TraceContext(ctx, "tag",
			slog.String("marker", string(tag.Marker)),
			slog.String("payload", tag.Payload),
		)

		if err := c.process(ctx, tag); err != nil {
			return nil, WrapError(err).With(slog.String("tag", tag.String()))
		}
	}

	if err := c.commit(ctx); err != nil {
		return nil, err
	}

	return c.builder.Finalize()
}

// process dispatches one tag by marker. Structural markers commit the
// pending action before staging their own; argument markers extend the
// pending action in place.
func (c *Compiler) process(ctx context.Context, tag Tag) error {
	switch tag.Marker {
	case MarkerArgument:
		return c.processArgument(tag.Payload)

	case MarkerOpen:
		if err := c.commit(ctx); err != nil {
			return err
		}

		return c.stageOpen(tag.Payload)

	case MarkerClose:
		if err := c.commit(ctx); err != nil {
			return err
		}

		c.stageClose()

		return nil

	case MarkerSinglet:
		if err := c.commit(ctx); err != nil {
			return err
		}

		return c.stageSinglet(tag.Payload)

	case MarkerCall:
		return c.processCall(ctx, tag.Payload)
	}

	return ErrUnknownTag.With(
		slog.String("marker", string(tag.Marker)),
		slog.String("payload", tag.Payload),
	)
}

// commit executes and clears the pending action. The action is cleared
// before it runs, so an action observing compiler state never sees itself
// pending.
func (c *Compiler) commit(ctx context.Context) error {
	act := c.pending
	if act == nil {
		return nil
	}

	c.pending = nil

	c.log.DebugContext(ctx, "commit",
		slog.String("action", act.name),
		slog.Int("args", len(act.args)),
		slog.Int("options", len(act.kw.order)),
	)

	return act.do(ctx, act.args, &act.kw)
}

func (c *Compiler) stageOpen(payload string) error {
	kind, err := c.parseKind(payload)
	if err != nil {
		return err
	}

	c.pending = &action{
		name: "open " + kind.String(),
		do: func(_ context.Context, args []Value, kw *keywords) error {
			return c.builder.Open(kind, valuesToAny(args), kw.options())
		},
	}

	return nil
}

// stageClose stages a close action. Any payload after the marker carries
// no meaning and is discarded.
func (c *Compiler) stageClose() {
	c.pending = &action{
		name: "close",
		do: func(_ context.Context, args []Value, kw *keywords) error {
			return c.builder.Close(valuesToAny(args), kw.options())
		},
	}
}

// stageSinglet stages an element that opens and closes in one tag. Its
// keyword arguments split at the first layout key: options before it
// configure the element, the layout key and everything after place it.
func (c *Compiler) stageSinglet(payload string) error {
	kind, err := c.parseKind(payload)
	if err != nil {
		return err
	}

	c.pending = &action{
		name: "singlet " + kind.String(),
		do: func(_ context.Context, args []Value, kw *keywords) error {
			widget, layout := kw.split(KeyLayout)

			if err := c.builder.Open(kind, valuesToAny(args), widget.options()); err != nil {
				return err
			}

			return c.builder.Close(nil, layout.options())
		},
	}

	return nil
}

// processCall handles a call tag. Import statements execute immediately
// without committing the pending action, so they may appear between a
// staged element and its arguments. Every other call commits the pending
// action and stages the invocation of the named function.
func (c *Compiler) processCall(ctx context.Context, payload string) error {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return ErrUnknownFunction.With(slog.String("call", payload))
	}

	if fields[0] == importKeyword {
		return c.importModule(ctx, fields[1:])
	}

	if err := c.commit(ctx); err != nil {
		return err
	}

	target := fields[0]

	fn, err := c.dereference(target)
	if err != nil {
		return err
	}

	c.pending = &action{
		name: "call " + target,
		do: func(ctx context.Context, args []Value, kw *keywords) error {
			result, err := fn(ctx, valuesToAny(args), kw.options())
			if err != nil {
				return WrapError(err).With(slog.String("function", target))
			}

			c.log.DebugContext(ctx, "call returned",
				slog.String("function", target),
				slog.Any("result", result),
			)

			return nil
		},
	}

	return nil
}

// importModule resolves a module by name and binds it under its alias.
// The statement form is "import <module> [as <alias>]"; without an alias
// the module binds under the last dot-separated component of its name.
func (c *Compiler) importModule(ctx context.Context, parts []string) error {
	parts = slices.DeleteFunc(parts, func(s string) bool { return s == aliasKeyword })
	if len(parts) == 0 {
		return ErrInvalidImport
	}

	name := parts[0]
	if strings.HasPrefix(name, ".") {
		return ErrRelativeImport.With(slog.String("module", name))
	}

	alias := name[strings.LastIndex(name, ".")+1:]
	if len(parts) > 1 {
		alias = parts[1]
	}

	if c.resolver == nil {
		return ErrUnknownModule.With(slog.String("module", name))
	}

	mod, ok := c.resolver.Resolve(name)
	if !ok {
		err := ErrUnknownModule.With(slog.String("module", name))
		if hint := suggest(name, c.resolver.Modules()); hint != "" {
			err = err.With(slog.String("suggestion", hint))
		}

		return err
	}

	c.imports[alias] = mod

	c.log.DebugContext(ctx, "imported module",
		slog.String("module", name),
		slog.String("alias", alias),
	)

	return nil
}

// processArgument extends the pending action with one argument. Text
// containing an assignment becomes a keyword argument split at the first
// equals sign; anything else appends positionally.
func (c *Compiler) processArgument(payload string) error {
	if c.pending == nil {
		return ErrIncoherentArgument.With(slog.String("argument", payload))
	}

	if key, literal, ok := strings.Cut(payload, "="); ok {
		v, err := c.evaluate(strings.TrimSpace(literal))
		if err != nil {
			return err
		}

		c.pending.kw.set(strings.TrimSpace(key), v)

		return nil
	}

	v, err := c.evaluate(payload)
	if err != nil {
		return err
	}

	c.pending.args = append(c.pending.args, v)

	return nil
}

// dereference resolves "<alias>.<function>" against the imported modules.
func (c *Compiler) dereference(target string) (toolkit.Func, error) {
	alias, name, ok := strings.Cut(target, ".")
	if !ok || alias == "" || name == "" {
		return nil, ErrUnknownFunction.With(slog.String("target", target))
	}

	mod, ok := c.imports[alias]
	if !ok {
		err := ErrUnknownModule.With(slog.String("module", alias))
		if hint := suggest(alias, maps.Keys(c.imports)); hint != "" {
			err = err.With(slog.String("suggestion", hint))
		}

		return nil, err
	}

	fn, ok := mod.Func(name)
	if !ok {
		err := ErrUnknownFunction.With(
			slog.String("module", alias),
			slog.String("function", name),
		)

		if lister, ok := mod.(FuncLister); ok {
			if hint := suggest(name, lister.Funcs()); hint != "" {
				err = err.With(slog.String("suggestion", hint))
			}
		}

		return nil, err
	}

	return fn, nil
}

func (c *Compiler) parseKind(payload string) (toolkit.Kind, error) {
	kind, ok := toolkit.ParseKind(payload)
	if !ok {
		err := ErrInvalidWidget.With(slog.String("kind", payload))
		if hint := toolkit.SuggestKind(payload); hint != "" {
			err = err.With(slog.String("suggestion", hint))
		}

		return 0, err
	}

	return kind, nil
}

// action is one staged tag pending commitment. Arguments accumulate onto
// it until the next structural tag commits it through do.
type action struct {
	name string
	args []Value
	kw   keywords
	do   func(ctx context.Context, args []Value, kw *keywords) error
}

// keywords holds keyword arguments in assignment order. Reassigning a key
// replaces its value but keeps its original position.
type keywords struct {
	order  []string
	values map[string]Value
}

func (k *keywords) set(key string, v Value) {
	if k.values == nil {
		k.values = make(map[string]Value)
	}

	if _, ok := k.values[key]; !ok {
		k.order = append(k.order, key)
	}

	k.values[key] = v
}

// options unwraps the keywords into toolkit options.
func (k *keywords) options() toolkit.Options {
	opts := make(toolkit.Options, len(k.order))
	for _, key := range k.order {
		opts[key] = k.values[key].Interface()
	}

	return opts
}

// split partitions the keywords at the first occurrence of key: entries
// before it land in pre, the entry itself and everything after land in
// post. When key is absent everything lands in pre.
func (k *keywords) split(key string) (pre, post keywords) {
	at := slices.Index(k.order, key)
	if at < 0 {
		return *k, keywords{}
	}

	for i, name := range k.order {
		if i < at {
			pre.set(name, k.values[name])
		} else {
			post.set(name, k.values[name])
		}
	}

	return pre, post
}

func valuesToAny(values []Value) []any {
	if len(values) == 0 {
		return nil
	}

	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v.Interface()
	}

	return args
}
