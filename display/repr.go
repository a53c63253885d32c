package display

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gookit/color"
)

// ReprArg is one entry of a structured representation. An empty Name
// renders the value unlabeled, ahead of the labeled entries.
type ReprArg struct {
	Name  string
	Value any
}

// Positional returns an unlabeled ReprArg.
func Positional(v any) ReprArg { return ReprArg{Value: v} }

// Named returns a labeled ReprArg.
func Named(name string, v any) ReprArg { return ReprArg{Name: name, Value: v} }

// ReprArgser is implemented by values that describe their own structured display.
type ReprArgser interface {
	ReprArgs() []ReprArg
}

// HookFunc produces the structured representation of a value of a registered type.
type HookFunc func(v reflect.Value) []ReprArg

type hook struct {
	name string
	fn   HookFunc
}

var (
	mu    sync.RWMutex
	hooks = map[reflect.Type]hook{}
)

// Register installs the display hook for t under the given display name.
// Registering a type again replaces its previous hook.
func Register(t reflect.Type, name string, fn HookFunc) {
	mu.Lock()
	defer mu.Unlock()
	hooks[t] = hook{name: name, fn: fn}
}

// Unregister removes the display hook for t.
func Unregister(t reflect.Type) {
	mu.Lock()
	defer mu.Unlock()
	delete(hooks, t)
}

// Registered reports whether t has a display hook.
func Registered(t reflect.Type) bool {
	_, ok := lookup(t)
	return ok
}

func lookup(t reflect.Type) (hook, bool) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := hooks[t]
	return h, ok
}

// Option configures Sprint and Fprint.
type Option func(*printer)

// WithColor styles type names, labels and strings with terminal colours.
// Colour is still dropped when the output does not support it.
func WithColor() Option {
	return func(p *printer) { p.color = true }
}

// WithIndent lays structured values out one entry per line, indented by n spaces per level.
func WithIndent(n int) Option {
	return func(p *printer) {
		if n > 0 {
			p.indent = n
		}
	}
}

// Sprint renders v, consulting registered hooks and ReprArgser implementations
// at every level. Values without a hook render with fmt's %v.
func Sprint(v any, opts ...Option) string {
	p := &printer{}
	for _, opt := range opts {
		opt(p)
	}
	p.value(reflect.ValueOf(v), 0)
	return p.b.String()
}

// Fprint writes the rendering of v to w.
func Fprint(w io.Writer, v any, opts ...Option) error {
	_, err := io.WriteString(w, Sprint(v, opts...))
	return err
}

// Args returns the structured representation of v and its display name, or
// ok=false when v has no hook.
func Args(v any) (name string, args []ReprArg, ok bool) {
	return argsOf(reflect.ValueOf(v))
}

func argsOf(rv reflect.Value) (string, []ReprArg, bool) {
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return "", nil, false
	}
	if h, ok := lookup(rv.Type()); ok {
		return h.name, h.fn(rv), true
	}
	if rv.CanInterface() {
		if r, ok := rv.Interface().(ReprArgser); ok {
			t := rv.Type()
			if t.Kind() == reflect.Pointer {
				t = t.Elem()
			}
			return t.Name(), r.ReprArgs(), true
		}
	}
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if h, ok := lookup(rv.Elem().Type()); ok {
			return h.name, h.fn(rv.Elem()), true
		}
	}
	return "", nil, false
}

type printer struct {
	b      strings.Builder
	color  bool
	indent int
}

func (p *printer) style(s string, c color.Style) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

func (p *printer) value(rv reflect.Value, depth int) {
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if isNil(rv) {
		p.b.WriteString(p.style("nil", color.Style{color.FgMagenta}))
		return
	}

	if name, args, ok := argsOf(rv); ok {
		p.record(name, args, depth)
		return
	}

	switch rv.Kind() {
	case reflect.String:
		p.b.WriteString(p.style(fmt.Sprintf("%q", rv.String()), color.Style{color.FgGreen}))
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			p.b.WriteString("[]")
			return
		}
		items := make([]ReprArg, rv.Len())
		for i := range rv.Len() {
			items[i] = Positional(rv.Index(i).Interface())
		}
		p.group("[", "]", items, depth)
	default:
		if rv.CanInterface() {
			fmt.Fprintf(&p.b, "%v", rv.Interface())
		} else {
			fmt.Fprintf(&p.b, "%v", rv)
		}
	}
}

// isNil reports whether rv is untyped nil or a nil pointer, map, func, chan
// or interface. Nil slices are left to render as empty sequences.
func isNil(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (p *printer) record(name string, args []ReprArg, depth int) {
	p.b.WriteString(p.style(name, color.Style{color.FgCyan, color.OpBold}))
	p.group("(", ")", args, depth)
}

func (p *printer) group(open, close string, args []ReprArg, depth int) {
	p.b.WriteString(open)
	if len(args) == 0 {
		p.b.WriteString(close)
		return
	}
	multiline := p.indent > 0
	for i, arg := range args {
		if multiline {
			p.b.WriteString("\n")
			p.b.WriteString(strings.Repeat(" ", (depth+1)*p.indent))
		} else if i > 0 {
			p.b.WriteString(", ")
		}
		if arg.Name != "" {
			p.b.WriteString(p.style(arg.Name, color.Style{color.FgYellow}))
			p.b.WriteString("=")
		}
		p.value(reflect.ValueOf(arg.Value), depth+1)
		if multiline {
			p.b.WriteString(",")
		}
	}
	if multiline {
		p.b.WriteString("\n")
		p.b.WriteString(strings.Repeat(" ", depth*p.indent))
	}
	p.b.WriteString(close)
}
