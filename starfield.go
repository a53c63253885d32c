package starfield

import "github.com/IsaacBreen/starfield/core"

// Define inspects the struct type T and builds its constructor.
//
// The field tagged `starfield:"*"` (or named by WithVariadic) becomes the
// variadic field and must be a slice. Every other exported field is
// keyword-only; its keyword is the `kw` tag or the snake_case field name.
// Fields with a `default` tag are optional, the rest are required.
//
// Define fails when more than one field is variadic, when the variadic field
// is not a slice, or when a default cannot be parsed. Every such error
// matches errors.ErrConfig.
//
// Usage:
//
//	type Span struct {
//	    Items []string `starfield:"*"`
//	    Label string
//	}
//
//	ctor, err := starfield.Define[Span]()
//	if err != nil {
//		log.Fatal(err)
//	}
//	span, err := ctor.New("x", "y", starfield.Kw("label", "L"))
func Define[T any](opts ...Option) (*Constructor[T], error) {
	return core.Define[T](opts...)
}

// MustDefine is like Define but panics on a definition error. It suits
// package-level constructor variables.
func MustDefine[T any](opts ...Option) *Constructor[T] {
	return core.MustDefine[T](opts...)
}

// Kw returns the keyword argument name=value for Constructor.New.
var Kw = core.Kw

// WithVariadic names the variadic field by its Go field name instead of a tag.
var WithVariadic = core.WithVariadic

// RequireVariadic makes a record type without a variadic field a definition error.
// Without it such a record is still built, with every field keyword-only.
var RequireVariadic = core.RequireVariadic

// WithRepr registers the record's structured-display hook with package display,
// so display.Sprint renders instances as Name("x", "y", label="L").
var WithRepr = core.WithRepr

// WithStringRepr is the explicit opt-in that makes Constructor.String use the
// structured-display hook. Use it to implement a String method:
//
//	func (n Node) String() string { return NewNode.String(n) }
var WithStringRepr = core.WithStringRepr

// WithName overrides the display name of the record type.
var WithName = core.WithName

// WithLogger sets the zerolog logger that receives definition events.
var WithLogger = core.WithLogger
