package core

import (
	"maps"
	"reflect"
	"slices"

	"github.com/IsaacBreen/starfield/display"
	"github.com/IsaacBreen/starfield/errors"
	"github.com/IsaacBreen/starfield/internal/common"
)

// Constructor is the construction entry point of a record type T, built once
// by Define. It takes any number of positional arguments, collected into the
// variadic field, and keyword arguments for every other field.
type Constructor[T any] struct {
	desc      *RecordDescriptor
	byKeyword map[string]*FieldDescriptor
	keywords  []string
	cfg       *config
}

// Define inspects T and builds its constructor. All definition errors are
// reported here and match errors.ErrConfig.
func Define[T any](opts ...Option) (*Constructor[T], error) {
	cfg := newConfig(opts)
	t := reflect.TypeFor[T]()

	desc, err := describe(t, cfg)
	if err != nil {
		cfg.logger.Debug().Err(err).Str("type", common.TypeName(t)).Msg("record definition rejected")
		return nil, err
	}

	c := &Constructor[T]{
		desc:      desc,
		byKeyword: make(map[string]*FieldDescriptor, len(desc.Fields)),
		cfg:       cfg,
	}
	for i := range desc.Fields {
		fd := &desc.Fields[i]
		if fd.Excluded {
			continue
		}
		c.byKeyword[fd.Keyword] = fd
		c.keywords = append(c.keywords, fd.Keyword)
	}

	register(t, c)
	if cfg.repr {
		display.Register(t, desc.Name, c.reprArgs)
	}

	variadic := ""
	if vf, ok := desc.VariadicField(); ok {
		variadic = vf.Keyword
	}
	cfg.logger.Debug().
		Str("record", desc.Name).
		Str("variadic", variadic).
		Strs("keywords", c.keywords).
		Bool("repr", cfg.repr).
		Msg("record defined")

	return c, nil
}

// MustDefine is like Define but panics on a definition error.
func MustDefine[T any](opts ...Option) *Constructor[T] {
	c, err := Define[T](opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Descriptor returns the record descriptor built at definition time.
func (c *Constructor[T]) Descriptor() RecordDescriptor {
	d := *c.desc
	d.Fields = slices.Clone(c.desc.Fields)
	return d
}

// Call constructs an instance from positional and keyword arguments.
//
// positional becomes the variadic field unless keywords carries an explicit
// value for it, in which case positional must be empty. Every other field is
// keyword-only. No instance is produced on error.
func (c *Constructor[T]) Call(positional []any, keywords map[string]any) (T, error) {
	var zero T
	rv, err := c.build(positional, keywords)
	if err != nil {
		return zero, err
	}
	return rv.Interface().(T), nil
}

// New constructs an instance using Go's variadic calling convention.
// Keyword values (see Kw) and Kwargs maps are keyword arguments; every other
// argument is positional. Positional arguments must precede keywords.
//
//	tree, err := Node.New(leafA, leafB, Kw("label", "root"))
func (c *Constructor[T]) New(args ...any) (T, error) {
	var zero T
	positional, keywords, err := splitArgs(args)
	if err != nil {
		return zero, err
	}
	return c.Call(positional, keywords)
}

// MustNew is like New but panics on error. It suits literal trees.
func (c *Constructor[T]) MustNew(args ...any) T {
	v, err := c.New(args...)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Constructor[T]) build(positional []any, keywords map[string]any) (reflect.Value, error) {
	d := c.desc
	out := reflect.New(d.Type).Elem()

	if vf, ok := d.VariadicField(); ok {
		var val reflect.Value
		var err error
		if explicit, given := keywords[vf.Keyword]; given {
			if len(positional) > 0 {
				return reflect.Value{}, errors.NewAmbiguousVariadic(vf.Keyword)
			}
			val, err = coerce(vf.Keyword, explicit, vf.Type)
		} else {
			val, err = coerceValue(vf.Keyword, reflect.ValueOf(positional), vf.Type)
		}
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(vf.Index).Set(val)
	} else if len(positional) > 0 {
		return reflect.Value{}, errors.NewPositionalArg(len(positional))
	}

	for _, name := range slices.Sorted(maps.Keys(keywords)) {
		fd, ok := c.byKeyword[name]
		if !ok {
			return reflect.Value{}, errors.NewUnexpectedArg(name, closestMatch(name, c.keywords))
		}
		if fd.Variadic {
			continue
		}
		val, err := coerce(name, keywords[name], fd.Type)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(fd.Index).Set(val)
	}

	for _, fd := range d.Fields {
		if fd.Variadic {
			continue
		}
		if !fd.Excluded {
			if _, given := keywords[fd.Keyword]; given {
				continue
			}
		}
		if fd.HasDefault {
			out.Field(fd.Index).Set(fd.Default)
			continue
		}
		if fd.Required() {
			return reflect.Value{}, errors.NewMissingArg(fd.Keyword)
		}
	}

	return out, nil
}

// splitArgs separates the arguments of New into positional and keyword arguments.
func splitArgs(args []any) ([]any, map[string]any, error) {
	var positional []any
	var keywords map[string]any
	seenKeyword := false

	add := func(name string, v any) error {
		if keywords == nil {
			keywords = map[string]any{}
		}
		if _, dup := keywords[name]; dup {
			return errors.NewDuplicateArg(name)
		}
		keywords[name] = v
		return nil
	}

	for i, arg := range args {
		switch a := arg.(type) {
		case Keyword:
			seenKeyword = true
			if err := add(a.Name, a.Value); err != nil {
				return nil, nil, err
			}
		case Kwargs:
			seenKeyword = true
			for _, name := range slices.Sorted(maps.Keys(a)) {
				if err := add(name, a[name]); err != nil {
					return nil, nil, err
				}
			}
		default:
			if seenKeyword {
				return nil, nil, errors.NewPositionalAfterKeyword(i)
			}
			positional = append(positional, arg)
		}
	}
	return positional, keywords, nil
}
