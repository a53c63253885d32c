package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/IsaacBreen/starfield/display"
	"github.com/IsaacBreen/starfield/internal/common"
)

// ReprArgs returns the structured representation of v: the elements of the
// variadic field as unlabeled entries, then every other constructible field
// as a labeled entry in declaration order.
func (c *Constructor[T]) ReprArgs(v T) []display.ReprArg {
	return c.reprArgs(reflect.ValueOf(v))
}

func (c *Constructor[T]) reprArgs(rv reflect.Value) []display.ReprArg {
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	var args []display.ReprArg
	if vf, ok := c.desc.VariadicField(); ok {
		items := rv.Field(vf.Index)
		for i := range items.Len() {
			args = append(args, display.Positional(items.Index(i).Interface()))
		}
	}
	for _, fd := range c.desc.Fields {
		if fd.Variadic || fd.Excluded {
			continue
		}
		args = append(args, display.Named(fd.Keyword, rv.Field(fd.Index).Interface()))
	}
	return args
}

// String renders v for a String method on T. With WithStringRepr it uses the
// structured display hook, Name("x", "y", label="L"); otherwise it renders
// the plain %+v struct form without calling v's own String method.
func (c *Constructor[T]) String(v T) string {
	if c.cfg.stringRepr {
		return display.Sprint(v)
	}

	rv := reflect.ValueOf(v)
	var b strings.Builder
	b.WriteString("{")
	n := 0
	for i := range rv.NumField() {
		sf := rv.Type().Field(i)
		if !sf.IsExported() || common.IsMarker(sf) {
			continue
		}
		if n > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%+v", sf.Name, rv.Field(i).Interface())
		n++
	}
	b.WriteString("}")
	return b.String()
}
