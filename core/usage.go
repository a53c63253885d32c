package core

import (
	"fmt"
	"strings"

	"github.com/IsaacBreen/starfield/display"
)

// Signature returns the calling convention of the record, e.g.
// Node(*children, label, weight=1).
func (c *Constructor[T]) Signature() string {
	var params []string
	if vf, ok := c.desc.VariadicField(); ok {
		params = append(params, "*"+vf.Keyword)
	}
	for _, fd := range c.desc.Fields {
		if fd.Variadic || fd.Excluded {
			continue
		}
		if fd.HasDefault {
			params = append(params, fd.Keyword+"="+display.Sprint(fd.Default.Interface()))
			continue
		}
		params = append(params, fd.Keyword)
	}
	return fmt.Sprintf("%s(%s)", c.desc.Name, strings.Join(params, ", "))
}

// Usage returns a help text with the signature and one aligned line per argument.
func (c *Constructor[T]) Usage() string {
	var builder strings.Builder
	builder.WriteString("Usage: " + c.Signature() + "\n")

	type row struct{ name, typ, note string }
	var rows []row
	if vf, ok := c.desc.VariadicField(); ok {
		rows = append(rows, row{"*" + vf.Keyword, vf.Type.String(), "variadic"})
	}
	for _, fd := range c.desc.Fields {
		if fd.Variadic || fd.Excluded {
			continue
		}
		note := "required"
		if fd.HasDefault {
			note = "default " + display.Sprint(fd.Default.Interface())
		}
		rows = append(rows, row{fd.Keyword, fd.Type.String(), note})
	}
	if len(rows) == 0 {
		return builder.String()
	}

	nameLen, typeLen := 0, 0
	for _, r := range rows {
		nameLen = max(nameLen, len(r.name))
		typeLen = max(typeLen, len(r.typ))
	}

	builder.WriteString("\nArguments:\n")
	for _, r := range rows {
		builder.WriteString(fmt.Sprintf("  %-*s  %-*s  %s\n", nameLen, r.name, typeLen, r.typ, r.note))
	}
	return builder.String()
}
