package core

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/IsaacBreen/starfield/errors"
	"github.com/IsaacBreen/starfield/internal/common"
)

// FromValue constructs an instance from a generic decoded value. A mapping is
// keyword construction and a sequence is positional construction. Nested
// mappings and sequences build any record type registered with Define.
func (c *Constructor[T]) FromValue(v any) (T, error) {
	var zero T
	switch x := v.(type) {
	case nil:
		return c.Call(nil, nil)
	case map[string]any:
		return c.Call(nil, x)
	case map[any]any:
		return c.Call(nil, stringKeys(x))
	case []any:
		return c.Call(x, nil)
	case T:
		return x, nil
	default:
		return zero, errors.NewArgType(c.desc.Name, "mapping or sequence", common.ValueTypeName(v))
	}
}

// FromYAML decodes a YAML document and constructs an instance with FromValue.
//
//	tag: T
//	items:
//	  - [a, b]
//	  - items: [c]
func (c *Constructor[T]) FromYAML(data []byte) (T, error) {
	var zero T
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, fmt.Errorf("decode %s: %w", c.desc.Name, err)
	}
	return c.FromValue(doc)
}
