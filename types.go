package starfield

import "github.com/IsaacBreen/starfield/core"

// Record is a marker embedded in a record struct to carry type-level metadata.
// The `name` tag sets the display name used by representations and usage text.
//
// Usage:
//
//	type Node struct {
//	    starfield.Record `name:"N"`
//	    Children         []Node `starfield:"*"`
//	}
type Record = core.Record

// Constructor is the construction entry point of a record type, built by Define.
type Constructor[T any] = core.Constructor[T]

// Keyword is a named construction argument, recognised by Constructor.New.
type Keyword = core.Keyword

// Kwargs passes several keyword arguments at once to Constructor.New.
//
// Usage:
//
//	node, err := NewNode.New("a", "b", starfield.Kwargs{"label": "L", "weight": 2})
type Kwargs = core.Kwargs

// Option configures a record type at definition time.
type Option = core.Option

// RecordDescriptor is the declared shape of a record type.
type RecordDescriptor = core.RecordDescriptor

// FieldDescriptor describes one field of a record type.
type FieldDescriptor = core.FieldDescriptor
