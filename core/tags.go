package core

// Record is an empty marker embedded in a record struct to carry type-level
// metadata through struct tags. It is not a field of the record.
//
//	type Node struct {
//	    Record   `name:"N"`
//	    Children []Node `starfield:"*"`
//	}
type Record struct{}

// Keyword is a named construction argument. Pass it to Constructor.New among
// the positional arguments; it is recognised by type.
type Keyword struct {
	Name  string
	Value any
}

// Kw returns the keyword argument name=value.
func Kw(name string, value any) Keyword {
	return Keyword{Name: name, Value: value}
}

// Kwargs passes several keyword arguments at once to Constructor.New.
type Kwargs map[string]any
