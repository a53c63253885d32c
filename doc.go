// Package starfield builds constructors for record structs in which one field
// is filled from variadic positional arguments and every other field is
// passed by keyword.
//
// A record is a plain struct. Tag the slice field that should absorb the
// positional arguments with `starfield:"*"`, define the type once, and build
// instances through the returned Constructor:
//
//	type Node struct {
//	    Children []Node `starfield:"*"`
//	    Label    string `default:""`
//	}
//
//	var NewNode = starfield.MustDefine[Node](starfield.WithRepr())
//
//	tree := NewNode.MustNew(NewNode.MustNew(), NewNode.MustNew(), starfield.Kw("label", "root"))
//
// Definition errors, such as two variadic fields, are reported by Define
// before any instance exists. Construction errors, such as positional
// arguments together with an explicit keyword for the variadic field, are
// reported by New and Call.
package starfield
