package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrConfig is matched by every error raised while a record type is being
// defined. These are mistakes in the type declaration, not in a call.
var ErrConfig = stderrors.New("starfield: invalid record definition")

// ErrArgument is matched by every error raised while constructing an instance.
var ErrArgument = stderrors.New("starfield: invalid construction arguments")

// === CONFIGURATION ERRORS ===

// InvalidRecordError indicates Define was instantiated with a non-struct type.
type InvalidRecordError struct{ Type string }

func (e InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record type %s: must be a struct", e.Type)
}
func (e InvalidRecordError) Is(target error) bool { return target == ErrConfig }

// MultipleVariadicError indicates more than one field was marked variadic.
type MultipleVariadicError struct {
	Type   string
	Fields []string
}

func (e MultipleVariadicError) Error() string {
	return fmt.Sprintf("record %s: expected at most one variadic field, got %d: %s",
		e.Type, len(e.Fields), strings.Join(e.Fields, ", "))
}
func (e MultipleVariadicError) Is(target error) bool { return target == ErrConfig }

// NoVariadicError is returned when RequireVariadic is set and no field is marked.
type NoVariadicError struct{ Type string }

func (e NoVariadicError) Error() string {
	return fmt.Sprintf("record %s: expected exactly one variadic field, got 0", e.Type)
}
func (e NoVariadicError) Is(target error) bool { return target == ErrConfig }

// VariadicTypeError indicates the variadic field cannot hold a sequence.
type VariadicTypeError struct{ Type, Field, Kind string }

func (e VariadicTypeError) Error() string {
	return fmt.Sprintf("record %s: variadic field %s must be a slice, got %s", e.Type, e.Field, e.Kind)
}
func (e VariadicTypeError) Is(target error) bool { return target == ErrConfig }

// UnexportedVariadicError indicates the variadic field is unexported and so cannot be set.
type UnexportedVariadicError struct{ Type, Field string }

func (e UnexportedVariadicError) Error() string {
	return fmt.Sprintf("record %s: variadic field %s must be exported", e.Type, e.Field)
}
func (e UnexportedVariadicError) Is(target error) bool { return target == ErrConfig }

// InvalidDefaultError indicates a `default` tag that cannot be applied to its field.
type InvalidDefaultError struct{ Type, Field, Value, Reason string }

func (e InvalidDefaultError) Error() string {
	return fmt.Sprintf("record %s: invalid default %q for field %s: %s", e.Type, e.Value, e.Field, e.Reason)
}
func (e InvalidDefaultError) Is(target error) bool { return target == ErrConfig }

// UnknownFieldError indicates an option referred to a field the record does not declare.
type UnknownFieldError struct{ Type, Field string }

func (e UnknownFieldError) Error() string {
	return fmt.Sprintf("record %s: no exported field named %s", e.Type, e.Field)
}
func (e UnknownFieldError) Is(target error) bool { return target == ErrConfig }

// DuplicateKeywordError indicates two fields resolve to the same keyword name.
type DuplicateKeywordError struct{ Type, Keyword string }

func (e DuplicateKeywordError) Error() string {
	return fmt.Sprintf("record %s: keyword %q is used by more than one field", e.Type, e.Keyword)
}
func (e DuplicateKeywordError) Is(target error) bool { return target == ErrConfig }

// UnsupportedTypeError indicates a field type that a tag literal cannot be parsed into.
type UnsupportedTypeError struct{ Type string }

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.Type)
}
func (e UnsupportedTypeError) Is(target error) bool { return target == ErrConfig }

// === ARGUMENT ERRORS ===

// AmbiguousVariadicError indicates positional arguments were passed together
// with an explicit keyword value for the variadic field.
type AmbiguousVariadicError struct{ Field string }

func (e AmbiguousVariadicError) Error() string {
	return fmt.Sprintf("cannot pass variadic field %s as a keyword argument when there are positional arguments", e.Field)
}
func (e AmbiguousVariadicError) Is(target error) bool { return target == ErrArgument }

// MissingArgError indicates a required keyword-only field was not provided.
type MissingArgError struct{ Field string }

func (e MissingArgError) Error() string {
	return fmt.Sprintf("missing required keyword argument: %s", e.Field)
}
func (e MissingArgError) Is(target error) bool { return target == ErrArgument }

// UnexpectedArgError indicates a keyword that matches no field.
// Suggestion, if present, is a close match the caller may have intended.
type UnexpectedArgError struct{ Name, Suggestion string }

func (e UnexpectedArgError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unexpected keyword argument: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unexpected keyword argument: %s", e.Name)
}
func (e UnexpectedArgError) Is(target error) bool { return target == ErrArgument }

// PositionalArgError indicates positional arguments for a record without a variadic field.
type PositionalArgError struct{ Count int }

func (e PositionalArgError) Error() string {
	return fmt.Sprintf("takes 0 positional arguments but %d were given", e.Count)
}
func (e PositionalArgError) Is(target error) bool { return target == ErrArgument }

// PositionalAfterKeywordError indicates a positional argument following a keyword.
type PositionalAfterKeywordError struct{ Position int }

func (e PositionalAfterKeywordError) Error() string {
	return fmt.Sprintf("positional argument %d follows keyword argument", e.Position)
}
func (e PositionalAfterKeywordError) Is(target error) bool { return target == ErrArgument }

// DuplicateArgError indicates the same keyword was supplied more than once.
type DuplicateArgError struct{ Name string }

func (e DuplicateArgError) Error() string {
	return fmt.Sprintf("keyword argument repeated: %s", e.Name)
}
func (e DuplicateArgError) Is(target error) bool { return target == ErrArgument }

// ArgTypeError indicates a value that cannot be stored in its field.
type ArgTypeError struct{ Field, Want, Got string }

func (e ArgTypeError) Error() string {
	return fmt.Sprintf("argument %s: cannot use %s as %s", e.Field, e.Got, e.Want)
}
func (e ArgTypeError) Is(target error) bool { return target == ErrArgument }

// Helper constructors
func NewInvalidRecord(typ string) error { return InvalidRecordError{Type: typ} }
func NewMultipleVariadic(typ string, fields []string) error {
	return MultipleVariadicError{Type: typ, Fields: fields}
}
func NewNoVariadic(typ string) error { return NoVariadicError{Type: typ} }
func NewVariadicType(typ, field, kind string) error {
	return VariadicTypeError{Type: typ, Field: field, Kind: kind}
}
func NewUnexportedVariadic(typ, field string) error {
	return UnexportedVariadicError{Type: typ, Field: field}
}
func NewInvalidDefault(typ, field, value, reason string) error {
	return InvalidDefaultError{Type: typ, Field: field, Value: value, Reason: reason}
}
func NewUnsupportedDefault(typ string) error { return UnsupportedTypeError{Type: typ} }
func NewUnknownField(typ, field string) error { return UnknownFieldError{Type: typ, Field: field} }
func NewDuplicateKeyword(typ, kw string) error {
	return DuplicateKeywordError{Type: typ, Keyword: kw}
}
func NewAmbiguousVariadic(field string) error { return AmbiguousVariadicError{Field: field} }
func NewMissingArg(field string) error        { return MissingArgError{Field: field} }
func NewUnexpectedArg(name, suggestion string) error {
	return UnexpectedArgError{Name: name, Suggestion: suggestion}
}
func NewPositionalArg(count int) error         { return PositionalArgError{Count: count} }
func NewPositionalAfterKeyword(pos int) error  { return PositionalAfterKeywordError{Position: pos} }
func NewDuplicateArg(name string) error        { return DuplicateArgError{Name: name} }
func NewArgType(field, want, got string) error { return ArgTypeError{Field: field, Want: want, Got: got} }
