package common

import (
	"reflect"
	"strings"

	"github.com/huandu/xstrings"
)

// Tag keys understood on record fields.
const (
	TagStar    = "starfield"
	TagKeyword = "kw"
	TagDefault = "default"
	TagName    = "name"
)

// StarMarker is the tag value that marks the variadic field.
const StarMarker = "*"

// MarkerName is the type name of the embedded record marker.
const MarkerName = "Record"

// GetRecordTags retrieves the tags carried by the embedded Record marker of t, if any.
func GetRecordTags(t reflect.Type) map[string]string {
	tags := make(map[string]string)

	for i := range t.NumField() {
		field := t.Field(i)
		if !IsMarker(field) {
			continue
		}
		for _, key := range []string{TagName} {
			if val := field.Tag.Get(key); val != "" {
				tags[key] = val
			}
		}
	}

	return tags
}

// IsMarker reports whether field is an embedded Record marker.
func IsMarker(field reflect.StructField) bool {
	return field.Anonymous && field.Type.Kind() == reflect.Struct && field.Type.Name() == MarkerName &&
		field.Type.NumField() == 0
}

// IsStarField reports whether field carries the `starfield:"*"` tag.
func IsStarField(field reflect.StructField) bool {
	return strings.TrimSpace(field.Tag.Get(TagStar)) == StarMarker
}

// KeywordName returns the keyword a field is constructed by. The `kw` tag wins;
// otherwise the Go field name is converted to snake_case. A name of "-"
// means the field takes no part in construction.
func KeywordName(field reflect.StructField) string {
	if kw, ok := field.Tag.Lookup(TagKeyword); ok && kw != "" {
		return kw
	}
	return xstrings.ToSnakeCase(field.Name)
}

// TypeName returns a readable name for t, including anonymous types.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// ValueTypeName returns the dynamic type name of v, or "nil".
func ValueTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
