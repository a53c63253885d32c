package common

import (
	"reflect"
	"testing"

	"github.com/chriso345/gore/assert"
)

type Record struct{}

type sample struct {
	Record  `name:"Sample"`
	Items   []string `starfield:" * "`
	NodeID  string
	Alias   string `kw:"as"`
	Skipped string `kw:"-"`
}

func TestGetRecordTags(t *testing.T) {
	tags := GetRecordTags(reflect.TypeFor[sample]())
	assert.Equal(t, tags[TagName], "Sample")
}

func TestIsMarkerAndStar(t *testing.T) {
	st := reflect.TypeFor[sample]()

	assert.True(t, IsMarker(st.Field(0)))
	assert.True(t, !IsMarker(st.Field(1)))
	assert.True(t, IsStarField(st.Field(1)))
	assert.True(t, !IsStarField(st.Field(2)))
}

func TestKeywordName(t *testing.T) {
	st := reflect.TypeFor[sample]()

	assert.Equal(t, KeywordName(st.Field(1)), "items")
	assert.Equal(t, KeywordName(st.Field(2)), "node_id")
	assert.Equal(t, KeywordName(st.Field(3)), "as")
	assert.Equal(t, KeywordName(st.Field(4)), "-")
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, TypeName(reflect.TypeFor[sample]()), "sample")
	assert.Equal(t, TypeName(reflect.TypeFor[[]int]()), "[]int")
	assert.Equal(t, ValueTypeName(nil), "nil")
	assert.Equal(t, ValueTypeName(3), "int")
}
