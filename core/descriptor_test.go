package core

import (
	stderrs "errors"
	"reflect"
	"testing"
	"time"

	sferr "github.com/IsaacBreen/starfield/errors"
	"github.com/chriso345/gore/assert"
)

type span struct {
	Items []string `starfield:"*"`
	Label string
}

type flat struct {
	Name  string
	Count int `default:"3"`
}

func TestDescribe_OneVariadic(t *testing.T) {
	d, err := describe(reflect.TypeFor[span](), newConfig(nil))
	assert.Nil(t, err)
	assert.Equal(t, d.Name, "span")
	assert.Equal(t, d.Variadic, 0)
	assert.Equal(t, len(d.Fields), 2)

	vf, ok := d.VariadicField()
	assert.True(t, ok)
	assert.Equal(t, vf.Keyword, "items")
	assert.True(t, d.Fields[1].Required())
	assert.Equal(t, d.Fields[1].Keyword, "label")
}

func TestDescribe_NoVariadicIsKeywordOnly(t *testing.T) {
	d, err := describe(reflect.TypeFor[flat](), newConfig(nil))
	assert.Nil(t, err)
	assert.Equal(t, d.Variadic, -1)

	_, ok := d.VariadicField()
	assert.True(t, !ok)
	assert.True(t, d.Fields[1].HasDefault)
	assert.Equal(t, d.Fields[1].Default.Interface().(int), 3)
}

func TestDescribe_RequireVariadic(t *testing.T) {
	_, err := describe(reflect.TypeFor[flat](), newConfig([]Option{RequireVariadic()}))
	assert.NotNil(t, err)

	var nv sferr.NoVariadicError
	assert.True(t, stderrs.As(err, &nv))
	assert.Equal(t, nv.Type, "flat")
	assert.True(t, stderrs.Is(err, sferr.ErrConfig))
}

func TestDescribe_MultipleVariadic(t *testing.T) {
	type twoStars struct {
		A []int `starfield:"*"`
		B []int `starfield:"*"`
	}

	_, err := describe(reflect.TypeFor[twoStars](), newConfig(nil))
	assert.NotNil(t, err)

	var mv sferr.MultipleVariadicError
	assert.True(t, stderrs.As(err, &mv))
	assert.Equal(t, len(mv.Fields), 2)
	assert.Equal(t, mv.Fields[0], "A")
	assert.Equal(t, mv.Fields[1], "B")
	assert.True(t, stderrs.Is(err, sferr.ErrConfig))
}

func TestDescribe_UnexportedVariadic(t *testing.T) {
	type hidden struct {
		items []string `starfield:"*"`
		Label string
	}
	type hiddenByOption struct {
		parts []string
		Sep   string
	}

	_, err := describe(reflect.TypeFor[hidden](), newConfig(nil))

	var uv sferr.UnexportedVariadicError
	assert.True(t, stderrs.As(err, &uv))
	assert.Equal(t, uv.Field, "items")
	assert.True(t, stderrs.Is(err, sferr.ErrConfig))

	_, err = describe(reflect.TypeFor[hiddenByOption](), newConfig([]Option{WithVariadic("parts")}))
	assert.True(t, stderrs.As(err, &uv))
	assert.Equal(t, uv.Field, "parts")

	_, err = Define[hidden]()
	assert.True(t, stderrs.Is(err, sferr.ErrConfig))
}

func TestDescribe_TagAndOptionConflict(t *testing.T) {
	_, err := describe(reflect.TypeFor[span](), newConfig([]Option{WithVariadic("Label")}))
	assert.NotNil(t, err)

	var mv sferr.MultipleVariadicError
	assert.True(t, stderrs.As(err, &mv))
}

func TestDescribe_VariadicByOption(t *testing.T) {
	type list struct {
		Values []float64
		Unit   string `default:"m"`
	}

	d, err := describe(reflect.TypeFor[list](), newConfig([]Option{WithVariadic("Values")}))
	assert.Nil(t, err)
	assert.Equal(t, d.Variadic, 0)
	assert.Equal(t, d.Fields[1].Default.Interface().(string), "m")
}

func TestDescribe_UnknownVariadicOption(t *testing.T) {
	_, err := describe(reflect.TypeFor[flat](), newConfig([]Option{WithVariadic("Missing")}))

	var uf sferr.UnknownFieldError
	assert.True(t, stderrs.As(err, &uf))
	assert.Equal(t, uf.Field, "Missing")
}

func TestDescribe_VariadicMustBeSlice(t *testing.T) {
	type bad struct {
		Items string `starfield:"*"`
	}

	_, err := describe(reflect.TypeFor[bad](), newConfig(nil))

	var vt sferr.VariadicTypeError
	assert.True(t, stderrs.As(err, &vt))
	assert.Equal(t, vt.Kind, "string")
}

func TestDescribe_NotAStruct(t *testing.T) {
	_, err := describe(reflect.TypeFor[[]string](), newConfig(nil))

	var ir sferr.InvalidRecordError
	assert.True(t, stderrs.As(err, &ir))
	assert.True(t, stderrs.Is(err, sferr.ErrConfig))
}

func TestDescribe_InvalidDefaults(t *testing.T) {
	type badInt struct {
		N int `default:"many"`
	}
	type starDefault struct {
		Items []int `starfield:"*" default:""`
	}
	type badKind struct {
		M map[string]int `default:"a=1"`
	}

	for _, typ := range []reflect.Type{
		reflect.TypeFor[badInt](),
		reflect.TypeFor[starDefault](),
		reflect.TypeFor[badKind](),
	} {
		_, err := describe(typ, newConfig(nil))
		var id sferr.InvalidDefaultError
		if !stderrs.As(err, &id) {
			t.Fatalf("%s: expected InvalidDefaultError, got %v", typ, err)
		}
	}
}

func TestDescribe_KeywordNames(t *testing.T) {
	type named struct {
		Record   `name:"Named"`
		Children []int `starfield:"*"`
		NodeID   string
		Alias    string `kw:"as"`
		Cache    string `kw:"-"`
		private  string
	}

	d, err := describe(reflect.TypeFor[named](), newConfig(nil))
	assert.Nil(t, err)
	assert.Equal(t, d.Name, "Named")
	assert.Equal(t, len(d.Fields), 4)
	assert.Equal(t, d.Fields[0].Keyword, "children")
	assert.Equal(t, d.Fields[1].Keyword, "node_id")
	assert.Equal(t, d.Fields[2].Keyword, "as")
	assert.True(t, d.Fields[3].Excluded)
	assert.True(t, !d.Fields[3].Required())
}

func TestDescribe_DuplicateKeyword(t *testing.T) {
	type dup struct {
		Name  string
		Other string `kw:"name"`
	}

	_, err := describe(reflect.TypeFor[dup](), newConfig(nil))

	var dk sferr.DuplicateKeywordError
	assert.True(t, stderrs.As(err, &dk))
	assert.Equal(t, dk.Keyword, "name")
}

func TestDescribe_WithNameOverridesMarker(t *testing.T) {
	d, err := describe(reflect.TypeFor[span](), newConfig([]Option{WithName("Span")}))
	assert.Nil(t, err)
	assert.Equal(t, d.Name, "Span")
}

func TestParseDefault(t *testing.T) {
	v, err := parseDefault("1500ms", reflect.TypeFor[time.Duration]())
	assert.Nil(t, err)
	assert.Equal(t, v.Interface().(time.Duration), 1500*time.Millisecond)

	v, err = parseDefault("true", reflect.TypeFor[bool]())
	assert.Nil(t, err)
	assert.True(t, v.Bool())

	v, err = parseDefault("42", reflect.TypeFor[uint8]())
	assert.Nil(t, err)
	assert.Equal(t, v.Interface().(uint8), uint8(42))

	v, err = parseDefault("2.5", reflect.TypeFor[float32]())
	assert.Nil(t, err)
	assert.Equal(t, v.Interface().(float32), float32(2.5))

	_, err = parseDefault("300", reflect.TypeFor[int8]())
	assert.NotNil(t, err)

	v, err = parseDefault("", reflect.TypeFor[[]string]())
	assert.Nil(t, err)
	assert.True(t, v.IsNil())
}
