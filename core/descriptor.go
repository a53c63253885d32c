package core

import (
	"reflect"
	"strconv"
	"time"

	"github.com/IsaacBreen/starfield/errors"
	"github.com/IsaacBreen/starfield/internal/common"
)

// FieldDescriptor is the definition-time view of one record field.
type FieldDescriptor struct {
	Name       string // Go field name
	Keyword    string // name the field is constructed by
	Index      int    // struct field index
	Type       reflect.Type
	HasDefault bool
	Default    reflect.Value
	Variadic   bool
	Excluded   bool // `kw:"-"`: not settable by construction
}

// Required reports whether construction fails when the field is not supplied.
func (f FieldDescriptor) Required() bool {
	return !f.Variadic && !f.Excluded && !f.HasDefault
}

// RecordDescriptor is the declared shape of a record type, in field order.
// Variadic is the index into Fields of the variadic field, or -1.
type RecordDescriptor struct {
	Name     string
	Type     reflect.Type
	Fields   []FieldDescriptor
	Variadic int
}

// VariadicField returns the variadic field descriptor, if the record has one.
func (d *RecordDescriptor) VariadicField() (FieldDescriptor, bool) {
	if d.Variadic < 0 {
		return FieldDescriptor{}, false
	}
	return d.Fields[d.Variadic], true
}

var durationType = reflect.TypeOf(time.Duration(0))

// describe inspects t and produces its record descriptor. Every
// configuration error is detected here, before any instance exists.
func describe(t reflect.Type, cfg *config) (*RecordDescriptor, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, errors.NewInvalidRecord(common.TypeName(t))
	}

	typeName := common.TypeName(t)
	d := &RecordDescriptor{Name: typeName, Type: t, Variadic: -1}
	if name := common.GetRecordTags(t)[common.TagName]; name != "" {
		d.Name = name
	}
	if cfg.name != "" {
		d.Name = cfg.name
	}

	var starred []string
	optionMatched := cfg.variadic == ""
	keywords := map[string]bool{}

	for i := range t.NumField() {
		sf := t.Field(i)
		if common.IsMarker(sf) {
			continue
		}
		if !sf.IsExported() {
			if common.IsStarField(sf) || sf.Name == cfg.variadic {
				return nil, errors.NewUnexportedVariadic(typeName, sf.Name)
			}
			continue
		}

		fd := FieldDescriptor{
			Name:    sf.Name,
			Keyword: common.KeywordName(sf),
			Index:   i,
			Type:    sf.Type,
		}
		if sf.Name == cfg.variadic {
			optionMatched = true
			fd.Variadic = true
		}
		if common.IsStarField(sf) {
			fd.Variadic = true
		}

		if fd.Keyword == "-" {
			if fd.Variadic {
				fd.Keyword = common.KeywordName(reflect.StructField{Name: sf.Name})
			} else {
				fd.Excluded = true
			}
		}

		if raw, ok := sf.Tag.Lookup(common.TagDefault); ok {
			if fd.Variadic {
				return nil, errors.NewInvalidDefault(typeName, sf.Name, raw,
					"the variadic field takes its value from positional arguments")
			}
			def, err := parseDefault(raw, sf.Type)
			if err != nil {
				return nil, errors.NewInvalidDefault(typeName, sf.Name, raw, err.Error())
			}
			fd.HasDefault = true
			fd.Default = def
		}

		if fd.Variadic {
			starred = append(starred, sf.Name)
			d.Variadic = len(d.Fields)
		}
		if !fd.Excluded {
			if keywords[fd.Keyword] {
				return nil, errors.NewDuplicateKeyword(typeName, fd.Keyword)
			}
			keywords[fd.Keyword] = true
		}
		d.Fields = append(d.Fields, fd)
	}

	if !optionMatched {
		return nil, errors.NewUnknownField(typeName, cfg.variadic)
	}
	if len(starred) > 1 {
		return nil, errors.NewMultipleVariadic(typeName, starred)
	}
	if len(starred) == 0 {
		if cfg.requireVariadic {
			return nil, errors.NewNoVariadic(typeName)
		}
		return d, nil
	}
	if vf := d.Fields[d.Variadic]; vf.Type.Kind() != reflect.Slice {
		return nil, errors.NewVariadicType(typeName, vf.Name, vf.Type.String())
	}

	return d, nil
}

// parseDefault converts a `default` tag literal into a value of type t.
// An empty literal is the zero value of any type.
func parseDefault(raw string, t reflect.Type) (reflect.Value, error) {
	v := reflect.New(t).Elem()
	if raw == "" {
		return v, nil
	}

	if t == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(int64(d))
		return v, nil
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetFloat(f)
	default:
		return reflect.Value{}, errors.NewUnsupportedDefault(t.String())
	}
	return v, nil
}
