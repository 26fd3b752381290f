// Package tag fills zero struct fields from their `default` tags.
package tag

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const maxDepth = 32

// Options configures ApplyDefaults
type Options struct {
	tagName   string
	separator string
}

// Option configures Options
type Option func(*Options)

// WithTagName sets the tag to read, "default" by default
func WithTagName(name string) Option {
	return func(o *Options) {
		o.tagName = name
	}
}

// WithSeparator sets the slice element separator, "," by default
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.separator = sep
	}
}

// ApplyDefaults sets every zero exported field of the struct target points
// to from its tag. Nested structs and pointers to structs are walked;
// fields that already hold a value are left alone.
//
//	type KeyOption struct {
//	    Dirpath string `default:"."`
//	    Bits    int    `default:"2048"`
//	}
func ApplyDefaults(target any, opts ...Option) error {
	o := &Options{tagName: "default", separator: ","}
	for _, opt := range opts {
		opt(o)
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrTargetMustBePointer
	}
	return o.applyStruct(v.Elem(), "", 0)
}

func (o *Options) applyStruct(v reflect.Value, path string, depth int) error {
	if depth >= maxDepth {
		return ErrMaxDepthExceeded
	}

	t := v.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}

		fieldPath := field.Name
		if path != "" {
			fieldPath = path + "." + field.Name
		}
		def, hasDefault := field.Tag.Lookup(o.tagName)

		switch {
		case fv.Kind() == reflect.Struct && !implementsText(fv):
			if err := o.applyStruct(fv, fieldPath, depth+1); err != nil {
				return err
			}
		case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.Struct:
			if fv.IsNil() {
				if !hasDefault {
					continue
				}
				fv.Set(reflect.New(fv.Type().Elem()))
			}
			if err := o.applyStruct(fv.Elem(), fieldPath, depth+1); err != nil {
				return err
			}
		case hasDefault && fv.IsZero():
			if err := o.set(fv, def); err != nil {
				return &FieldError{Path: fieldPath, Value: def, Err: err}
			}
		}
	}
	return nil
}

func implementsText(v reflect.Value) bool {
	_, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	return ok
}

func (o *Options) set(v reflect.Value, s string) error {
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u.UnmarshalText([]byte(s))
		}
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == reflect.TypeFor[time.Duration]() {
			d, err := time.ParseDuration(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			v.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes([]byte(s))
			return nil
		}
		parts := strings.Split(s, o.separator)
		slice := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, part := range parts {
			if err := o.set(slice.Index(i), strings.TrimSpace(part)); err != nil {
				return err
			}
		}
		v.Set(slice)
	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := o.set(elem.Elem(), s); err != nil {
			return err
		}
		v.Set(elem)
	default:
		return ErrUnsupportedType
	}
	return nil
}
