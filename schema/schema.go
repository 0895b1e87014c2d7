// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schema describes the shape of a resolvable configuration type.
//
// A [Type] is a closed, tagged variant tree covering exactly the shapes
// envtree knows how to resolve: string, integer, unsigned integer, float
// and boolean leaves, enums, slices, pointers (optional values) and
// structs (records). Descriptors are built once per Go type with [Build]
// or [Of] and are immutable afterwards, so any shape the resolver cannot
// support is reported at construction time rather than midway through a
// resolution call.
package schema

import (
	"fmt"
	"reflect"
	"strconv"
)

// Kind identifies the variant of a [Type].
type Kind int

const (
	Invalid Kind = iota
	String
	Int
	Uint
	Float
	Bool
	Enum
	List
	Optional
	Record
)

var kindNames = map[Kind]string{
	Invalid:  "invalid",
	String:   "string",
	Int:      "int",
	Uint:     "uint",
	Float:    "float",
	Bool:     "bool",
	Enum:     "enum",
	List:     "list",
	Optional: "optional",
	Record:   "record",
}

// String implements the [fmt.Stringer] interface.
func (k Kind) String() string {
	s, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return s
}

// Type is an immutable descriptor of a resolvable shape.
type Type struct {
	kind    Kind
	rt      reflect.Type
	elem    *Type
	fields  []Field
	members []Member
}

// Kind returns the variant of this descriptor.
func (t *Type) Kind() Kind {
	return t.kind
}

// GoType returns the Go type this descriptor constructs.
func (t *Type) GoType() reflect.Type {
	return t.rt
}

// Elem returns the element descriptor of a [List] or the inner
// descriptor of an [Optional]. It is nil for every other variant.
func (t *Type) Elem() *Type {
	return t.elem
}

// Fields returns the field descriptors of a [Record] in declared order.
func (t *Type) Fields() []Field {
	return t.fields
}

// Members returns the declared members of an [Enum] in declared order.
func (t *Type) Members() []Member {
	return t.members
}

// Field describes a single record field.
type Field struct {
	// Name is the name segment used when composing this field's
	// variable name. It defaults to the Go field name and can be
	// overridden with an `env:"..."` struct tag.
	Name string

	// Index is the field's index within its struct.
	Index int

	// Type is the field's own descriptor.
	Type *Type

	defaultValue reflect.Value
	hasDefault   bool
}

// HasDefault reports whether the field declared a `default:"..."` tag.
func (f Field) HasDefault() bool {
	return f.hasDefault
}

// DefaultValue returns the coerced value of the field's `default:"..."`
// tag. The returned value is only valid if [Field.HasDefault] is true.
func (f Field) DefaultValue() reflect.Value {
	return f.defaultValue
}

// Member is a single declared enum member.
type Member struct {
	// Literal is the exact environment variable content which selects
	// this member: the decimal form for integer backed enums and the
	// verbatim value for string backed enums.
	Literal string

	// Value is the member itself.
	Value reflect.Value
}

// UnsupportedTypeError occurs when a Go type, or one of its nested
// field or element types, has no descriptor variant.
type UnsupportedTypeError struct {
	// Type is the string form of the offending Go type.
	Type string

	// Path locates the offending type within the root type,
	// e.g. "Config.Servers[].Timeout".
	Path string
}

// Error implements the [builtin.error] interface.
func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q at %q", e.Type, e.Path)
}

// InvalidDefaultError occurs when a `default:"..."` tag is declared on
// a field whose type cannot carry one, or its literal fails to coerce
// to the field type.
type InvalidDefaultError struct {
	// Path locates the field within the root type.
	Path string

	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidDefaultError) Error() string {
	return fmt.Sprintf("invalid default for field at %q: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidDefaultError) Unwrap() error {
	return e.Cause
}

// Option configures descriptor construction.
type Option func(*builder)

type builder struct {
	enums map[reflect.Type][]Member
}

// WithEnum declares the members of the named type E, making every
// occurrence of E an [Enum] descriptor instead of a plain leaf.
//
// E must be a defined type whose underlying type is an integer or a
// string; anything else fails descriptor construction with an
// [UnsupportedTypeError]. Integer members are matched against the
// decimal form of their value, string members verbatim.
func WithEnum[E any](members ...E) Option {
	return func(b *builder) {
		rt := reflect.TypeOf((*E)(nil)).Elem()
		ms := make([]Member, len(members))
		for i, m := range members {
			ms[i] = Member{Value: reflect.ValueOf(m)}
		}
		b.enums[rt] = ms
	}
}

// Of builds the descriptor for the type T.
func Of[T any](opts ...Option) (*Type, error) {
	return Build(reflect.TypeOf((*T)(nil)).Elem(), opts...)
}

// Build builds the descriptor for the Go type rt.
//
// Supported shapes are string, integer, unsigned integer, float and
// boolean kinds, types declared as enums via [WithEnum], slices,
// pointers and structs. Any other kind fails with an
// [UnsupportedTypeError] naming the field path at which it appeared.
func Build(rt reflect.Type, opts ...Option) (*Type, error) {
	b := &builder{
		enums: make(map[reflect.Type][]Member),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b.build(rt, rt.Name())
}

func (b *builder) build(rt reflect.Type, path string) (*Type, error) {
	if members, ok := b.enums[rt]; ok {
		return b.buildEnum(rt, members, path)
	}

	switch rt.Kind() {
	case reflect.String:
		return &Type{kind: String, rt: rt}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Type{kind: Int, rt: rt}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Type{kind: Uint, rt: rt}, nil
	case reflect.Float32, reflect.Float64:
		return &Type{kind: Float, rt: rt}, nil
	case reflect.Bool:
		return &Type{kind: Bool, rt: rt}, nil
	case reflect.Slice:
		elem, err := b.build(rt.Elem(), path+"[]")
		if err != nil {
			return nil, err
		}
		return &Type{kind: List, rt: rt, elem: elem}, nil
	case reflect.Pointer:
		elem, err := b.build(rt.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &Type{kind: Optional, rt: rt, elem: elem}, nil
	case reflect.Struct:
		return b.buildRecord(rt, path)
	default:
		return nil, UnsupportedTypeError{
			Type: rt.String(),
			Path: path,
		}
	}
}

func (b *builder) buildEnum(rt reflect.Type, members []Member, path string) (*Type, error) {
	literal := enumLiteralFunc(rt)
	if literal == nil {
		return nil, UnsupportedTypeError{
			Type: rt.String(),
			Path: path,
		}
	}

	ms := make([]Member, len(members))
	for i, m := range members {
		ms[i] = Member{
			Literal: literal(m.Value),
			Value:   m.Value,
		}
	}
	return &Type{kind: Enum, rt: rt, members: ms}, nil
}

// Only integer and string backed enums are supported.
func enumLiteralFunc(rt reflect.Type) func(reflect.Value) string {
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v reflect.Value) string {
			return strconv.FormatInt(v.Int(), 10)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(v reflect.Value) string {
			return strconv.FormatUint(v.Uint(), 10)
		}
	case reflect.String:
		return func(v reflect.Value) string {
			return v.String()
		}
	default:
		return nil
	}
}

func (b *builder) buildRecord(rt reflect.Type, path string) (*Type, error) {
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name := sf.Name
		if tag, ok := sf.Tag.Lookup("env"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}

		fieldPath := path + "." + sf.Name
		ft, err := b.build(sf.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		field := Field{
			Name:  name,
			Index: i,
			Type:  ft,
		}
		if lit, ok := sf.Tag.Lookup("default"); ok {
			dv, err := ft.Coerce(lit)
			if err != nil {
				return nil, InvalidDefaultError{
					Path:  fieldPath,
					Cause: err,
				}
			}
			field.defaultValue = dv
			field.hasDefault = true
		}
		fields = append(fields, field)
	}
	return &Type{kind: Record, rt: rt, fields: fields}, nil
}
