// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envtree

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strconv"

	"github.com/z5labs/envtree/schema"
)

// resolve is the single recursive entry point. It classifies the
// descriptor variant and delegates. Every failure carries the fully
// composed name at which it occurred and is final for the whole call.
func (r *Resolver) resolve(ctx context.Context, prefix string, t *schema.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, UnsupportedTypeError{
			Type: "<nil>",
			Path: prefix,
		}
	}

	switch t.Kind() {
	case schema.String, schema.Int, schema.Uint, schema.Float, schema.Bool, schema.Enum:
		return r.resolveLeaf(ctx, prefix, t)
	case schema.List:
		return r.resolveList(ctx, prefix, t)
	case schema.Optional:
		return r.resolveOptional(ctx, prefix, t)
	case schema.Record:
		return r.resolveRecord(ctx, prefix, t)
	default:
		return reflect.Value{}, UnsupportedTypeError{
			Type: typeLabel(t),
			Path: prefix,
		}
	}
}

func typeLabel(t *schema.Type) string {
	rt := t.GoType()
	if rt == nil {
		return t.Kind().String()
	}
	return rt.String()
}

// A leaf is the point where the accumulated prefix becomes the exact
// variable name that is read.
func (r *Resolver) resolveLeaf(ctx context.Context, name string, t *schema.Type) (reflect.Value, error) {
	raw, ok := r.src.Lookup(name)
	if !ok {
		return reflect.Value{}, MissingVariableError{Name: name}
	}

	v, err := t.Coerce(raw)
	if err != nil {
		return reflect.Value{}, CastError{
			Name:  name,
			Type:  t.GoType().String(),
			Cause: err,
		}
	}

	r.log.DebugContext(ctx, "resolved variable", slog.String("name", name))
	return v, nil
}

// List length is implicit: indices start at 0 and resolution stops at
// the first index with no variable under its composed prefix. An index
// the probe found present must resolve; its failure propagates
// immediately rather than truncating the list.
func (r *Resolver) resolveList(ctx context.Context, prefix string, t *schema.Type) (reflect.Value, error) {
	if t.Elem() == nil {
		return reflect.Value{}, UnknownElementTypeError{Path: prefix}
	}

	vals := reflect.MakeSlice(t.GoType(), 0, 0)
	for i := 0; ; i++ {
		childPrefix := r.compose(prefix, strconv.Itoa(i))
		if !r.src.HasPrefix(childPrefix) {
			break
		}

		v, err := r.resolve(ctx, childPrefix, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		vals = reflect.Append(vals, v)
	}
	return vals, nil
}

// Absence of any variable under the prefix is a nil value, not a
// failure. Presence of any matching variable commits to resolving the
// inner type; a deeper failure propagates instead of falling back to
// nil.
func (r *Resolver) resolveOptional(ctx context.Context, prefix string, t *schema.Type) (reflect.Value, error) {
	if t.Elem() == nil {
		return reflect.Value{}, UnknownElementTypeError{Path: prefix}
	}

	if !r.src.HasPrefix(prefix) {
		return reflect.Zero(t.GoType()), nil
	}

	v, err := r.resolve(ctx, prefix, t.Elem())
	if err != nil {
		return reflect.Value{}, err
	}

	p := reflect.New(t.Elem().GoType())
	p.Elem().Set(v)
	return p, nil
}

// Fields resolve in declared order and the first failure stops the
// record. A declared default only covers the field's own variable
// being absent: the missing name must equal the field's composed
// prefix exactly, so a Missing surfaced from deeper inside a nested
// structure is never papered over by the outer field's default.
func (r *Resolver) resolveRecord(ctx context.Context, prefix string, t *schema.Type) (reflect.Value, error) {
	rv := reflect.New(t.GoType()).Elem()
	for _, field := range t.Fields() {
		fieldPrefix := r.compose(prefix, field.Name)

		v, err := r.resolve(ctx, fieldPrefix, field.Type)
		if err == nil {
			rv.Field(field.Index).Set(v)
			continue
		}

		var missing MissingVariableError
		if field.HasDefault() && errors.As(err, &missing) && missing.Name == fieldPrefix {
			rv.Field(field.Index).Set(field.DefaultValue())
			r.log.DebugContext(ctx, "using declared default", slog.String("name", fieldPrefix))
			continue
		}
		return reflect.Value{}, err
	}
	return rv, nil
}
