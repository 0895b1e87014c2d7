// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrNotCoercible is returned by [Type.Coerce] when the descriptor is
// not a leaf variant and therefore has no literal form.
var ErrNotCoercible = errors.New("type does not have a literal form")

// Coerce converts a single literal into a value of the described type.
//
// Coerce is only defined for leaf variants: [String], [Int], [Uint],
// [Float], [Bool] and [Enum]. Booleans accept exactly "TRUE" and
// "FALSE", case-insensitively. Enums accept exactly one declared
// member's literal. Every other variant returns [ErrNotCoercible].
func (t *Type) Coerce(literal string) (reflect.Value, error) {
	switch t.kind {
	case String:
		v := reflect.New(t.rt).Elem()
		v.SetString(literal)
		return v, nil
	case Int:
		n, err := strconv.ParseInt(literal, 10, t.rt.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(t.rt).Elem()
		v.SetInt(n)
		return v, nil
	case Uint:
		n, err := strconv.ParseUint(literal, 10, t.rt.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(t.rt).Elem()
		v.SetUint(n)
		return v, nil
	case Float:
		n, err := strconv.ParseFloat(literal, t.rt.Bits())
		if err != nil {
			return reflect.Value{}, err
		}
		v := reflect.New(t.rt).Elem()
		v.SetFloat(n)
		return v, nil
	case Bool:
		v := reflect.New(t.rt).Elem()
		switch {
		case strings.EqualFold(literal, "TRUE"):
			v.SetBool(true)
		case strings.EqualFold(literal, "FALSE"):
			v.SetBool(false)
		default:
			return reflect.Value{}, fmt.Errorf("%q is not TRUE or FALSE", literal)
		}
		return v, nil
	case Enum:
		for _, m := range t.members {
			if m.Literal == literal {
				return m.Value, nil
			}
		}
		return reflect.Value{}, fmt.Errorf("%q does not match any declared member", literal)
	default:
		return reflect.Value{}, ErrNotCoercible
	}
}
