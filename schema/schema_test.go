// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_leaves(t *testing.T) {
	testCases := []struct {
		name         string
		rt           reflect.Type
		expectedKind Kind
	}{
		{name: "string", rt: reflect.TypeOf(""), expectedKind: String},
		{name: "int", rt: reflect.TypeOf(int(0)), expectedKind: Int},
		{name: "int8", rt: reflect.TypeOf(int8(0)), expectedKind: Int},
		{name: "int64", rt: reflect.TypeOf(int64(0)), expectedKind: Int},
		{name: "uint", rt: reflect.TypeOf(uint(0)), expectedKind: Uint},
		{name: "uint32", rt: reflect.TypeOf(uint32(0)), expectedKind: Uint},
		{name: "float32", rt: reflect.TypeOf(float32(0)), expectedKind: Float},
		{name: "float64", rt: reflect.TypeOf(float64(0)), expectedKind: Float},
		{name: "bool", rt: reflect.TypeOf(false), expectedKind: Bool},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typ, err := Build(tc.rt)
			require.NoError(t, err)
			require.Equal(t, tc.expectedKind, typ.Kind())
			require.Equal(t, tc.rt, typ.GoType())
		})
	}
}

func TestBuild_containers(t *testing.T) {
	t.Run("will describe a slice as a list of its element type", func(t *testing.T) {
		typ, err := Of[[]int]()
		require.NoError(t, err)
		require.Equal(t, List, typ.Kind())
		require.NotNil(t, typ.Elem())
		require.Equal(t, Int, typ.Elem().Kind())
	})

	t.Run("will describe a pointer as an optional of its element type", func(t *testing.T) {
		typ, err := Of[*string]()
		require.NoError(t, err)
		require.Equal(t, Optional, typ.Kind())
		require.NotNil(t, typ.Elem())
		require.Equal(t, String, typ.Elem().Kind())
	})

	t.Run("will describe nested containers recursively", func(t *testing.T) {
		typ, err := Of[[]*[]bool]()
		require.NoError(t, err)
		require.Equal(t, List, typ.Kind())
		require.Equal(t, Optional, typ.Elem().Kind())
		require.Equal(t, List, typ.Elem().Elem().Kind())
		require.Equal(t, Bool, typ.Elem().Elem().Elem().Kind())
	})
}

func TestBuild_record(t *testing.T) {
	t.Run("will keep declared field order", func(t *testing.T) {
		type conf struct {
			B string
			A string
		}

		typ, err := Of[conf]()
		require.NoError(t, err)
		require.Equal(t, Record, typ.Kind())

		fields := typ.Fields()
		require.Len(t, fields, 2)
		require.Equal(t, "B", fields[0].Name)
		require.Equal(t, "A", fields[1].Name)
	})

	t.Run("will honor env tag renames", func(t *testing.T) {
		type conf struct {
			Host string `env:"HOSTNAME"`
		}

		typ, err := Of[conf]()
		require.NoError(t, err)
		require.Equal(t, "HOSTNAME", typ.Fields()[0].Name)
	})

	t.Run("will skip env:\"-\" and unexported fields", func(t *testing.T) {
		type conf struct {
			Keep    string
			Skipped string `env:"-"`
			hidden  string
		}

		typ, err := Of[conf]()
		require.NoError(t, err)

		fields := typ.Fields()
		require.Len(t, fields, 1)
		require.Equal(t, "Keep", fields[0].Name)
		require.Equal(t, 0, fields[0].Index)
	})

	t.Run("will coerce default tags at construction", func(t *testing.T) {
		type conf struct {
			Port int  `default:"8080"`
			Safe bool `default:"true"`
		}

		typ, err := Of[conf]()
		require.NoError(t, err)

		fields := typ.Fields()
		require.True(t, fields[0].HasDefault())
		require.Equal(t, int64(8080), fields[0].DefaultValue().Int())
		require.True(t, fields[1].HasDefault())
		require.True(t, fields[1].DefaultValue().Bool())
	})

	t.Run("will fail with an InvalidDefaultError", func(t *testing.T) {
		t.Run("if the default literal does not coerce to the field type", func(t *testing.T) {
			type conf struct {
				Port int `default:"not a port"`
			}

			_, err := Of[conf]()

			var invalid InvalidDefaultError
			require.ErrorAs(t, err, &invalid)
			require.Contains(t, invalid.Path, "Port")
		})

		t.Run("if the default is declared on a non-leaf field", func(t *testing.T) {
			type inner struct {
				A string
			}
			type conf struct {
				Inner inner `default:"x"`
			}

			_, err := Of[conf]()

			var invalid InvalidDefaultError
			require.ErrorAs(t, err, &invalid)
			require.ErrorIs(t, err, ErrNotCoercible)
		})
	})
}

func TestBuild_unsupported(t *testing.T) {
	testCases := []struct {
		name string
		typ  func() (*Type, error)
	}{
		{
			name: "map",
			typ:  func() (*Type, error) { return Of[map[string]string]() },
		},
		{
			name: "chan",
			typ:  func() (*Type, error) { return Of[chan int]() },
		},
		{
			name: "func",
			typ:  func() (*Type, error) { return Of[func()]() },
		},
		{
			name: "interface",
			typ:  func() (*Type, error) { return Of[any]() },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.typ()

			var unsupported UnsupportedTypeError
			require.ErrorAs(t, err, &unsupported)
		})
	}

	t.Run("will name the field path of a nested unsupported type", func(t *testing.T) {
		type conf struct {
			Meta map[string]string
		}

		_, err := Of[conf]()

		var unsupported UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
		require.Equal(t, "conf.Meta", unsupported.Path)
		require.Equal(t, "map[string]string", unsupported.Type)
	})
}

type level int

const (
	low level = iota + 1
	high
)

type region string

const (
	east region = "us-east-1"
	west region = "us-west-2"
)

func TestBuild_enum(t *testing.T) {
	t.Run("will derive decimal literals for integer backed members", func(t *testing.T) {
		typ, err := Of[level](WithEnum(low, high))
		require.NoError(t, err)
		require.Equal(t, Enum, typ.Kind())

		members := typ.Members()
		require.Len(t, members, 2)
		require.Equal(t, "1", members[0].Literal)
		require.Equal(t, "2", members[1].Literal)
	})

	t.Run("will use string backed members verbatim", func(t *testing.T) {
		typ, err := Of[region](WithEnum(east, west))
		require.NoError(t, err)

		members := typ.Members()
		require.Len(t, members, 2)
		require.Equal(t, "us-east-1", members[0].Literal)
		require.Equal(t, "us-west-2", members[1].Literal)
	})

	t.Run("will apply to every occurrence of the registered type", func(t *testing.T) {
		type conf struct {
			Level   level
			History []level
		}

		typ, err := Of[conf](WithEnum(low, high))
		require.NoError(t, err)

		fields := typ.Fields()
		require.Equal(t, Enum, fields[0].Type.Kind())
		require.Equal(t, Enum, fields[1].Type.Elem().Kind())
	})

	t.Run("will fail if the member type is not integer or string backed", func(t *testing.T) {
		type ratio float64

		_, err := Of[ratio](WithEnum(ratio(0.5)))

		var unsupported UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported)
	})

	t.Run("will coerce enum default tags against declared literals", func(t *testing.T) {
		type conf struct {
			Region region `default:"us-east-1"`
		}

		typ, err := Of[conf](WithEnum(east, west))
		require.NoError(t, err)

		field := typ.Fields()[0]
		require.True(t, field.HasDefault())
		require.Equal(t, string(east), field.DefaultValue().String())
	})
}

func TestType_Coerce(t *testing.T) {
	t.Run("will reject out of range integer literals", func(t *testing.T) {
		typ, err := Of[int8]()
		require.NoError(t, err)

		_, err = typ.Coerce("1000")
		require.Error(t, err)
	})

	t.Run("will accept TRUE and FALSE case-insensitively", func(t *testing.T) {
		typ, err := Of[bool]()
		require.NoError(t, err)

		v, err := typ.Coerce("tRuE")
		require.NoError(t, err)
		require.True(t, v.Bool())

		v, err = typ.Coerce("FALSE")
		require.NoError(t, err)
		require.False(t, v.Bool())

		_, err = typ.Coerce("yes")
		require.Error(t, err)
	})

	t.Run("will return ErrNotCoercible for non-leaf variants", func(t *testing.T) {
		typ, err := Of[[]string]()
		require.NoError(t, err)

		_, err = typ.Coerce("a,b")
		require.ErrorIs(t, err, ErrNotCoercible)
	})
}
