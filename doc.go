// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envtree binds structured values to hierarchies of environment variable names.
//
// The target type itself is the schema: its shape is walked once into an
// explicit descriptor tree (see the schema package) and then resolved
// recursively against the environment. Each nested field extends the
// name prefix, so a struct
//
//	type Config struct {
//	    Host string
//	    Port int `default:"8080"`
//	}
//
// resolved at prefix "APP" reads APP_HOST and APP_PORT:
//
//	cfg, err := envtree.Resolve[Config](ctx, envtree.New(), "APP")
//
// # Shapes
//
//   - string, integer, unsigned integer, float kinds read one variable
//     and coerce its content strictly.
//   - bool reads one variable and accepts exactly TRUE or FALSE,
//     case-insensitively.
//   - enums are defined types registered with schema.WithEnum; integer
//     members match their decimal form, string members match verbatim.
//   - pointers are optional values: if nothing exists under the prefix
//     the field is nil, while presence of any matching variable commits
//     to resolving the inner type.
//   - slices read contiguous indices starting at APP_LIST_0 and stop at
//     the first index with no variable under it; no count variable
//     exists and an empty list is not a failure.
//   - structs resolve field by field in declared order, extending the
//     prefix with the field name (or its env tag) and falling back to a
//     default tag only when the field's own variable is absent.
//
// # Failures
//
// Failures are typed, final and carry the exact variable name that
// failed, deepest first: [MissingVariableError], [CastError],
// [UnsupportedTypeError] and [UnknownElementTypeError]. A failure at
// any depth aborts the whole call; nothing is retried.
//
// # Environment access
//
// Variables are read through the [Source] capability. The default is
// the live process environment, read fresh on every call with no
// snapshotting; callers that need a consistent read across one
// resolution should capture a source.Snapshot first and install it
// with [Environment].
package envtree
