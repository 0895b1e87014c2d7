// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides helpers for composing environment variable names.
package key

import (
	"strings"
)

// Composer combines a name prefix with a child segment into a single
// lookup key. Composing with an empty suffix must return the prefix in
// its final lookup form, which resolvers use to probe whether anything
// at all exists under the prefix.
type Composer func(prefix, suffix string) string

// Upper is the default [Composer]. It upper-cases both parts and joins
// them with an underscore, e.g. Upper("app", "port") == "APP_PORT".
func Upper(prefix, suffix string) string {
	return Delimited("_")(prefix, suffix)
}

// Delimited returns a [Composer] which upper-cases both parts and
// joins them with sep.
func Delimited(sep string) Composer {
	return func(prefix, suffix string) string {
		if suffix == "" {
			return strings.ToUpper(prefix)
		}
		return strings.ToUpper(prefix) + sep + strings.ToUpper(suffix)
	}
}
