// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source provides environment sources for envtree resolvers.
//
// A source answers the two questions resolution asks of the
// environment: the value of an exactly named variable, and whether any
// variable exists under a given name prefix. [Process] reads the live
// process environment on every call. [Snapshot] holds a fixed set of
// variables, which makes it both the consistent-read option for callers
// resolving while the environment may change, and a convenient test
// double.
package source

import (
	"os"
	"strings"
)

// Env reads the live process environment. Every lookup and prefix
// probe consults the environment at call time; nothing is cached, so
// concurrent mutation of the process environment is observable between
// the individual reads of a single resolution.
type Env struct{}

// Process returns a live process environment source.
func Process() Env {
	return Env{}
}

// Lookup returns the value of the exactly named variable.
func (Env) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// HasPrefix reports whether at least one currently set variable's name
// starts with prefix. The match is case-sensitive.
func (Env) HasPrefix(prefix string) bool {
	for _, pair := range os.Environ() {
		name, _, ok := strings.Cut(pair, "=")
		if ok && strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Snapshot is a fixed variable set source.
type Snapshot map[string]string

// FromEnviron builds a [Snapshot] from a list of "key=value" pairs as
// returned by [os.Environ]. Entries without a "=" are skipped.
func FromEnviron(environ []string) Snapshot {
	s := make(Snapshot, len(environ))
	for _, pair := range environ {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		s[k] = v
	}
	return s
}

// Capture snapshots the current process environment.
func Capture() Snapshot {
	return FromEnviron(os.Environ())
}

// Lookup returns the value of the exactly named variable.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// HasPrefix reports whether at least one variable's name starts with
// prefix. The match is case-sensitive.
func (s Snapshot) HasPrefix(prefix string) bool {
	for name := range s {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
