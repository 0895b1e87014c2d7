// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package provider adapts a [envtree.Resolver] into a zero argument
// factory, the shape dependency injection containers expect.
package provider

import (
	"context"

	"github.com/z5labs/envtree"
	"github.com/z5labs/envtree/schema"
)

// Provider is bound to one fixed (prefix, type) pair at construction.
// Its descriptor is built once; the environment is re-read on every
// [Provider.Get], never memoized.
type Provider[T any] struct {
	resolver *envtree.Resolver
	prefix   string
	typ      *schema.Type
}

// New returns a [Provider] for the type T rooted at the given name
// prefix. The descriptor options are forwarded to [schema.Of]; use
// them to declare enum members.
func New[T any](r *envtree.Resolver, prefix string, opts ...schema.Option) (*Provider[T], error) {
	t, err := schema.Of[T](opts...)
	if err != nil {
		return nil, err
	}
	return &Provider[T]{
		resolver: r,
		prefix:   prefix,
		typ:      t,
	}, nil
}

// Get resolves a fresh T from the environment.
func (p *Provider[T]) Get(ctx context.Context) (T, error) {
	var zero T

	v, err := p.resolver.ResolveType(ctx, p.prefix, p.typ)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}
