// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envtree

import (
	"context"
	"log/slog"

	"github.com/z5labs/envtree/key"
	"github.com/z5labs/envtree/schema"
	"github.com/z5labs/envtree/source"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Source is the environment capability resolution reads from.
//
// Lookup returns the content of the exactly named variable. HasPrefix
// reports whether at least one variable's name starts with prefix,
// case-sensitively; resolvers use it to decide whether an optional or
// a list element has any representation before committing to resolving
// it. The source package provides implementations for the live process
// environment and for fixed snapshots.
type Source interface {
	Lookup(name string) (string, bool)
	HasPrefix(prefix string) bool
}

type resolverOptions struct {
	logHandler slog.Handler
	src        Source
	compose    key.Composer
}

// Option configures a [Resolver].
type Option func(*resolverOptions)

// LogHandler configures the underlying slog.Handler.
func LogHandler(h slog.Handler) Option {
	return func(ro *resolverOptions) {
		ro.logHandler = h
	}
}

// Environment configures the [Source] variables are read from.
// The default is the live process environment.
func Environment(src Source) Option {
	return func(ro *resolverOptions) {
		ro.src = src
	}
}

// NameComposer configures how a name prefix and a child segment are
// combined into a variable name. The default upper-cases both parts
// and joins them with an underscore.
func NameComposer(c key.Composer) Option {
	return func(ro *resolverOptions) {
		ro.compose = c
	}
}

// Resolver binds structured values to hierarchies of environment
// variable names. A Resolver holds no per-call state and is safe for
// concurrent use.
type Resolver struct {
	log     *slog.Logger
	src     Source
	compose key.Composer
}

// New returns a fully initialized [Resolver].
func New(opts ...Option) *Resolver {
	ro := &resolverOptions{
		logHandler: slog.DiscardHandler,
		src:        source.Process(),
		compose:    key.Upper,
	}
	for _, opt := range opts {
		opt(ro)
	}
	return &Resolver{
		log:     slog.New(ro.logHandler),
		src:     ro.src,
		compose: ro.compose,
	}
}

// Resolve builds the descriptor for T and resolves a T rooted at the
// given name prefix. The descriptor options are forwarded to
// [schema.Of]; use them to declare enum members.
//
// Callers resolving the same type repeatedly should build the
// descriptor once and use [Resolver.ResolveType], or the provider
// package, instead of rebuilding it on every call.
func Resolve[T any](ctx context.Context, r *Resolver, prefix string, opts ...schema.Option) (T, error) {
	var zero T

	t, err := schema.Of[T](opts...)
	if err != nil {
		return zero, err
	}

	v, err := r.ResolveType(ctx, prefix, t)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// ResolveType resolves a value of the described type rooted at the
// given name prefix. The environment is consulted live; two calls with
// an unchanged environment return equal values.
func (r *Resolver) ResolveType(ctx context.Context, prefix string, t *schema.Type) (_ any, err error) {
	spanCtx, span := otel.Tracer("envtree").Start(ctx, "Resolver.ResolveType", trace.WithAttributes(
		attribute.String("env.prefix", prefix),
	))
	defer span.End()

	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		err = PanicError{Value: rec}
	}()

	v, err := r.resolve(spanCtx, prefix, t)
	if err != nil {
		r.log.ErrorContext(spanCtx, "failed to resolve value", slog.String("prefix", prefix), slog.Any("error", err))
		return nil, err
	}

	r.log.DebugContext(spanCtx, "resolved value", slog.String("prefix", prefix))
	return v.Interface(), nil
}
