// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/z5labs/envtree"
	"github.com/z5labs/envtree/provider"
	"github.com/z5labs/envtree/source"
)

type httpConfig struct {
	Host string `default:"0.0.0.0"`
	Port int    `default:"8080"`
}

type appConfig struct {
	Name  string `default:"quickstart"`
	Debug bool   `default:"FALSE"`
	Http  httpConfig
	Peers []string
}

func main() {
	logHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})

	// Snapshot the environment once so one resolution never observes
	// a half-mutated variable set.
	r := envtree.New(
		envtree.Environment(source.Capture()),
		envtree.LogHandler(logHandler),
	)

	p, err := provider.New[appConfig](r, "QUICKSTART")
	if err != nil {
		slog.New(logHandler).Error("failed to build provider", slog.Any("error", err))
		os.Exit(1)
	}

	cfg, err := p.Get(context.Background())
	if err != nil {
		slog.New(logHandler).Error("failed to resolve config", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("%+v\n", cfg)
}
