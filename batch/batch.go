// SPDX-License-Identifier: MIT

// Package batch encodes or decodes many sequence files against one alphabet.
//
// Every file gets its own session.Session, and files are processed on a
// bounded worker group. Results come back in the order of the input paths,
// whatever order the workers finish in. The first failure cancels the
// remaining work and is returned wrapped with the offending path.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/sfecode/alphabet"
	"github.com/katalvlaran/sfecode/internal/logging"
	"github.com/katalvlaran/sfecode/session"
	"golang.org/x/sync/errgroup"
)

// Item is the result for one input file.
type Item struct {
	Path   string
	Result *session.Result
}

// Option configures Process.
type Option func(*options)

type options struct {
	workers int
	log     *slog.Logger
}

// WithWorkers bounds the number of files processed at once.
// n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger handed to every per-file session.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Process runs mode over every file in paths using alphabet a.
//
// On success the returned items are index-aligned with paths. On failure no
// items are returned; the error names the first failing path.
func Process(ctx context.Context, a *alphabet.Alphabet, paths []string, mode session.Mode, opts ...Option) ([]Item, error) {
	o := options{log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	if a == nil {
		return nil, session.ErrNoAlphabet
	}
	if len(paths) == 0 {
		return []Item{}, nil
	}

	items := make([]Item, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			s := session.New(session.WithLogger(o.log.With("file", path)))
			s.SetAlphabet(a)
			if err := s.LoadSequence(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			res, err := s.Run(mode)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			items[i] = Item{Path: path, Result: res}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.log.Warn("batch aborted", "mode", mode.String(), "error", err)
		return nil, err
	}
	o.log.Info("batch done", "mode", mode.String(), "files", len(paths), "workers", o.workers)

	return items, nil
}
