// Package clipboard delivers exported articles to the system clipboard.
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/wikicopy"
)

var _ wikicopy.Sink = (*Sink)(nil)

// Sink copies content to the clipboard, replacing whatever was there.
type Sink struct {
	write func(text string) error
}

// Option configures a Sink.
type Option func(*Sink)

// WithWriter replaces the system clipboard with fn.
func WithWriter(fn func(text string) error) Option {
	return func(s *Sink) {
		s.write = fn
	}
}

// NewSink creates a Sink backed by the system clipboard.
func NewSink(opts ...Option) *Sink {
	s := &Sink{write: writeSystem}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write copies content verbatim; no trailing newline is added.
func (s *Sink) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.write(content); err != nil {
		return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "clipboard: %v", err)
	}
	return nil
}

func writeSystem(text string) error {
	if clipboard.Unsupported {
		return wikicopy.Errorf(wikicopy.EUNAVAILABLE, "no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	return clipboard.WriteAll(text)
}
