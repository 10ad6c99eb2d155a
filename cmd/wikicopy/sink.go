package main

import (
	"context"
	"io"
	"strings"

	"github.com/fwojciec/wikicopy"
)

var _ wikicopy.Sink = (*StreamSink)(nil)

// StreamSink writes exported content to a stream such as stdout.
type StreamSink struct {
	W io.Writer
}

// Write writes content followed by a newline when it lacks one.
func (s *StreamSink) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := io.WriteString(s.W, content)
	return err
}
