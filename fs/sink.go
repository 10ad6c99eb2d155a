// Package fs writes exported articles to the local filesystem.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/wikicopy"
)

var _ wikicopy.Sink = (*FileSink)(nil)

// FileSink writes content to a single file. The file is replaced
// atomically: content goes to a temporary file in the same directory,
// which is then renamed over the target.
type FileSink struct {
	path string
}

// NewFileSink creates a FileSink targeting path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the target file path.
func (s *FileSink) Path() string {
	return s.path
}

// Write replaces the target file with content.
func (s *FileSink) Write(ctx context.Context, content string) (err error) {
	if s.path == "" {
		return wikicopy.Errorf(wikicopy.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
