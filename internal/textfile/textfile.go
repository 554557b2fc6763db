// Package textfile reads and writes newline-separated text files of names.
//
// Input is decoded as UTF-8 unless a byte order mark says otherwise (UTF-8
// and UTF-16 BOMs are honored and stripped). Output is always UTF-8 without
// a BOM, one line per entry, and replaces the target atomically.
package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors returned by ReadLines and WriteLines.
var (
	ErrEmptyPath    = errors.New("path cannot be empty")
	ErrFileNotFound = errors.New("file does not exist")
)

// ctxCheckInterval is how many lines are processed between context checks.
const ctxCheckInterval = 1024

// ReadLines returns the trimmed, non-blank lines of the file at path in
// file order. The result is never nil; an empty file yields an empty slice.
func ReadLines(ctx context.Context, path string) ([]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(f, dec))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lines := []string{}
	for n := 0; sc.Scan(); n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// WriteLines writes lines to path, each followed by "\n". The content is
// staged in a temporary file next to path and renamed into place, so a
// failed or cancelled write leaves any existing file untouched.
func WriteLines(ctx context.Context, path string, lines []string) (err error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	for i, line := range lines {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Store reads and writes name lists on the local filesystem.
type Store struct{}

// ReadLines implements pipeline.Source.
func (Store) ReadLines(ctx context.Context, path string) ([]string, error) {
	return ReadLines(ctx, path)
}

// WriteLines implements pipeline.Sink.
func (Store) WriteLines(ctx context.Context, path string, lines []string) error {
	return WriteLines(ctx, path, lines)
}
