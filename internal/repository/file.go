package repository

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/atinyakov/oceanview/internal/apperr"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ensureFile creates path and its parent directory when path does not exist.
// seed is written only when the file is created by this call.
func ensureFile(path, seed string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return apperr.Storage("stat "+path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return apperr.Storage("create directory "+dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return apperr.Storage("create "+path, err)
	}
	if seed != "" {
		if _, err := f.WriteString(seed); err != nil {
			_ = f.Close()
			return apperr.Storage("seed "+path, err)
		}
	}
	if err := f.Close(); err != nil {
		return apperr.Storage("close "+path, err)
	}
	return nil
}

// scanLines calls fn for every line of path with the line terminator
// stripped. Scanning stops early when fn returns false.
func scanLines(path string, fn func(line string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return apperr.Storage("open "+path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !fn(line) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return apperr.Storage("read "+path, err)
		}
	}
}

// appendLine writes line plus a newline to the end of path in one write.
// A file whose last line lacks a terminator gets one first, so the new
// record never merges into a partial line.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, filePerm)
	if err != nil {
		return apperr.Storage("open "+path, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return apperr.Storage("stat "+path, err)
	}
	if size := info.Size(); size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil {
			_ = f.Close()
			return apperr.Storage("read "+path, err)
		}
		if last[0] != '\n' {
			line = "\n" + line
		}
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return apperr.Storage("append "+path, err)
	}
	if err := f.Close(); err != nil {
		return apperr.Storage("close "+path, err)
	}
	return nil
}
