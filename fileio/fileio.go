// Package fileio handles the file-system conventions of LightGBM-style
// dataset paths: a "path" may be a comma-joined list of files that form one
// logical byte stream, and every file may have optional sibling files
// discovered by suffix probing.
package fileio

import (
	"io"
	"os"
	"strings"

	"github.com/takara-ml/boostio/pkg/errors"
)

// SplitList splits a comma-joined path list into its ordered components.
// Empty components are dropped, so "a,,b" and "a,b," both yield [a b].
func SplitList(spec string) []string {
	parts := strings.Split(spec, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Exists reports whether path names a readable file. It is used to probe
// for optional sibling files, where absence is an expected outcome rather
// than an error.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// Open opens a single file for reading, wrapping failures as IOError.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open", path, err)
	}
	return f, nil
}

// MultiFile is an io.ReadCloser that splices an ordered list of files into
// one byte stream. Files are opened lazily as reading reaches them, and
// the current file is closed before the next is opened.
type MultiFile struct {
	paths   []string
	pos     int
	current io.ReadCloser
}

// OpenMulti opens the files named by a comma-joined path list as a single
// concatenated stream. It fails if the list is empty; individual files are
// only opened (and may fail) once reading reaches them.
func OpenMulti(spec string) (*MultiFile, error) {
	paths := SplitList(spec)
	if len(paths) == 0 {
		return nil, errors.Wrap(errors.ErrNoSources, spec)
	}
	return &MultiFile{paths: paths}, nil
}

// Read implements io.Reader, advancing across file boundaries until the
// buffer is full or all files are exhausted.
func (m *MultiFile) Read(p []byte) (int, error) {
	read := 0
	for read < len(p) {
		if m.current == nil {
			if m.pos >= len(m.paths) {
				if read > 0 {
					return read, nil
				}
				return 0, io.EOF
			}
			rc, err := Open(m.paths[m.pos])
			if err != nil {
				return read, err
			}
			m.current = rc
		}
		n, err := m.current.Read(p[read:])
		read += n
		if err == io.EOF {
			if cerr := m.current.Close(); cerr != nil {
				m.current = nil
				return read, errors.NewIOError("close", m.paths[m.pos], cerr)
			}
			m.current = nil
			m.pos++
			continue
		}
		if err != nil {
			return read, errors.NewIOError("read", m.paths[m.pos], err)
		}
	}
	return read, nil
}

// Close releases the currently open file, if any. Safe to call multiple
// times and after EOF.
func (m *MultiFile) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Close()
	m.current = nil
	m.pos = len(m.paths)
	if err != nil {
		return errors.NewIOError("close", m.paths[len(m.paths)-1], err)
	}
	return nil
}
