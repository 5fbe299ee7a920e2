package testutil

import (
	"io/fs"
	"sync"
	"time"

	"github.com/arthur-debert/assetunion/pkg/filesystem"
)

// Op names a filesystem operation ErrorFS can fail
type Op string

const (
	OpStat  Op = "stat"
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// ErrorFS wraps a filesystem and returns injected errors for chosen
// operation and path pairs. It also counts calls per operation.
type ErrorFS struct {
	filesystem.FS

	mu     sync.Mutex
	errors map[Op]map[string]error
	calls  map[Op]int
}

// NewErrorFS wraps inner
func NewErrorFS(inner filesystem.FS) *ErrorFS {
	return &ErrorFS{
		FS:     inner,
		errors: make(map[Op]map[string]error),
		calls:  make(map[Op]int),
	}
}

// Fail makes op on path return err from now on
func (e *ErrorFS) Fail(op Op, path string, err error) *ErrorFS {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.errors[op] == nil {
		e.errors[op] = make(map[string]error)
	}
	e.errors[op][path] = err
	return e
}

// Calls returns how many times op was called
func (e *ErrorFS) Calls(op Op) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[op]
}

func (e *ErrorFS) check(op Op, path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls[op]++
	if err, ok := e.errors[op][path]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (e *ErrorFS) Stat(name string) (fs.FileInfo, error) {
	if err := e.check(OpStat, name); err != nil {
		return nil, err
	}
	return e.FS.Stat(name)
}

func (e *ErrorFS) ReadFile(name string) ([]byte, error) {
	if err := e.check(OpRead, name); err != nil {
		return nil, err
	}
	return e.FS.ReadFile(name)
}

func (e *ErrorFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := e.check(OpWrite, name); err != nil {
		return err
	}
	return e.FS.WriteFile(name, data, perm)
}

// Chtimes is passed through unchanged
func (e *ErrorFS) Chtimes(name string, atime, mtime time.Time) error {
	return e.FS.Chtimes(name, atime, mtime)
}
