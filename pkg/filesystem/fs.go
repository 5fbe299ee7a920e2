package filesystem

import (
	"io/fs"
	"time"
)

// FS is the set of file operations the bundler performs.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or truncates name. It never creates parent directories.
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error
}
