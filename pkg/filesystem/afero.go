package filesystem

import (
	"io/fs"
	"time"

	"github.com/spf13/afero"
)

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// WriteFile refuses to write when the parent directory is missing, matching
// os.WriteFile. MemMapFs would otherwise create the file anyway.
func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if dir := parentDir(name); dir != "" {
		info, err := a.fs.Stat(dir)
		if err != nil {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
		}
	}
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) Chtimes(name string, atime, mtime time.Time) error {
	return a.fs.Chtimes(name, atime, mtime)
}
