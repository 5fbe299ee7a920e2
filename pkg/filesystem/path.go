package filesystem

import "path/filepath"

// parentDir returns the directory part of name, or "" when name has none.
func parentDir(name string) string {
	dir := filepath.Dir(name)
	if dir == "." || dir == name || dir == string(filepath.Separator) {
		return ""
	}
	return dir
}
