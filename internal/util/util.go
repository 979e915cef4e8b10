package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ParentExists reports whether the directory that would hold path exists.
func ParentExists(path string) bool {
	return DirExists(filepath.Dir(path))
}
