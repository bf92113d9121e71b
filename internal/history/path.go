package history

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFilename is the history file created in the user's home directory.
const DefaultFilename = ".dmenu.recent"

// DefaultPath returns $HOME/.dmenu.recent, or ./.dmenu.recent when HOME is
// unset. getenv is usually os.Getenv.
func DefaultPath(getenv func(string) string) string {
	home := getenv("HOME")
	if home == "" {
		home = "."
	}
	return filepath.Join(home, DefaultFilename)
}

// ResolvePath returns the absolute, symlink-free form of path. The file may
// not exist yet, but its parent directory must.
func ResolvePath(path string) (string, error) {
	if path == "" {
		return "", &PathError{Path: path, Err: errors.New("empty path")}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathError{Path: path, Err: err}
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", &PathError{Path: path, Err: err}
	}

	// First run: resolve the parent and re-attach the file name.
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return "", &PathError{Path: path, Err: err}
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", &PathError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return "", &PathError{Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}

	return filepath.Join(dir, filepath.Base(abs)), nil
}
