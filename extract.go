package txtar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Materialize writes each file in the archive to the directory at dir,
// creating intermediate directories as needed. File names are cleaned
// lexically before use; a name that is absolute or resolves outside dir
// fails with a *DirEscapeError, and creating a file that already exists
// fails with an error matching fs.ErrExist (existing files are never
// overwritten). Materialize stops at the first failure and leaves any
// files already written in place.
//
// The escape check is lexical only: a symlink already present under dir
// can still redirect a cleaned path outside the root at write time.
func (a *Archive) Materialize(dir string) error {
	for _, f := range a.files {
		rel, err := cleanName(f.name)
		if err != nil {
			return err
		}
		if err := writeNewFile(filepath.Join(dir, rel), f.data); err != nil {
			return fmt.Errorf("txtar: materialize %q: %w", f.name, err)
		}
	}
	return nil
}

// cleanName resolves "." and ".." components of name without consulting the
// filesystem and rejects the result if it would escape the destination root.
func cleanName(name string) (string, error) {
	path := filepath.Clean(filepath.FromSlash(name))
	if isAbs(path) || path == ".." || strings.HasPrefix(path, ".."+string(filepath.Separator)) {
		return "", &DirEscapeError{Path: filepath.ToSlash(path)}
	}
	return path, nil
}

func isAbs(p string) bool {
	// Under Windows filepath.IsAbs(`\foo`) reports false, but such a path
	// still escapes the destination root.
	return filepath.IsAbs(p) || strings.HasPrefix(p, string(filepath.Separator))
}

func writeNewFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	// O_EXCL makes creation fail rather than clobber an existing file.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
