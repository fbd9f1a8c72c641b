// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempName returns the name of the scratch file used while writing path.
// It lives next to path so the final rename stays on one file system.
func TempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

// WriteFileAtomic writes data to a temporary file beside path and renames it
// over path once it is fully written and synced. On failure the temporary
// file is removed and any previous content at path is left untouched.
//
// An existing destination must be writable and keeps its permission bits;
// perm only applies to new files. A symlinked destination is followed and
// its target replaced, so the link itself survives.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) (err error) {
	path, mode, err := destination(path, perm)
	if err != nil {
		return err
	}

	tmp := TempName(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, mode); err != nil {
		return err
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// destination resolves symlinks at path and returns the file to replace with
// the mode the replacement gets. An existing file that cannot be opened for
// writing is reported as an error.
func destination(path string, perm fs.FileMode) (string, fs.FileMode, error) {
	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return path, perm, nil
	}
	if err != nil {
		return "", 0, err
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := filepath.EvalSymlinks(path)
		if os.IsNotExist(err) {
			// Dangling link: create its target.
			target, err = os.Readlink(path)
			if err == nil && !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(path), target)
			}
			if err != nil {
				return "", 0, err
			}
			return target, perm, nil
		}
		if err != nil {
			return "", 0, err
		}
		path = target
		if info, err = os.Stat(path); err != nil {
			return "", 0, err
		}
	}

	if !info.Mode().IsRegular() {
		return "", 0, &fs.PathError{Op: "write", Path: path, Err: fmt.Errorf("not a regular file")}
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return "", 0, err
	}
	f.Close()
	return path, info.Mode().Perm(), nil
}
