// SPDX-License-Identifier: Apache-2.0

package fsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joomcode/errorx"
)

// Close closes the file and logs an error if it fails.
// It's a wrapper of file.Close without the need for the caller to handle the error.
func Close(f *os.File) {
	if f == nil {
		return
	}

	err := f.Close()
	if err != nil {
		if strings.Contains(err.Error(), "file already closed") {
			return
		}

		fmt.Printf("ERROR: %+v\n", errorx.Decorate(err, "failed to close file %q", f.Name()))
	}
}

// Remove removes the file at the given path and logs an error if it fails.
// It's a wrapper of os.Remove without the need for the caller to handle the error.
func Remove(path string) {
	if path == "" {
		return
	}

	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		fmt.Printf("ERROR: %+v\n", errorx.Decorate(err, "failed to remove file %q", path))
	}
}

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errorx.Decorate(err, "failed to create temp file in %q", dir)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		Close(tmp)
		Remove(tmpName)
		return errorx.Decorate(err, "failed to write temp file %q", tmpName)
	}

	if err = tmp.Chmod(perm); err != nil {
		Close(tmp)
		Remove(tmpName)
		return errorx.Decorate(err, "failed to chmod temp file %q", tmpName)
	}

	if err = tmp.Close(); err != nil {
		Remove(tmpName)
		return errorx.Decorate(err, "failed to close temp file %q", tmpName)
	}

	if err = os.Rename(tmpName, path); err != nil {
		Remove(tmpName)
		return errorx.Decorate(err, "failed to rename %q to %q", tmpName, path)
	}

	return nil
}
