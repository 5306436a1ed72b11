package asset

import (
	"archive/zip"
	"fmt"
	"path"
	"strings"
)

// WalkFunc is called by Walk for every file entry in an archive. The
// archive argument is the path passed to Walk, file is the current entry.
// Returning an error stops the walk.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits every file entry in the zip archive at the given path,
// calling walkFn for each. Directory entries are skipped. An entry with an
// absolute name or a path traversal component ("..") aborts the walk to
// prevent Zip Slip attacks.
func Walk(archive string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for entry names that could escape the
// extraction directory: absolute paths and those containing ".." parts.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
