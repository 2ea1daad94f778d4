package static

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// validateStartup checks that a file or directory exists and is accessible at startup.
func validateStartup(path string, mustBeDir bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mustBeDir {
				return fmt.Errorf("%w: directory does not exist: %s", ErrInvalidRoot, path)
			}
			return fmt.Errorf("%w: file does not exist: %s", ErrInvalidRoot, path)
		}
		return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	if mustBeDir && !info.IsDir() {
		return fmt.Errorf("%w: path is not a directory: %s", ErrInvalidRoot, path)
	}

	if !mustBeDir && info.IsDir() {
		return fmt.Errorf("%w: path is a directory, not a file: %s", ErrInvalidRoot, path)
	}

	return nil
}

// neuteredFileSystem wraps http.FileSystem to disable directory listing.
// It only allows directory access if an index.html file is present.
type neuteredFileSystem struct {
	fs http.FileSystem
}

// Open implements http.FileSystem.Open with directory listing disabled.
func (nfs neuteredFileSystem) Open(path string) (http.File, error) {
	f, err := nfs.fs.Open(path)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if s.IsDir() {
		index := strings.TrimSuffix(path, "/") + "/index.html"
		idx, err := nfs.fs.Open(index)
		if err != nil {
			_ = f.Close()
			return nil, fs.ErrNotExist
		}
		_ = idx.Close()
	}

	return f, nil
}
