package static

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

// dirConfig holds configuration for directory serving
type dirConfig struct {
	root        string
	stripPrefix string
	notFound    http.Handler
	cacheMaxAge int
}

// DirOption configures directory serving behavior
type DirOption func(*dirConfig)

// WithStripPrefix removes the given prefix from the URL path before serving files.
// This is useful when mounting static files under a specific route prefix.
func WithStripPrefix(prefix string) DirOption {
	return func(c *dirConfig) {
		c.stripPrefix = prefix
	}
}

// WithNotFound sets a custom handler for when files are not found.
func WithNotFound(h http.Handler) DirOption {
	return func(c *dirConfig) {
		c.notFound = h
	}
}

// WithCacheMaxAge sets a public Cache-Control max-age in seconds on served files.
func WithCacheMaxAge(seconds int) DirOption {
	return func(c *dirConfig) {
		c.cacheMaxAge = seconds
	}
}

// Dir creates a handler that serves files from a directory.
// Directory listing is disabled; a directory is served only through its index.html.
// It fails at startup if root is not an accessible directory.
func Dir(root string, opts ...DirOption) (http.Handler, error) {
	cfg := &dirConfig{root: filepath.Clean(root)}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validateStartup(cfg.root, true); err != nil {
		return nil, err
	}

	fsys := neuteredFileSystem{fs: http.Dir(cfg.root)}
	fileServer := http.FileServer(fsys)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		p := r.URL.Path
		if cfg.stripPrefix != "" {
			trimmed, ok := strings.CutPrefix(p, cfg.stripPrefix)
			if !ok {
				http.NotFound(w, r)
				return
			}
			p = "/" + strings.TrimPrefix(trimmed, "/")
		}
		dirRequest := strings.HasSuffix(p, "/")
		p = path.Clean("/" + p)
		if dirRequest && p != "/" {
			// FileServer redirects directory paths without the slash.
			p += "/"
		}

		if cfg.notFound != nil {
			f, err := fsys.Open(p)
			if err != nil {
				cfg.notFound.ServeHTTP(w, r)
				return
			}
			_ = f.Close()
		}

		if cfg.cacheMaxAge > 0 {
			w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(cfg.cacheMaxAge))
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = p
		r2.URL.RawPath = ""
		fileServer.ServeHTTP(w, r2)
	}), nil
}

// Exists reports whether dir is an accessible directory.
func Exists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
