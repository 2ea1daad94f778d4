// Package static serves files from a directory without directory listings.
//
//	assets, err := static.Dir("web/static", static.WithStripPrefix("/static"), static.WithCacheMaxAge(3600))
//	if err != nil {
//		return err
//	}
//	r.Handle("/static/*", assets)
//
// Paths are cleaned before lookup and http.Dir refuses to leave the root, so
// traversal attempts resolve inside it or 404. Only GET and HEAD are served.
package static
