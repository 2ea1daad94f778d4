// Package branding resolves the site logo and the accent color derived from it.
//
// A Source wraps any media.Loader (local directory or S3) with a per-key cache
// and collapses concurrent loads of the same key:
//
//	src := branding.New(loader, branding.WithTTL(5*time.Minute), branding.WithLogger(log))
//	a := src.Accent(ctx, settings.LogoKey) // never fails; falls back to the default accent
//	logo, err := src.Logo(ctx, settings.LogoKey)
package branding
