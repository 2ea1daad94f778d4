// Package page renders the coming-soon screen.
//
// The page shows the configured title, the message rendered from Markdown
// (raw HTML is dropped), an optional logo and, when a password is set, the
// challenge form. The accent color is exposed to CSS as --cs-accent (hex) and
// --cs-accent-rgb ("r,g,b", for rgba(var(--cs-accent-rgb), alpha)).
//
//	r, err := page.New()
//	err = r.Render(w, req, page.Data{
//		Title:   s.Title,
//		Message: s.Message,
//		Accent:  accent.Derive(logo),
//	}, http.StatusServiceUnavailable)
package page
