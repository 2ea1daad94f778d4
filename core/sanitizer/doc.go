// Package sanitizer normalizes user-provided strings.
//
// Functions can be called directly or applied to struct fields through the
// sanitize tag. Sanitizers in a tag run left to right; max:N truncates to N runes:
//
//	type Settings struct {
//		Title   string `sanitize:"strip_html,single_line,max:120"`
//		LogoKey string `sanitize:"object_key"`
//	}
//
//	if err := sanitizer.SanitizeStruct(&s); err != nil {
//		return err
//	}
//
// Nested structs and non-nil pointers are processed recursively. An unknown
// sanitizer name or a malformed max:N fails with ErrUnknownSanitizer.
// RegisterSanitizer adds custom entries.
package sanitizer
