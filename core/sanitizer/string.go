package sanitizer

import (
	"html"
	"path"
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	unsafeKeyRegex  = regexp.MustCompile(`[^a-zA-Z0-9._/-]+`)
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts the string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// MaxLength truncates to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// RemoveExtraWhitespace collapses whitespace runs into single spaces.
func RemoveExtraWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// RemoveControlChars drops control characters except newline, carriage return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// StripHTML removes tags and decodes entities.
func StripHTML(s string) string {
	stripped := htmlTagRegex.ReplaceAllString(s, "")
	return html.UnescapeString(stripped)
}

// SingleLine replaces line breaks with spaces and collapses whitespace.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")

	return RemoveExtraWhitespace(s)
}

// ObjectKey normalizes a storage key: forward slashes, no leading slash, no
// "." or ".." segments and only [a-zA-Z0-9._/-]. Returns "" when nothing is left.
func ObjectKey(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), `\`, "/")
	s = unsafeKeyRegex.ReplaceAllString(s, "")

	parts := strings.Split(s, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return ""
	}
	return path.Join(kept...)
}
