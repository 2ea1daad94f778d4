package settings

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/comingsoon/core/sanitizer"
)

const (
	DefaultTitle   = "Coming Soon"
	DefaultMessage = "We are putting the finishing touches on something great. Stay tuned!"
)

// Settings is the administrator-controlled state of the coming-soon screen.
// An empty Password disables the access gate.
type Settings struct {
	Enabled  bool   `toml:"enabled" json:"enabled"`
	Title    string `toml:"title" json:"title" sanitize:"strip_html,no_control,single_line,max:120"`
	Message  string `toml:"message" json:"message" sanitize:"no_control,trim,max:4000"`
	LogoKey  string `toml:"logo_key" json:"logo_key" sanitize:"object_key,max:512"`
	Password string `toml:"password" json:"password" sanitize:"no_control,max:256"`
}

// Defaults returns the settings used when nothing has been saved.
func Defaults() Settings {
	return Settings{
		Enabled: false,
		Title:   DefaultTitle,
		Message: DefaultMessage,
	}
}

// Sanitize returns a cleaned copy of s. An empty title falls back to DefaultTitle.
func Sanitize(s Settings) Settings {
	_ = sanitizer.SanitizeStruct(&s)
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	return s
}

// Store persists Settings.
type Store interface {
	// Load returns ErrNotFound when nothing has been saved.
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// Save sanitizes s and writes it to store.
func Save(ctx context.Context, store Store, s Settings) (Settings, error) {
	s = Sanitize(s)
	if err := store.Save(ctx, s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return s, nil
}
