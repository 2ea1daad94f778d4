package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextExtractor returns an attribute derived from ctx, if present.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

type config struct {
	level      slog.Level
	json       bool
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*config)

// New creates a logger. Without options it writes text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: cfg.extractors}
	}

	return slog.New(h)
}

// SetAsDefault installs log as the slog default logger.
func SetAsDefault(log *slog.Logger) {
	slog.SetDefault(log)
}

// WithLevel sets the minimum level.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithLevelName sets the minimum level from a name such as "debug" or "warn".
// Unknown or empty names leave the level unchanged.
func WithLevelName(name string) Option {
	return func(c *config) {
		var level slog.Level
		if name != "" && level.UnmarshalText([]byte(name)) == nil {
			c.level = level
		}
	}
}

// WithJSONFormatter switches output to JSON.
func WithJSONFormatter() Option {
	return func(c *config) { c.json = true }
}

// WithTextFormatter switches output to logfmt-style text.
func WithTextFormatter() Option {
	return func(c *config) { c.json = false }
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors adds extractors run for every record that carries a context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) { c.extractors = append(c.extractors, extractors...) }
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.json = false
		c.attrs = append(c.attrs, slog.String("app", app), slog.String("env", "development"))
	}
}

// WithStaging configures JSON output at info level.
func WithStaging(app string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.attrs = append(c.attrs, slog.String("app", app), slog.String("env", "staging"))
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(app string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.attrs = append(c.attrs, slog.String("app", app), slog.String("env", "production"))
	}
}

// ForEnv picks a preset by environment name; unknown names get development.
func ForEnv(env, app string) Option {
	switch env {
	case "production", "prod":
		return WithProduction(app)
	case "staging":
		return WithStaging(app)
	default:
		return WithDevelopment(app)
	}
}

// contextHandler decorates a handler with attributes pulled from the record context.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		for _, extract := range h.extractors {
			if attr, ok := extract(ctx); ok {
				r.AddAttrs(attr)
			}
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}
