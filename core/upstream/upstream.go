package upstream

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/dmitrymomot/comingsoon/core/logger"
)

// ErrInvalidURL is returned for upstream URLs that are not absolute http(s) URLs.
var ErrInvalidURL = errors.New("upstream: invalid url")

// Config describes the site hidden behind the coming-soon page.
type Config struct {
	URL     string        `env:"UPSTREAM_URL"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`
}

// New returns a reverse proxy to cfg.URL. The client address is appended to
// X-Forwarded-For and the original host is kept in X-Forwarded-Host.
// Transport failures answer 502 and are logged.
func New(cfg Config, log *slog.Logger) (http.Handler, error) {
	target, err := url.Parse(cfg.URL)
	if err != nil || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, cfg.URL)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Timeout > 0 {
		transport.ResponseHeaderTimeout = cfg.Timeout
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		Transport: transport,
		ErrorLog:  slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "upstream request failed",
				logger.Component("upstream"), logger.Path(r.URL.Path), logger.Error(err))
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		},
	}, nil
}
