package page

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/comingsoon/core/gate"
	"github.com/dmitrymomot/comingsoon/core/response"
	"github.com/dmitrymomot/comingsoon/pkg/accent"
)

//go:embed templates/*.html
var templates embed.FS

// Data is everything the coming-soon page shows.
type Data struct {
	Title   string
	Message string // Markdown
	LogoURL string
	Accent  accent.Accent

	// Challenge shows the password form.
	Challenge        bool
	AntiForgeryToken string
	FormAction       string
	Error            string
}

// view is the template model. Accent values are produced by pkg/accent and
// are marked safe for the style element.
type view struct {
	Lang             string
	Title            string
	Message          template.HTML
	LogoURL          string
	AccentHex        template.CSS
	AccentRGB        template.CSS
	Challenge        bool
	AntiForgeryToken string
	FormAction       string
	Error            string
	FieldAntiForgery string
	FieldPassword    string
	FieldSubmit      string
}

// Renderer renders the coming-soon page. Safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
	lang string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLang sets the html lang attribute.
func WithLang(lang string) Option {
	return func(r *Renderer) {
		if lang != "" {
			r.lang = lang
		}
	}
}

// New parses the embedded template.
func New(opts ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/page.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{tmpl: tmpl, md: newMarkdown(), lang: "en"}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Response builds a response rendering d with status.
func (r *Renderer) Response(d Data, status int) response.Response {
	return response.TemplateNameWithStatus(r.tmpl, "page.html", r.view(d), status)
}

func (r *Renderer) view(d Data) view {
	a := d.Accent
	if a.Hex == "" {
		a = accent.DefaultAccent()
	}
	return view{
		Lang:             r.lang,
		Title:            d.Title,
		Message:          r.Markdown(d.Message),
		LogoURL:          d.LogoURL,
		AccentHex:        template.CSS(a.Hex),
		AccentRGB:        template.CSS(a.RGB),
		Challenge:        d.Challenge,
		AntiForgeryToken: d.AntiForgeryToken,
		FormAction:       d.FormAction,
		Error:            d.Error,
		FieldAntiForgery: gate.FieldAntiForgery,
		FieldPassword:    gate.FieldPassword,
		FieldSubmit:      gate.FieldSubmit,
	}
}

// Render writes the page to w.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, d Data, status int) error {
	return r.Response(d, status)(w, req)
}
