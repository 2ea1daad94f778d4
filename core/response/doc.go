// Package response provides small HTTP response builders.
//
// A Response is a function that renders itself. Builders cover buffered
// html/template rendering, raw bytes and redirects; decorators add
// headers:
//
//	resp := response.TemplateNameWithStatus(tmpl, "page", data, http.StatusServiceUnavailable)
//	resp = response.WithRetryAfter(response.WithNoCache(resp), time.Hour)
//	response.Render(w, r, log, resp)
//
// Handler adapts a func(*http.Request) Response to http.Handler and turns
// render failures into a logged 500.
package response
