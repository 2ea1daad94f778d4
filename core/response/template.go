package response

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"
)

// executeTemplate runs the named template, or the root one when name is empty.
func executeTemplate(tmpl *template.Template, name string, data any, w io.Writer) error {
	if tmpl == nil {
		return fmt.Errorf("template is nil")
	}

	if name != "" {
		return tmpl.ExecuteTemplate(w, name, data)
	}
	return tmpl.Execute(w, data)
}

// TemplateNameWithStatus renders a named template with a custom status code.
// Output is buffered, so a failing template writes nothing.
func TemplateNameWithStatus(tmpl *template.Template, name string, data any, status int) Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		var buf bytes.Buffer
		if err := executeTemplate(tmpl, name, data, &buf); err != nil {
			return err
		}

		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if r.Method == http.MethodHead {
			return nil
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
}
