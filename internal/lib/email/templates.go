package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContact corresponds to templates/emails/contact.html
	TemplateContact Template = "contact"
)

//go:embed templates/emails/*.html
var templateFS embed.FS

// htmlEscaper replaces the five characters that matter in element content
// and attribute values. Each '&' becomes exactly one "&amp;".
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes user text for inclusion in the email body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Values are escaped here and marked safe, so html/template does not
// escape them a second time.
var templateFuncs = template.FuncMap{
	"field": func(s string) template.HTML {
		return template.HTML(EscapeHTML(s)) //nolint:gosec // escaped above
	},
	"multiline": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(EscapeHTML(s), "\n", "<br>")) //nolint:gosec // escaped above
	},
}

var templates = template.Must(
	template.New("emails").Funcs(templateFuncs).ParseFS(templateFS, "templates/emails/*.html"),
)

// render executes a named template into a string.
func render(name Template, data any) (string, error) {
	tmpl := templates.Lookup(fmt.Sprintf("%s.html", name))
	if tmpl == nil {
		return "", errors.Errorf("email template %s not found", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return strings.TrimSpace(body.String()), nil
}
