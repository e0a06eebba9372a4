package render

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"panther-newsletter/internal/config"
	"panther-newsletter/internal/content"
	"panther-newsletter/internal/images"
)

// ErrTemplate indicates the newsletter template is missing or invalid.
var ErrTemplate = errors.New("newsletter template error")

//go:embed newsletter.html
var newsletterTpl string

var sanitizer = bluemonday.UGCPolicy()

// Renderer binds weekly content and configuration into the newsletter
// template. Rendering is pure; construction fails outright on a bad
// template rather than producing partial output.
type Renderer struct {
	tpl *template.Template
}

// New compiles the embedded newsletter template.
func New() (*Renderer, error) {
	tpl, err := template.New("newsletter.html").Funcs(template.FuncMap{
		"markdown":  renderMarkdown,
		"itemTitle": itemTitle,
		"itemBody":  itemBody,
		"itemWhen":  itemWhen,
	}).Parse(newsletterTpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return &Renderer{tpl: tpl}, nil
}

type pageData struct {
	Content content.Weekly
	Cfg     config.Config
	Header  images.Result
}

// Render produces the final HTML document. All interpolated text is
// auto-escaped; markdown fields are sanitized before inlining.
func (r *Renderer) Render(w content.Weekly, cfg config.Config, header images.Result) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, pageData{Content: w, Cfg: cfg, Header: header}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return buf.String(), nil
}

// renderMarkdown converts a Markdown snippet to sanitized HTML. On
// conversion failure the raw text is returned sanitized, never lost.
func renderMarkdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		return template.HTML(sanitizer.Sanitize(template.HTMLEscapeString(s)))
	}
	return template.HTML(sanitizer.Sanitize(buf.String()))
}

// Content items are opaque: a plain string, or a map with loosely
// conventional keys. These accessors dig out display fields without
// imposing a schema.

func itemTitle(v any) string {
	switch it := v.(type) {
	case string:
		return it
	case map[string]any:
		return firstString(it, "title", "name")
	default:
		return fmt.Sprint(v)
	}
}

func itemBody(v any) string {
	if m, ok := v.(map[string]any); ok {
		return firstString(m, "body", "text", "description", "details")
	}
	return ""
}

func itemWhen(v any) string {
	if m, ok := v.(map[string]any); ok {
		return firstString(m, "date", "when", "time")
	}
	return ""
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
