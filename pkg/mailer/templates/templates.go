// Package templates renders the transactional emails sent by the worker.
// Each email is a triple of files: <name>.subject.tmpl, <name>.text.tmpl and
// <name>.html.tmpl.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
)

//go:embed *.tmpl
var FS embed.FS

// Template names
const (
	Welcome = "welcome"
)

// ErrUnknown is returned for a name without a full template triple.
var ErrUnknown = errors.New("unknown email template")

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || rv.IsZero() {
			return fallback
		}
		return value
	}
}

var funcs = map[string]any{
	"default": defaultFn,
	"upper":   strings.ToUpper,
}

var (
	textSet = texttpl.Must(texttpl.New("").Funcs(funcs).ParseFS(FS, "*.subject.tmpl", "*.text.tmpl"))
	htmlSet = htmpl.Must(htmpl.New("").Funcs(funcs).ParseFS(FS, "*.html.tmpl"))
)

// Has reports whether name has subject, text and html parts.
func Has(name string) bool {
	return textSet.Lookup(name+".subject.tmpl") != nil &&
		textSet.Lookup(name+".text.tmpl") != nil &&
		htmlSet.Lookup(name+".html.tmpl") != nil
}

// Render executes the three parts of name against data. The subject is trimmed.
func Render(name string, data any) (subject, text, html string, err error) {
	if !Has(name) {
		return "", "", "", fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	var buf bytes.Buffer
	exec := func(run func() error, part string) (string, error) {
		buf.Reset()
		if err := run(); err != nil {
			return "", fmt.Errorf("render %s.%s: %w", name, part, err)
		}
		return buf.String(), nil
	}
	if subject, err = exec(func() error { return textSet.ExecuteTemplate(&buf, name+".subject.tmpl", data) }, "subject"); err != nil {
		return "", "", "", err
	}
	if text, err = exec(func() error { return textSet.ExecuteTemplate(&buf, name+".text.tmpl", data) }, "text"); err != nil {
		return "", "", "", err
	}
	if html, err = exec(func() error { return htmlSet.ExecuteTemplate(&buf, name+".html.tmpl", data) }, "html"); err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
