// Package ui is the component library the pages are built from. Each component is
// a plain struct rendered by an embedded html/template partial.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/gayoung/portfolio/internal/theme"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Component is anything Render can draw.
type Component interface {
	partial() string
}

var partials = template.Must(template.New("ui").Funcs(template.FuncMap{
	"icon": Icon,
}).ParseFS(templatesFS, "templates/*.html"))

// tokens used when a component leaves a color unset
var defaults = theme.Default()

// Render draws c to HTML.
func Render(c Component) (template.HTML, error) {
	var buf bytes.Buffer
	if err := partials.ExecuteTemplate(&buf, c.partial(), c); err != nil {
		return "", fmt.Errorf("render %s: %w", c.partial(), err)
	}
	return template.HTML(buf.String()), nil
}

// Funcs exposes Render to page templates as "component".
func Funcs() template.FuncMap {
	return template.FuncMap{
		"component": Render,
		"icon":      Icon,
	}
}

// Spacing holds optional margins, as CSS lengths.
type Spacing struct {
	Top    string
	Bottom string
	Left   string
	Right  string
}

func (s Spacing) write(st *style) {
	st.set("margin-top", s.Top)
	st.set("margin-bottom", s.Bottom)
	st.set("margin-left", s.Left)
	st.set("margin-right", s.Right)
}

var unsafeCSS = regexp.MustCompile(`[;{}<>"'\\]|/\*|url\(|expression\(`)

// style accumulates inline declarations, dropping any value that could escape its declaration.
type style struct {
	b strings.Builder
}

func (s *style) set(prop, value string) {
	if value == "" || unsafeCSS.MatchString(value) {
		return
	}
	s.b.WriteString(prop)
	s.b.WriteString(": ")
	s.b.WriteString(value)
	s.b.WriteString("; ")
}

func (s *style) css() template.CSS {
	return template.CSS(strings.TrimSpace(s.b.String()))
}
