// Package i18n loads the translation catalogs and picks a language per request.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	// Default is served when nothing in the request matches.
	Default = language.Korean
	// Fallback supplies keys missing from the selected catalog.
	Fallback = language.English
)

// Catalog maps translation keys to a string or a list of strings.
type Catalog map[string]any

// Bundle holds every loaded catalog.
type Bundle struct {
	catalogs map[language.Tag]Catalog
	tags     []language.Tag
	matcher  language.Matcher
}

// Load reads the embedded catalogs.
func Load() (*Bundle, error) {
	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}
	return New(sub)
}

// New reads every <lang>.yaml file at the root of fsys.
// Catalogs for Default and Fallback must be present.
func New(fsys fs.FS) (*Bundle, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	b := &Bundle{catalogs: make(map[language.Tag]Catalog)}
	for _, name := range names {
		tag, err := language.Parse(strings.TrimSuffix(path.Base(name), ".yaml"))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", name, err)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", name, err)
		}

		var c Catalog
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", name, err)
		}
		b.catalogs[tag] = c
	}

	for _, required := range []language.Tag{Default, Fallback} {
		if _, ok := b.catalogs[required]; !ok {
			return nil, fmt.Errorf("missing catalog for %s", required)
		}
	}

	// the first tag passed to the matcher is its default
	rest := make([]language.Tag, 0, len(b.catalogs)-1)
	for tag := range b.catalogs {
		if tag != Default {
			rest = append(rest, tag)
		}
	}
	slices.SortFunc(rest, func(a, b language.Tag) int {
		return strings.Compare(a.String(), b.String())
	})
	b.tags = append([]language.Tag{Default}, rest...)
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Languages lists the supported languages, default first.
func (b *Bundle) Languages() []language.Tag {
	return append([]language.Tag(nil), b.tags...)
}

// Supports reports whether code names a loaded catalog.
func (b *Bundle) Supports(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	_, ok := b.catalogs[tag]
	return ok
}

// Match picks the catalog for a request. An explicit choice (query or cookie)
// wins over the Accept-Language header.
func (b *Bundle) Match(explicit, acceptLanguage string) language.Tag {
	var want []language.Tag
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			want = append(want, tag)
		}
	}
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
		want = append(want, tags...)
	}
	if len(want) == 0 {
		return Default
	}

	_, idx, conf := b.matcher.Match(want...)
	if conf == language.No {
		return Default
	}
	return b.tags[idx]
}

// Localizer returns a translator for tag.
func (b *Bundle) Localizer(tag language.Tag) *Localizer {
	primary, ok := b.catalogs[tag]
	if !ok {
		tag, primary = Default, b.catalogs[Default]
	}
	return &Localizer{tag: tag, primary: primary, fallback: b.catalogs[Fallback]}
}

// Localizer resolves keys for one language.
type Localizer struct {
	tag      language.Tag
	primary  Catalog
	fallback Catalog
}

// Lang is the BCP 47 code of the selected language.
func (l *Localizer) Lang() string {
	return l.tag.String()
}

func (l *Localizer) lookup(key string) (any, bool) {
	if v, ok := l.primary[key]; ok {
		return v, true
	}
	v, ok := l.fallback[key]
	return v, ok
}

// T translates key. Missing keys render as the key itself.
func (l *Localizer) T(key string) string {
	v, ok := l.lookup(key)
	if !ok {
		return key
	}
	if s, ok := v.(string); ok {
		return s
	}
	return key
}

// Tf translates key and appends args separated by spaces.
func (l *Localizer) Tf(key string, args ...any) string {
	if len(args) == 0 {
		return l.T(key)
	}
	return strings.TrimSpace(l.T(key) + " " + fmt.Sprint(args...))
}

// Strings translates a key holding a list. Missing or scalar keys yield nil.
func (l *Localizer) Strings(key string) []string {
	v, ok := l.lookup(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, fmt.Sprint(it))
	}
	return out
}
