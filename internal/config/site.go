package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gayoung/portfolio/internal/colorutil"
	"github.com/gayoung/portfolio/internal/theme"
)

//go:embed site.toml
var defaultSite []byte

type Owner struct {
	Name   string `toml:"name"`
	Email  string `toml:"email"`
	Phone  string `toml:"phone"`
	GitHub string `toml:"github"`
	Blog   string `toml:"blog"`
	CVFile string `toml:"cv_file"`
	CVName string `toml:"cv_name"`
}

type ThemeOverrides struct {
	PrimaryMain  string `toml:"primary_main"`
	PrimaryLight string `toml:"primary_light"`
	PrimaryDark  string `toml:"primary_dark"`
}

type Project struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Image       string `toml:"image"`
}

type Skill struct {
	TitleKey string `toml:"title_key"`
	Value    int    `toml:"value"`
	Icon     string `toml:"icon"`
}

// Site is the portfolio content.
type Site struct {
	Owner    Owner          `toml:"owner"`
	Theme    ThemeOverrides `toml:"theme"`
	Projects []Project      `toml:"projects"`
	Skills   []Skill        `toml:"skills"`
}

// DefaultSite returns the built-in profile.
func DefaultSite() Site {
	var s Site
	if err := toml.Unmarshal(defaultSite, &s); err != nil {
		panic(fmt.Sprintf("embedded site.toml: %v", err))
	}
	return s
}

// LoadSite reads the profile at path on top of the built-in one.
// An empty path returns the defaults. Read, parse and validation errors return
// the defaults together with the error.
func LoadSite(path string) (Site, error) {
	defaults := DefaultSite()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read site config: %w", err)
	}

	site := DefaultSite()
	if err := toml.Unmarshal(data, &site); err != nil {
		return defaults, fmt.Errorf("parse site config %s: %w", path, err)
	}
	if err := site.Validate(); err != nil {
		return defaults, fmt.Errorf("site config %s: %w", path, err)
	}
	return site, nil
}

// Validate checks theme colors and skill values.
func (s Site) Validate() error {
	var errs []error
	for name, c := range map[string]string{
		"primary_main":  s.Theme.PrimaryMain,
		"primary_light": s.Theme.PrimaryLight,
		"primary_dark":  s.Theme.PrimaryDark,
	} {
		if c != "" && !colorutil.Valid(c) {
			errs = append(errs, fmt.Errorf("theme.%s: %q is not a #RRGGBB color", name, c))
		}
	}
	for i, sk := range s.Skills {
		if sk.Value < 0 || sk.Value > 100 {
			errs = append(errs, fmt.Errorf("skills[%d].value: %d out of range 0..100", i, sk.Value))
		}
		if sk.TitleKey == "" {
			errs = append(errs, fmt.Errorf("skills[%d].title_key: required", i))
		}
	}
	if s.Owner.Email == "" {
		errs = append(errs, errors.New("owner.email: required"))
	}
	return errors.Join(errs...)
}

// ApplyTheme returns base with the configured overrides.
func (s Site) ApplyTheme(base theme.Theme) theme.Theme {
	return base.WithPrimary(theme.Palette{
		Main:  s.Theme.PrimaryMain,
		Light: s.Theme.PrimaryLight,
		Dark:  s.Theme.PrimaryDark,
	})
}
