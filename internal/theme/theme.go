// Package theme defines the design tokens shared by every component and page.
package theme

import (
	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/colorutil"
)

type Palette struct {
	Main  string
	Light string
	Dark  string
}

type Colors struct {
	Primary    Palette
	Background Palette
	Grey       map[int]string
	Disabled   struct {
		Contained string
		Outlined  string
	}
	White      string
	Black      string
	Validation map[alert.Severity]string
}

type Font struct {
	Size       string
	Weight     int
	LineHeight string
}

type Theme struct {
	Colors       Colors
	BorderRadius map[int]string
	Spacing      map[string]string
	Fonts        map[string]string
	Media        map[string]string
	Typography   map[string]Font
}

// Default returns the site's stock theme.
func Default() Theme {
	t := Theme{
		Colors: Colors{
			Primary:    Palette{Main: "#3d77ff", Light: "#73a7fb", Dark: "#30477c"},
			Background: Palette{Main: "#262626", Light: "#333333", Dark: "#232323"},
			Grey: map[int]string{
				100: "#ffffff",
				200: "#d7d7d7",
				300: "#c6c6c6",
				400: "#b7b7b7",
				500: "#a2a2a2",
				600: "#727272",
				700: "#545454",
				800: "#363636",
				900: "#0f0f0f",
			},
			White: "#ffffff",
			Black: colorutil.FallbackColor,
			Validation: map[alert.Severity]string{
				alert.SeverityError:   "#f44336",
				alert.SeverityWarning: "#ff9800",
				alert.SeverityInfo:    "#2196f3",
				alert.SeveritySuccess: "#4caf50",
			},
		},
		BorderRadius: map[int]string{4: "4px", 20: "20px"},
		Spacing:      map[string]string{"small": "8px", "medium": "16px", "large": "32px"},
		Fonts: map[string]string{
			"en": "'Noto Sans', sans-serif",
			"kr": "'Noto Sans KR', sans-serif",
		},
		Media: map[string]string{
			"mobile":  "(max-width: 600px)",
			"tablet":  "(max-width: 768px)",
			"desktop": "(min-width: 769px)",
		},
		Typography: map[string]Font{
			"h1":   {Size: "2rem", Weight: 800, LineHeight: "2.5rem"},
			"h2":   {Size: "1.75rem", Weight: 700, LineHeight: "2.25rem"},
			"h3":   {Size: "1.25rem", Weight: 500, LineHeight: "2rem"},
			"h4":   {Size: "1.25rem", Weight: 400, LineHeight: "1.75rem"},
			"h5":   {Size: "1rem", Weight: 400, LineHeight: "1.5rem"},
			"h6":   {Size: "0.875rem", Weight: 400, LineHeight: "1.25rem"},
			"p":    {Size: "1rem", Weight: 400, LineHeight: "1.5rem"},
			"span": {Size: "1rem", Weight: 400, LineHeight: "1rem"},
		},
	}
	t.Colors.Disabled.Contained = "#e0e0e0"
	t.Colors.Disabled.Outlined = "#bdbdbd"
	return t
}

// WithPrimary overrides the primary palette. Empty fields keep their current value.
func (t Theme) WithPrimary(p Palette) Theme {
	if p.Main != "" {
		t.Colors.Primary.Main = p.Main
	}
	if p.Light != "" {
		t.Colors.Primary.Light = p.Light
	}
	if p.Dark != "" {
		t.Colors.Primary.Dark = p.Dark
	}
	return t
}

// Hover is the color used for a hovered surface whose base color is c.
func Hover(c string) string {
	return colorutil.Darken(c, colorutil.DefaultDarkenPercentage)
}

// SeverityColor returns the background for an alert of severity s.
func (t Theme) SeverityColor(s alert.Severity) string {
	if c, ok := t.Colors.Validation[s]; ok {
		return c
	}
	return t.Colors.Validation[alert.SeverityInfo]
}
