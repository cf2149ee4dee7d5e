package ui

import (
	"fmt"
	"html/template"
	"slices"
	"strings"

	"github.com/gayoung/portfolio/internal/colorutil"
	"github.com/gayoung/portfolio/internal/theme"
)

// ButtonVariant selects how a Button is drawn.
type ButtonVariant string

const (
	ButtonContained ButtonVariant = "contained"
	ButtonOutlined  ButtonVariant = "outlined"
	ButtonText      ButtonVariant = "text"
)

// Button renders a <button>, or an <a> when it navigates or downloads a file.
type Button struct {
	Label           string
	Variant         ButtonVariant // defaults to contained
	Color           string        // text color, defaults to grey 100
	BackgroundColor string        // defaults to primary main
	Disabled        bool
	StartIcon       string
	EndIcon         string
	Href            string
	FileURL         string // with FileName, turns the button into a download link
	FileName        string
	Width           string
	Margin          Spacing
	BorderRadius    string
	FontFamily      string // "kr" or "en"
	Type            string // button type attribute, defaults to "button"
	Attrs           map[string]string
}

func (Button) partial() string { return "button" }

// IsDownload reports whether the button downloads a file.
func (b Button) IsDownload() bool { return b.FileURL != "" && b.FileName != "" }

// IsLink reports whether the button renders as an anchor.
func (b Button) IsLink() bool { return b.IsDownload() || (b.Href != "" && !b.Disabled) }

// Link is the anchor target.
func (b Button) Link() string {
	if b.IsDownload() {
		return b.FileURL
	}
	return b.Href
}

func (b Button) ButtonType() string {
	if b.Type == "" {
		return "button"
	}
	return b.Type
}

func (b Button) Class() string {
	v := b.Variant
	if v == "" {
		v = ButtonContained
	}
	return "btn btn-" + string(v)
}

// Background is the resting background color.
func (b Button) Background() string {
	if b.BackgroundColor == "" {
		return defaults.Colors.Primary.Main
	}
	return b.BackgroundColor
}

// HoverColor is Background darkened for the hover state.
func (b Button) HoverColor() string {
	return colorutil.Darken(b.Background(), colorutil.DefaultDarkenPercentage)
}

func (b Button) Style() template.CSS {
	color := b.Color
	if color == "" {
		color = defaults.Colors.Grey[100]
	}
	font := defaults.Fonts["kr"]
	if f, ok := defaults.Fonts[b.FontFamily]; ok {
		font = f
	}

	var st style
	st.set("--btn-bg", b.Background())
	st.set("--btn-hover", b.HoverColor())
	st.set("--btn-color", color)
	st.set("width", b.Width)
	st.set("border-radius", b.BorderRadius)
	st.b.WriteString("font-family: " + font + "; ")
	b.Margin.write(&st)
	return st.css()
}

// HTMLAttrs renders Attrs sorted by name; used for hx-* and data-* hooks.
func (b Button) HTMLAttrs() template.HTMLAttr {
	return attrs(b.Attrs)
}

// IconButton is a round button holding only an icon, with an optional caption tooltip.
type IconButton struct {
	Icon            string
	Href            string
	Caption         string
	Color           string
	BackgroundColor string
	NoBackground    bool
	Attrs           map[string]string
}

func (IconButton) partial() string { return "icon_button" }

func (b IconButton) Style() template.CSS {
	bg := b.BackgroundColor
	if bg == "" {
		bg = defaults.Colors.Background.Light
	}
	color := b.Color
	if color == "" {
		color = defaults.Colors.White
	}

	var st style
	if b.NoBackground {
		st.set("--btn-bg", "transparent")
		st.set("--btn-hover", "transparent")
	} else {
		st.set("--btn-bg", bg)
		st.set("--btn-hover", theme.Hover(bg))
	}
	st.set("--btn-color", color)
	return st.css()
}

func (b IconButton) HTMLAttrs() template.HTMLAttr {
	return attrs(b.Attrs)
}

// TextField is a labelled input or textarea.
type TextField struct {
	Name            string
	Type            string // defaults to "text"
	Placeholder     string
	Value           string
	Multiline       bool
	Rows            int
	Required        bool
	Color           string
	BackgroundColor string
	Margin          Spacing
}

func (TextField) partial() string { return "text_field" }

func (f TextField) InputType() string {
	if f.Type == "" {
		return "text"
	}
	return f.Type
}

func (f TextField) RowCount() int {
	if f.Rows <= 0 {
		return 4
	}
	return f.Rows
}

func (f TextField) Style() template.CSS {
	var st style
	st.set("--field-color", f.Color)
	st.set("--field-bg", f.BackgroundColor)
	f.Margin.write(&st)
	return st.css()
}

// Typography renders text in one of the theme's type variants.
type Typography struct {
	Variant   string // h1..h6, p, span; defaults to p
	Text      string
	Color     string
	TextAlign string
	Margin    Spacing
}

func (Typography) partial() string { return "typography" }

// Tag is the HTML element for the variant.
func (t Typography) Tag() string {
	if _, ok := defaults.Typography[t.Variant]; ok {
		return t.Variant
	}
	return "p"
}

func (t Typography) Class() string { return "typo-" + t.Tag() }

func (t Typography) Style() template.CSS {
	var st style
	st.set("color", t.Color)
	st.set("text-align", t.TextAlign)
	t.Margin.write(&st)
	return st.css()
}

// Box is a flex container.
type Box struct {
	Direction       string
	Justify         string
	Align           string
	Wrap            string
	Width           string
	Height          string
	Gap             string
	BackgroundColor string
	Margin          Spacing
	Children        []template.HTML
}

func (Box) partial() string { return "box" }

func (b Box) Style() template.CSS {
	var st style
	st.set("display", "flex")
	st.set("flex-direction", b.Direction)
	st.set("justify-content", b.Justify)
	st.set("align-items", b.Align)
	st.set("flex-wrap", b.Wrap)
	st.set("width", b.Width)
	st.set("height", b.Height)
	st.set("gap", b.Gap)
	st.set("background-color", b.BackgroundColor)
	b.Margin.write(&st)
	return st.css()
}

// Card is a rounded surface with a title, text and an optional image.
type Card struct {
	Title       string
	Description string
	Image       LazyImage
	Footer      template.HTML
}

func (Card) partial() string { return "card" }

// ProgressVariant selects bar or circular progress.
type ProgressVariant string

const (
	ProgressBar      ProgressVariant = "bar"
	ProgressCircular ProgressVariant = "circular"
)

// circumference of the r=45 circle drawn by the circular variant
const progressCircumference = 283

// Progress shows a value between 0 and 100.
type Progress struct {
	Value    int
	Variant  ProgressVariant
	Size     int // circular diameter in px, defaults to 100
	BarWidth string
	Height   string
	Color    string
	Animate  bool
}

func (Progress) partial() string { return "progress" }

// Clamped is Value limited to 0..100.
func (p Progress) Clamped() int {
	return min(max(p.Value, 0), 100)
}

func (p Progress) Circular() bool { return p.Variant == ProgressCircular }

func (p Progress) Diameter() int {
	if p.Size <= 0 {
		return 100
	}
	return p.Size
}

func (p Progress) Fill() string {
	if p.Color == "" {
		return defaults.Colors.Primary.Main
	}
	return p.Color
}

// TargetOffset is the stroke offset that draws Value on the circular variant.
func (p Progress) TargetOffset() int {
	return progressCircumference - p.Clamped()*progressCircumference/100
}

// DashOffset is the offset rendered by the server. Without animation the circle
// stays empty until the client reveals it, moving it to TargetOffset.
func (p Progress) DashOffset() int {
	if !p.Animate {
		return progressCircumference
	}
	return p.TargetOffset()
}

func (p Progress) Circumference() int { return progressCircumference }

func (p Progress) BarStyle() template.CSS {
	width, height := p.BarWidth, p.Height
	if width == "" {
		width = "100%"
	}
	if height == "" {
		height = "8px"
	}
	var st style
	st.set("width", width)
	st.set("height", height)
	return st.css()
}

func (p Progress) FillStyle() template.CSS {
	var st style
	st.set("width", fmt.Sprintf("%d%%", p.Clamped()))
	st.set("background", p.Fill())
	if !p.Animate {
		st.set("transition", "none")
	}
	return st.css()
}

// Skeleton is a loading placeholder.
type Skeleton struct {
	Width  string
	Height string
	Shape  string // "text", "rect" or "circle"
}

func (Skeleton) partial() string { return "skeleton" }

func (s Skeleton) Style() template.CSS {
	var st style
	st.set("width", s.Width)
	st.set("height", s.Height)
	switch s.Shape {
	case "circle":
		st.set("border-radius", "50%")
	case "text":
		st.set("border-radius", defaults.BorderRadius[4])
	}
	return st.css()
}

// LazyImage shows a Skeleton in its place until the image has loaded.
type LazyImage struct {
	Src    string
	Alt    string
	Width  string // defaults to 100px
	Height string // defaults to 100px
}

func (LazyImage) partial() string { return "lazy_image" }

func (i LazyImage) size() (string, string) {
	w, h := i.Width, i.Height
	if w == "" {
		w = "100px"
	}
	if h == "" {
		h = "100px"
	}
	return w, h
}

func (i LazyImage) Style() template.CSS {
	w, h := i.size()
	var st style
	st.set("width", w)
	st.set("height", h)
	return st.css()
}

// Placeholder is the skeleton drawn while the image loads.
func (i LazyImage) Placeholder() Skeleton {
	w, h := i.size()
	return Skeleton{Width: w, Height: h, Shape: "rect"}
}

// Slider is a horizontal carousel. Slides snap into place and prev/next
// controls scroll one slide at a time.
type Slider struct {
	ID            string
	Slides        []template.HTML
	SlidesPerView int  // defaults to 4
	SpaceBetween  int  // gap in px, defaults to 20
	Centered      bool // snap the active slide to the center
	Loop          bool // wrap around at either end
	PrevLabel     string
	NextLabel     string
}

func (Slider) partial() string { return "slider" }

func (s Slider) PerView() int {
	if s.SlidesPerView <= 0 {
		return 4
	}
	return s.SlidesPerView
}

func (s Slider) Gap() int {
	if s.SpaceBetween <= 0 {
		return 20
	}
	return s.SpaceBetween
}

func (s Slider) Align() string {
	if s.Centered {
		return "center"
	}
	return "start"
}

func (s Slider) Prev() string {
	if s.PrevLabel == "" {
		return "Previous"
	}
	return s.PrevLabel
}

func (s Slider) Next() string {
	if s.NextLabel == "" {
		return "Next"
	}
	return s.NextLabel
}

func (s Slider) TrackStyle() template.CSS {
	var st style
	st.set("--slides-per-view", fmt.Sprint(s.PerView()))
	st.set("--slide-gap", fmt.Sprintf("%dpx", s.Gap()))
	st.set("--slide-align", s.Align())
	return st.css()
}

// Children renders each component in order, for use as Box children or slides.
func Children(cs ...Component) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(cs))
	for _, c := range cs {
		h, err := Render(c)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func attrs(m map[string]string) template.HTMLAttr {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		if validAttrName(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, ` %s="%s"`, k, template.HTMLEscapeString(m[k]))
	}
	return template.HTMLAttr(b.String())
}

func validAttrName(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		if !(r == '-' || r == ':' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
