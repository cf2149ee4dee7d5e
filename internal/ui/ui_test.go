package ui

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/theme"
)

func render(t *testing.T, c Component) string {
	t.Helper()
	out, err := Render(c)
	require.NoError(t, err)
	return string(out)
}

func TestButton_DefaultsAndHover(t *testing.T) {
	html := render(t, Button{Label: "Send", Type: "submit"})

	assert.Contains(t, html, `<button type="submit" class="btn btn-contained"`)
	assert.Contains(t, html, "--btn-bg: #3d77ff")
	assert.Contains(t, html, "--btn-hover: #315fcc")
	assert.Contains(t, html, "--btn-color: #ffffff")
	assert.Contains(t, html, `<span class="btn-label">Send</span>`)
}

func TestButton_InvalidBackgroundFallsBack(t *testing.T) {
	b := Button{Label: "x", BackgroundColor: "tomato"}
	assert.Equal(t, theme.Hover("#232323"), b.HoverColor())
}

func TestButton_Download(t *testing.T) {
	html := render(t, Button{
		Label:     "Download CV",
		StartIcon: "download",
		FileURL:   "/cv",
		FileName:  "GaYoung_CV.pdf",
	})
	assert.Contains(t, html, `<a class="btn btn-contained"`)
	assert.Contains(t, html, `href="/cv"`)
	assert.Contains(t, html, `download="GaYoung_CV.pdf"`)
	assert.Contains(t, html, `class="icon icon-download"`)
}

func TestButton_DisabledIgnoresHref(t *testing.T) {
	html := render(t, Button{Label: "x", Href: "/somewhere", Disabled: true, Variant: ButtonOutlined})
	assert.Contains(t, html, `<button type="button" class="btn btn-outlined"`)
	assert.Contains(t, html, " disabled")
	assert.NotContains(t, html, "/somewhere")
}

func TestButton_Attrs(t *testing.T) {
	html := render(t, Button{Label: "Copy", Attrs: map[string]string{
		"data-copy":   `a"b`,
		"hx-post":     "/alerts",
		"onclick bad": "x",
	}})
	assert.Contains(t, html, ` data-copy="a&#34;b" hx-post="/alerts"`)
	assert.NotContains(t, html, "onclick")
}

func TestStyle_DropsUnsafeValues(t *testing.T) {
	html := render(t, Box{Width: "100px; background: url(evil)", Height: "50vh"})
	assert.Contains(t, html, "height: 50vh")
	assert.NotContains(t, html, "evil")
}

func TestTypography(t *testing.T) {
	html := render(t, Typography{Variant: "h2", Text: "<Hi>", Color: "#ffffff", TextAlign: "center", Margin: Spacing{Bottom: "3%"}})
	assert.True(t, strings.HasPrefix(html, `<h2 class="typo-h2"`), html)
	assert.Contains(t, html, "&lt;Hi&gt;")
	assert.Contains(t, html, "text-align: center")
	assert.Contains(t, html, "margin-bottom: 3%")

	assert.Contains(t, render(t, Typography{Variant: "blink", Text: "x"}), `<p class="typo-p"`)
}

func TestTextField(t *testing.T) {
	assert.Contains(t, render(t, TextField{Name: "email", Type: "email", Placeholder: "Email", Required: true}),
		`<input class="text-field" type="email" name="email" value="" placeholder="Email"`)

	html := render(t, TextField{Name: "message", Multiline: true})
	assert.Contains(t, html, `<textarea class="text-field" name="message" rows="4"`)
}

func TestProgress(t *testing.T) {
	p := Progress{Value: 150, Animate: true}
	assert.Equal(t, 100, p.Clamped())
	assert.Equal(t, 0, Progress{Value: -3}.Clamped())

	bar := render(t, Progress{Value: 90, Animate: true})
	assert.Contains(t, bar, `aria-valuenow="90"`)
	assert.Contains(t, bar, "width: 90%")

	circ := Progress{Value: 50, Variant: ProgressCircular, Animate: true}
	assert.Equal(t, 142, circ.DashOffset())
	assert.Equal(t, 283, Progress{Value: 50, Variant: ProgressCircular}.DashOffset())
	assert.Contains(t, render(t, circ), `stroke-dashoffset="142"`)
	assert.Contains(t, render(t, Progress{Value: 50, Variant: ProgressCircular}), `data-target-offset="142"`)
}

func TestCardWithImage(t *testing.T) {
	html := render(t, Card{Title: "Event Page", Description: "desc", Image: LazyImage{Src: "/images/a.png", Alt: "project"}})
	assert.Contains(t, html, `<h3 class="typo-h3">Event Page</h3>`)
	assert.Contains(t, html, `loading="lazy"`)
}

func TestLazyImage_SkeletonUntilLoaded(t *testing.T) {
	html := render(t, LazyImage{Src: "/images/emoji.gif", Alt: "me", Width: "500px", Height: "500px"})

	assert.True(t, strings.HasPrefix(html, `<div class="lazy-image" style="width: 500px; height: 500px;" data-lazy-image>`), html)
	skeleton := strings.Index(html, `<div class="skeleton"`)
	img := strings.Index(html, `<img src="/images/emoji.gif"`)
	require.NotEqual(t, -1, skeleton)
	require.NotEqual(t, -1, img)
	assert.Less(t, skeleton, img, "placeholder comes before the image")
	assert.Contains(t, html, `<div class="skeleton" style="width: 500px; height: 500px;"`)

	p := LazyImage{Src: "/a.png"}.Placeholder()
	assert.Equal(t, Skeleton{Width: "100px", Height: "100px", Shape: "rect"}, p)
}

func TestSlider(t *testing.T) {
	slides, err := Children(Card{Title: "One"}, Card{Title: "Two"})
	require.NoError(t, err)

	html := render(t, Slider{ID: "work-slider", Slides: slides, Centered: true, PrevLabel: "이전"})
	assert.Contains(t, html, `<div class="slider" id="work-slider" data-slider>`)
	assert.NotContains(t, html, "data-loop")
	assert.Equal(t, 2, strings.Count(html, `<div class="slider-slide">`))
	assert.Contains(t, html, "--slides-per-view: 4; --slide-gap: 20px; --slide-align: center;")
	assert.Contains(t, html, `aria-label="이전" data-slider-prev`)
	assert.Contains(t, html, `aria-label="Next" data-slider-next`)
	assert.Contains(t, html, `class="icon icon-chevron_left"`)
	assert.Less(t, strings.Index(html, "One"), strings.Index(html, "Two"))

	looped := render(t, Slider{Slides: slides, Loop: true, SlidesPerView: 2, SpaceBetween: 8})
	assert.Contains(t, looped, "data-loop")
	assert.Contains(t, looped, "--slides-per-view: 2; --slide-gap: 8px; --slide-align: start;")
}

func TestSkeletonAndBox(t *testing.T) {
	assert.Contains(t, render(t, Skeleton{Width: "40px", Height: "40px", Shape: "circle"}), "border-radius: 50%")

	html := render(t, Box{Direction: "column", Children: []template.HTML{"<b>a</b>", "<i>b</i>"}})
	assert.Contains(t, html, "flex-direction: column")
	assert.Contains(t, html, "<b>a</b><i>b</i>")
}

func TestAlertStack_RendersLiveOnly(t *testing.T) {
	stack := AlertStack{
		Alerts: []alert.Notification{
			{ID: "a1", Message: "copied", Severity: alert.SeveritySuccess, AutoClose: 5 * time.Second},
			{ID: "a2", Message: "gone", Severity: alert.SeverityError, Dismissed: true},
			{ID: "a3", Message: "careful", Severity: alert.SeverityWarning, AutoClose: time.Second},
		},
		DismissPath: "/alerts/",
		PollPath:    "/alerts",
	}
	html := render(t, stack)

	assert.Contains(t, html, `hx-get="/alerts"`)
	assert.Contains(t, html, `hx-post="/alerts/a1/dismiss"`)
	assert.Contains(t, html, `data-expires-in="5000"`)
	assert.Contains(t, html, "background-color: #4caf50")
	assert.Contains(t, html, "background-color: #ff9800")
	assert.NotContains(t, html, "gone")
	assert.Less(t, strings.Index(html, "copied"), strings.Index(html, "careful"), "creation order is display order")
}

func TestIconUnknown(t *testing.T) {
	assert.Empty(t, Icon("nope"))
	assert.Contains(t, string(Icon("github")), "<svg")
}
