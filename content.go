package main

import (
	"html/template"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/colorutil"
	"github.com/gayoung/portfolio/internal/config"
	"github.com/gayoung/portfolio/internal/i18n"
	"github.com/gayoung/portfolio/internal/ui"
)

type heroView struct {
	Title    ui.Typography
	Flips    []ui.Typography
	Text     ui.Typography
	Links    ui.Box
	Portrait ui.LazyImage
}

type backgroundView struct {
	Caption  ui.Typography
	Title    ui.Typography
	Text     ui.Typography
	Download ui.Button
}

type workView struct {
	Title    ui.Typography
	Text     ui.Typography
	Projects ui.Slider
}

type skillsView struct {
	Title ui.Typography
	Text  ui.Typography
	Grid  ui.Box
}

type contactView struct {
	Title  ui.Typography
	Fields []ui.TextField
	Submit ui.Button
}

type asideView struct {
	Title   ui.Typography
	Text    ui.Typography
	Actions ui.Box
}

// pageView is the data every page template receives.
type pageView struct {
	L          *i18n.Localizer
	Lang       string
	Languages  []string
	Owner      config.Owner
	Background map[string]template.CSS
	Hero       heroView
	About      backgroundView
	Work       workView
	Skills     skillsView
	Contact    contactView
	Aside      asideView
	Alerts     ui.AlertStack
}

func (s *server) buildPage(l *i18n.Localizer, live []alert.Notification) (pageView, error) {
	colors := s.theme.Colors
	owner := s.site.Owner

	langs := make([]string, 0, len(s.bundle.Languages()))
	for _, tag := range s.bundle.Languages() {
		langs = append(langs, tag.String())
	}

	v := pageView{
		L:         l,
		Lang:      l.Lang(),
		Languages: langs,
		Owner:     owner,
		Background: map[string]template.CSS{
			"hero":       background(colors.Background.Dark),
			"background": background(colors.Grey[100]),
			"work":       background(colors.Background.Light),
			"skills":     background(colors.Background.Main),
			"contact":    background(colors.Background.Dark),
			"aside":      background(colors.Background.Light),
		},
		Alerts: s.alertStack(l, live),
	}

	links, err := ui.Children(
		ui.IconButton{
			Icon:            "github",
			Href:            owner.GitHub,
			Caption:         l.T("MAIN_MESSAGE_GITHUB_BUTTON_HOVER_TEXT"),
			BackgroundColor: colors.Background.Light,
		},
		ui.IconButton{
			Icon:            "blog",
			Href:            owner.Blog,
			Caption:         l.T("MAIN_MESSAGE_BLOG_BUTTON_HOVER_TEXT"),
			BackgroundColor: colors.Background.Light,
		},
	)
	if err != nil {
		return v, err
	}
	v.Hero = heroView{
		Title:    ui.Typography{Variant: "h1", Text: l.T("MAIN_MESSAGE_TITLE"), Color: colors.Grey[100], Margin: ui.Spacing{Bottom: "10px"}},
		Text:     ui.Typography{Variant: "h1", Text: l.T("MAIN_MESSAGE_TEXT"), Color: colors.Grey[100], Margin: ui.Spacing{Top: "10px"}},
		Links:    ui.Box{Gap: "10px", Margin: ui.Spacing{Top: "5%"}, Children: links},
		Portrait: ui.LazyImage{Src: "/images/emoji.gif", Alt: owner.Name, Width: "500px", Height: "500px"},
	}
	// row backgrounds and the flip animation come from the stylesheet
	for _, text := range l.Strings("MAIN_TEXTS_ANIMATION_ARR") {
		v.Hero.Flips = append(v.Hero.Flips, ui.Typography{Variant: "h1", Text: text, Color: colors.Grey[100]})
	}

	v.About = backgroundView{
		Caption: ui.Typography{Variant: "h6", Text: l.T("BACKGROUND_SECTION_MESSAGE_CAPTION"), Margin: ui.Spacing{Bottom: "1%"}},
		Title:   ui.Typography{Variant: "h2", Text: l.T("BACKGROUND_SECTION_MESSAGE_TITLE"), TextAlign: "center", Margin: ui.Spacing{Bottom: "3%"}},
		Text:    ui.Typography{Variant: "p", Text: l.T("BACKGROUND_SECTION_MESSAGE_TEXT"), Color: colors.Grey[700], TextAlign: "center"},
		Download: ui.Button{
			Label:           l.T("DOWNLOAD_CV"),
			StartIcon:       "download",
			BackgroundColor: colors.Grey[800],
			FileURL:         "/cv",
			FileName:        owner.CVName,
			Margin:          ui.Spacing{Top: "5%"},
		},
	}

	v.Work = workView{
		Title: ui.Typography{Variant: "h2", Text: l.T("DEVELOPMENT_TITLE"), Color: colors.Primary.Main, TextAlign: "center", Margin: ui.Spacing{Bottom: "0.7%"}},
		Text:  ui.Typography{Variant: "h2", Text: l.T("DEVELOPMENT_TEXT"), TextAlign: "center", Margin: ui.Spacing{Bottom: "3%"}},
	}
	cards := make([]ui.Component, 0, len(s.site.Projects))
	for _, p := range s.site.Projects {
		cards = append(cards, ui.Card{
			Title:       p.Title,
			Description: p.Description,
			Image:       ui.LazyImage{Src: p.Image, Alt: p.Title, Width: "100%", Height: "200px"},
		})
	}
	slides, err := ui.Children(cards...)
	if err != nil {
		return v, err
	}
	v.Work.Projects = ui.Slider{
		ID:        "work-slider",
		Slides:    slides,
		Centered:  true,
		PrevLabel: l.T("SLIDER_PREV"),
		NextLabel: l.T("SLIDER_NEXT"),
	}

	v.Skills = skillsView{
		Title: ui.Typography{Variant: "h2", Text: l.T("TECHNOLOGY_TITLE"), Color: colors.Primary.Main, TextAlign: "center", Margin: ui.Spacing{Bottom: "0.7%"}},
		Text:  ui.Typography{Variant: "h2", Text: l.T("TECHNOLOGY_TEXT"), Margin: ui.Spacing{Bottom: "3%"}},
	}
	skills := make([]ui.Component, 0, len(s.site.Skills))
	for _, sk := range s.site.Skills {
		// revealed by the intersection observer in app.js
		progress, err := ui.Render(ui.Progress{Value: sk.Value, Variant: ui.ProgressCircular, Color: colors.Primary.Main})
		if err != nil {
			return v, err
		}
		skills = append(skills, ui.Card{
			Title:  l.T(sk.TitleKey),
			Image:  ui.LazyImage{Src: sk.Icon, Alt: l.T(sk.TitleKey), Width: "48px", Height: "48px"},
			Footer: progress,
		})
	}
	grid, err := ui.Children(skills...)
	if err != nil {
		return v, err
	}
	v.Skills.Grid = ui.Box{Wrap: "wrap", Justify: "center", Gap: "20px", Children: grid}

	fieldStyle := func(f ui.TextField) ui.TextField {
		f.Color = colors.White
		f.BackgroundColor = colors.Background.Light
		f.Margin = ui.Spacing{Bottom: "10px"}
		return f
	}
	v.Contact = contactView{
		Title: ui.Typography{Variant: "h2", Text: l.T("CONTACT_US_SECTION_MESSAGE_TITLE"), TextAlign: "center", Margin: ui.Spacing{Bottom: "5%"}},
		Fields: []ui.TextField{
			fieldStyle(ui.TextField{Name: "fullName", Placeholder: l.T("CONTACT_US_SECTION_TEXTFIELD_PLACEHOLDER_NAME"), Required: true}),
			fieldStyle(ui.TextField{Name: "company", Placeholder: l.T("CONTACT_US_SECTION_TEXTFIELD_PLACEHOLDER_COMPANY")}),
			fieldStyle(ui.TextField{Name: "email", Type: "email", Placeholder: l.T("CONTACT_US_SECTION_TEXTFIELD_PLACEHOLDER_EMAIL"), Required: true}),
			fieldStyle(ui.TextField{Name: "phone", Type: "tel", Placeholder: l.T("CONTACT_US_SECTION_TEXTFIELD_PLACEHOLDER_PHONE_NUMBER")}),
			fieldStyle(ui.TextField{Name: "message", Multiline: true, Rows: 4, Placeholder: l.T("CONTACT_US_SECTION_TEXTFIELD_PLACEHOLDER_PHONE_MESSAGE"), Required: true}),
		},
		Submit: ui.Button{Label: l.T("CONTACT_US_SECTION_SUBMIT"), Type: "submit", Width: "100%"},
	}

	actions, err := ui.Children(
		ui.Button{
			Label:     l.T("CONTACT_US_ASIDE_PHONE_MESSAGE"),
			Variant:   ui.ButtonText,
			StartIcon: "phone",
			Color:     colors.Grey[600],
			Href:      owner.Phone,
		},
		ui.Button{
			Label:     l.T("CONTACT_US_ASIDE_EMAIL_MESSAGE"),
			Variant:   ui.ButtonText,
			StartIcon: "email",
			Color:     colors.Grey[600],
			Attrs:     map[string]string{"data-copy": owner.Email, "data-alert-url": "/alerts"},
		},
	)
	if err != nil {
		return v, err
	}
	v.Aside = asideView{
		Title:   ui.Typography{Variant: "h2", Text: l.T("CONTACT_US_ASIDE_MESSAGE_TITLE"), Color: colors.Grey[100], Margin: ui.Spacing{Bottom: "10px"}},
		Text:    ui.Typography{Variant: "h6", Text: l.T("CONTACT_US_ASIDE_MESSAGE_TEXT"), Color: colors.Grey[600]},
		Actions: ui.Box{Direction: "column", Align: "flex-start", Margin: ui.Spacing{Top: "5%"}, Children: actions},
	}
	return v, nil
}

func (s *server) alertStack(l *i18n.Localizer, live []alert.Notification) ui.AlertStack {
	return ui.AlertStack{
		Alerts:      live,
		Theme:       s.theme,
		CloseLabel:  l.T("ALERT_CLOSE"),
		DismissPath: "/alerts/",
		PollPath:    "/alerts",
	}
}

// background is a section's inline style. Colors that are not #rrggbb fall back.
func background(color string) template.CSS {
	if !colorutil.Valid(color) {
		color = colorutil.FallbackColor
	}
	return template.CSS("background-color: " + color)
}
