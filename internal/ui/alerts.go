package ui

import (
	"html/template"
	"net/url"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/theme"
)

// AlertStack draws the live notifications of a list, top center, oldest first.
type AlertStack struct {
	Alerts     []alert.Notification
	Theme      theme.Theme
	CloseLabel string
	// DismissPath is the prefix of the per-alert dismiss endpoint; the id is appended.
	DismissPath string
	// PollPath, when set, makes the stack refresh itself from that URL.
	PollPath string
}

func (AlertStack) partial() string { return "alert_stack" }

// AlertView is one rendered notification.
type AlertView struct {
	ID          string
	Message     string
	Severity    string
	Icon        template.HTML
	Style       template.CSS
	DismissURL  string
	CloseLabel  string
	ExpiresInMS int64
}

// Items returns the view of every live notification.
func (s AlertStack) Items() []AlertView {
	th := s.Theme
	if th.Colors.Validation == nil {
		th = defaults
	}
	closeLabel := s.CloseLabel
	if closeLabel == "" {
		closeLabel = "Close"
	}

	out := make([]AlertView, 0, len(s.Alerts))
	for _, n := range s.Alerts {
		if n.Dismissed {
			continue
		}
		var st style
		st.set("background-color", th.SeverityColor(n.Severity))
		st.set("color", th.Colors.White)

		out = append(out, AlertView{
			ID:          n.ID,
			Message:     n.Message,
			Severity:    string(n.Severity),
			Icon:        Icon(string(n.Severity)),
			Style:       st.css(),
			DismissURL:  s.DismissPath + url.PathEscape(n.ID) + "/dismiss",
			CloseLabel:  closeLabel,
			ExpiresInMS: n.AutoClose.Milliseconds(),
		})
	}
	return out
}
