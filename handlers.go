package main

import (
	"errors"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/i18n"
)

// sections that can be fetched on their own as HTMX fragments
var sectionNames = []string{"hero", "background", "work", "skills", "contact", "aside"}

func (s *server) liveAlerts(c *gin.Context) []alert.Notification {
	list, ok := s.alerts.Peek(sessionID(c))
	if !ok {
		return nil
	}
	return list.Live()
}

func (s *server) handleHome(c *gin.Context) {
	s.renderPage(c, "index.html", s.liveAlerts(c))
}

func (s *server) renderPage(c *gin.Context, name string, live []alert.Notification) {
	page, err := s.buildPage(localizer(c), live)
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("error building page")
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, name, page)
}

func (s *server) handleSection(c *gin.Context) {
	name := c.Param("name")
	if !slices.Contains(sectionNames, name) {
		c.String(http.StatusNotFound, "unknown section %q", name)
		return
	}
	s.renderPage(c, "section-"+name, nil)
}

// handleLanguage stores the chosen language in a cookie and sends the visitor back.
func (s *server) handleLanguage(c *gin.Context) {
	code := c.Param("code")
	if !s.bundle.Supports(code) {
		c.String(http.StatusNotFound, "unsupported language %q", code)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(langCookie, code, int((365 * 24 * time.Hour).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *server) handleCV(c *gin.Context) {
	owner := s.site.Owner
	if _, err := os.Stat(owner.CVFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("file", owner.CVFile).Msg("error reading CV")
		}
		c.String(http.StatusNotFound, "CV not available")
		return
	}
	c.FileAttachment(owner.CVFile, owner.CVName)
}

// notify appends a notification to the visitor's list, logging when it cannot.
func (s *server) notify(c *gin.Context, opts alert.Options) {
	list, err := s.alerts.Get(sessionID(c))
	if err != nil {
		log.Error().Err(err).Msg("error loading alert list")
		return
	}
	if _, err := list.Append(opts); err != nil {
		log.Error().Err(err).Str("severity", string(opts.Severity)).Msg("error appending alert")
	}
}

// renderAlerts responds with the visitor's alert stack fragment.
func (s *server) renderAlerts(c *gin.Context, l *i18n.Localizer) {
	c.HTML(http.StatusOK, "alerts", gin.H{"Alerts": s.alertStack(l, s.liveAlerts(c))})
}

func (s *server) handleAlerts(c *gin.Context) {
	s.renderAlerts(c, localizer(c))
}

type clientEvent struct {
	Event  string `form:"event" binding:"required,oneof=copy"`
	OK     bool   `form:"ok"`
	Detail string `form:"detail" binding:"max=200"`
}

// handleClientAlert turns a result reported by the browser into a notification.
func (s *server) handleClientAlert(c *gin.Context) {
	var ev clientEvent
	if err := c.ShouldBind(&ev); err != nil {
		c.String(http.StatusBadRequest, "invalid event")
		return
	}

	l := localizer(c)
	if ev.OK {
		s.notify(c, alert.Options{Message: l.T("SUCCESS_INVALID_TEXT_COPY"), Severity: alert.SeveritySuccess})
	} else {
		s.notify(c, alert.Options{Message: l.Tf("ERROR_TEXT_COPY", ev.Detail), Severity: alert.SeverityError})
	}
	s.renderAlerts(c, l)
}

func (s *server) handleDismissAlert(c *gin.Context) {
	if list, ok := s.alerts.Peek(sessionID(c)); ok {
		list.Dismiss(c.Param("id"))
	}
	s.renderAlerts(c, localizer(c))
}
