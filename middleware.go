package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/gayoung/portfolio/internal/i18n"
)

const (
	sessionCookie = "pf_session"
	langCookie    = "lang"

	ctxSession   = "session"
	ctxLocalizer = "localizer"
)

// sessionMiddleware gives each visitor an opaque id used to find their alerts.
func (s *server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(ctxSession, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxSession)
}

// languageMiddleware picks the catalog from ?lang=, then the lang cookie, then Accept-Language.
func (s *server) languageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		explicit := c.Query("lang")
		if explicit == "" {
			explicit, _ = c.Cookie(langCookie)
		}
		tag := s.bundle.Match(explicit, c.GetHeader("Accept-Language"))
		c.Set(ctxLocalizer, s.bundle.Localizer(tag))
		c.Next()
	}
}

func localizer(c *gin.Context) *i18n.Localizer {
	return c.MustGet(ctxLocalizer).(*i18n.Localizer)
}

// visitorTrackingMiddleware records page views with hashed addresses and honors Do Not Track.
func (s *server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet ||
			strings.HasPrefix(path, "/alerts") ||
			strings.HasPrefix(path, "/privacy") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		// inline, so no write can outlive the store
		if err := s.store.RecordVisit(c.Request.Context(), c.ClientIP(), c.GetHeader("User-Agent"), path, localizer(c).Lang()); err != nil {
			log.Error().Err(err).Msg("error recording visitor")
		}
		c.Next()
	}
}
