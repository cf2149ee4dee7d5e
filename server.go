package main

import (
	"crypto/rand"
	"embed"
	"encoding/hex"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/config"
	"github.com/gayoung/portfolio/internal/i18n"
	"github.com/gayoung/portfolio/internal/logging"
	"github.com/gayoung/portfolio/internal/mailer"
	"github.com/gayoung/portfolio/internal/store"
	"github.com/gayoung/portfolio/internal/theme"
	"github.com/gayoung/portfolio/internal/ui"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// server bundles everything the handlers need.
type server struct {
	cfg        config.Config
	site       config.Site
	theme      theme.Theme
	css        string
	bundle     *i18n.Bundle
	store      *store.Store
	mailer     mailer.Sender
	alerts     *alert.Registry
	adminToken string
}

func newServer(cfg config.Config, site config.Site, bundle *i18n.Bundle, st *store.Store, m mailer.Sender, alerts *alert.Registry) (*server, error) {
	th := site.ApplyTheme(theme.Default())
	css, err := th.Stylesheet()
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:        cfg,
		site:       site,
		theme:      th,
		css:        css,
		bundle:     bundle,
		store:      st,
		mailer:     m,
		alerts:     alerts,
		adminToken: generateToken(),
	}, nil
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal().Err(err).Msg("failed to generate admin token")
	}
	return hex.EncodeToString(b)
}

func (s *server) routes() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(ui.Funcs()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))
	r.Static("/images", "./images")
	r.GET("/theme.css", s.handleStylesheet)

	site := r.Group("/")
	site.Use(s.sessionMiddleware(), s.languageMiddleware(), s.visitorTrackingMiddleware())
	{
		site.GET("/", s.handleHome)
		site.GET("/sections/:name", s.handleSection)
		site.GET("/lang/:code", s.handleLanguage)
		site.GET("/cv", s.handleCV)

		site.POST("/contact", s.handleContact)

		site.GET("/alerts", s.handleAlerts)
		site.POST("/alerts", s.handleClientAlert)
		site.POST("/alerts/:id/dismiss", s.handleDismissAlert)

		site.GET("/privacy", func(c *gin.Context) {
			c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy", "lang": localizer(c).Lang()})
		})
	}

	s.setupAdminRoutes(r)
	return r, nil
}

func (s *server) handleStylesheet(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(s.css))
}
