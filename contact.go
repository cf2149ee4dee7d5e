package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gayoung/portfolio/internal/alert"
	"github.com/gayoung/portfolio/internal/mailer"
	"github.com/gayoung/portfolio/internal/store"
)

const mailTimeout = 15 * time.Second

type contactForm struct {
	FullName string `form:"fullName" binding:"required,max=100"`
	Company  string `form:"company" binding:"max=100"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"max=30"`
	Message  string `form:"message" binding:"required,max=5000"`
}

// handleContact stores the message, forwards it by mail and reports the outcome as an alert.
// The submission counts as received when either step succeeds.
func (s *server) handleContact(c *gin.Context) {
	l := localizer(c)

	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		log.Debug().Err(err).Msg("invalid contact form")
		s.notify(c, alert.Options{Message: l.T("CONTACT_INVALID"), Severity: alert.SeverityWarning})
		s.renderAlerts(c, l)
		return
	}

	ctx := c.Request.Context()
	id, saveErr := s.store.SaveMessage(ctx, store.Message{
		Name:    form.FullName,
		Company: form.Company,
		Email:   form.Email,
		Phone:   form.Phone,
		Body:    form.Message,
	})
	if saveErr != nil {
		log.Error().Err(saveErr).Msg("error saving contact message")
	}

	mailCtx, cancel := context.WithTimeout(ctx, mailTimeout)
	defer cancel()
	sendErr := s.mailer.Send(mailCtx, mailer.Contact{
		Name:    form.FullName,
		Company: form.Company,
		Email:   form.Email,
		Phone:   form.Phone,
		Message: form.Message,
	})
	if sendErr != nil {
		log.Error().Err(sendErr).Msg("error sending contact email")
	} else if saveErr == nil {
		if err := s.store.MarkDelivered(ctx, id); err != nil {
			log.Error().Err(err).Int64("id", id).Msg("error marking message delivered")
		}
	}

	if saveErr != nil && sendErr != nil {
		s.notify(c, alert.Options{Message: l.T("CONTACT_ERROR"), Severity: alert.SeverityError})
	} else {
		s.notify(c, alert.Options{Message: l.T("CONTACT_SUCCESS"), Severity: alert.SeveritySuccess})
	}
	s.renderAlerts(c, l)
}
