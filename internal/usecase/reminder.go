package usecase

import (
	"context"
	"fmt"
	"strings"

	"wikoo-core/internal/domain/entity"
	"wikoo-core/internal/domain/repository"
	"wikoo-core/internal/logger"
)

const (
	defaultReminderSubject = "Wikoo Wellness Reminder"
	defaultReminderBody    = "Don't forget your daily wellness activity! 🌿"
)

type ReminderService struct {
	mailer    repository.Mailer
	defaultTo string
	logger    logger.Interface
}

// NewReminderService builds the email reminder service. mailer may be nil
// when SMTP is not configured; Send then reports ErrMailerNotConfigured.
func NewReminderService(mailer repository.Mailer, defaultTo string, log logger.Interface) *ReminderService {
	return &ReminderService{
		mailer:    mailer,
		defaultTo: defaultTo,
		logger:    log.Named("reminder"),
	}
}

// Send mails a reminder and returns the recipient it went to.
func (s *ReminderService) Send(ctx context.Context, req entity.ReminderRequest) (string, error) {
	if s.mailer == nil {
		return "", entity.ErrMailerNotConfigured
	}

	to := strings.TrimSpace(req.To)
	if to == "" {
		to = s.defaultTo
	}
	if to == "" {
		return "", entity.ErrNoRecipient
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = defaultReminderSubject
	}
	body := req.Body
	if strings.TrimSpace(body) == "" {
		body = defaultReminderBody
	}

	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		return "", fmt.Errorf("send reminder: %w", err)
	}

	s.logger.Info("reminder email sent", "to", to)
	return to, nil
}
