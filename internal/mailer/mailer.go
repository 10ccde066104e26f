// Package mailer sends transactional e-mail over SMTP.
package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/config"
	"github.com/flowtel/admin-backend/internal/model"
)

// Mailer delivers notification e-mails. When no SMTP host is configured the
// mailer is disabled and sends become logged no-ops, so local development
// does not need a mail server.
type Mailer struct {
	client *mail.Client
	from   string
	logger *zap.Logger
}

// New builds a Mailer from config. A nil client means disabled.
func New(cfg *config.Config, logger *zap.Logger) (*Mailer, error) {
	m := &Mailer{from: cfg.MailFrom, logger: logger}
	if cfg.SMTPHost == "" {
		return m, nil
	}

	client, err := mail.NewClient(cfg.SMTPHost, clientOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	m.client = client
	return m, nil
}

// clientOptions assembles the SMTP client options. Auth is only configured
// when a user is set, so auth-less relays work without sending empty
// PLAIN credentials.
func clientOptions(cfg *config.Config) []mail.Option {
	opts := []mail.Option{mail.WithPort(cfg.SMTPPort)}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPass),
		)
	}
	return opts
}

// SendRescheduleNotice tells a client their meeting moved to a new date/time.
func (m *Mailer) SendRescheduleNotice(ctx context.Context, req model.UpdateEmailRequest) error {
	if m.client == nil {
		m.logger.Info("mailer disabled, skipping reschedule notice",
			zap.String("email", req.Email))
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(req.Email); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject("Your meeting has been rescheduled")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nYour meeting originally scheduled for %s at %s has been moved to %s at %s.\n\n"+
			"If the new time does not work for you, please reply to this e-mail.\n\nThank you",
		req.Name, req.OldDate, req.OldTime, req.NewDate, req.NewTime))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send reschedule notice: %w", err)
	}
	return nil
}
