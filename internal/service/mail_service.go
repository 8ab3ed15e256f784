package service

import (
	"context"
	"fmt"
	"strings"

	"mobile-wallet-core/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

var _ sendGridSender = (*sendgrid.Client)(nil)

// SendGridMailService implements ports.MailSender over the SendGrid
// API. The token composite is embedded verbatim in the message body;
// link construction is the client app's concern.
type SendGridMailService struct {
	client sendGridSender
	from   string
	log    zerolog.Logger
}

// NewSendGridMailService creates a new SendGrid-backed mail sender.
func NewSendGridMailService(apiKey, fromAddress string, log zerolog.Logger) (*SendGridMailService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid api key is empty")
	}
	fromAddress = strings.TrimSpace(fromAddress)
	if fromAddress == "" {
		return nil, fmt.Errorf("mail from address is empty")
	}

	return &SendGridMailService{
		client: sendgrid.NewSendClient(apiKey),
		from:   fromAddress,
		log:    log,
	}, nil
}

// SendVerification delivers an email-verification token.
func (s *SendGridMailService) SendVerification(ctx context.Context, email string, token string) error {
	body := fmt.Sprintf("Confirm your email address with this code:\n\n%s\n\nThe code expires in 24 hours.", token)
	return s.send(email, "Verify your email address", body)
}

// SendPasswordReset delivers a password-reset token.
func (s *SendGridMailService) SendPasswordReset(ctx context.Context, email string, token string) error {
	body := fmt.Sprintf("Reset your password with this code:\n\n%s\n\nThe code expires in 30 minutes. If you did not request a reset, ignore this email.", token)
	return s.send(email, "Reset your password", body)
}

func (s *SendGridMailService) send(to, subject, body string) error {
	email := mail.NewSingleEmail(mail.NewEmail("", s.from), subject, mail.NewEmail("", to), body, "")

	response, err := s.client.Send(email)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	s.log.Debug().Str("to", domain.MaskEmail(to)).Str("subject", subject).Msg("email sent")
	return nil
}

// LogMailService implements ports.MailSender by logging tokens instead
// of delivering them. Used in debug mode when no SendGrid key is set.
type LogMailService struct {
	log zerolog.Logger
}

// NewLogMailService creates a logging mail sender.
func NewLogMailService(log zerolog.Logger) *LogMailService {
	return &LogMailService{log: log}
}

func (s *LogMailService) SendVerification(ctx context.Context, email string, token string) error {
	s.log.Info().Str("to", domain.MaskEmail(email)).Str("token", token).Msg("verification email (log only)")
	return nil
}

func (s *LogMailService) SendPasswordReset(ctx context.Context, email string, token string) error {
	s.log.Info().Str("to", domain.MaskEmail(email)).Str("token", token).Msg("password reset email (log only)")
	return nil
}
