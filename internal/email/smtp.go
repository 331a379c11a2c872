package email

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/mail.v2"

	"promptmail/internal/logger"
)

// SMTPConfig describes the relay used for submission.
type SMTPConfig struct {
	Host string
	Port int
	// StartTLS is "mandatory", "opportunistic" or "none".
	StartTLS string
}

// SMTPSender implements Sender over an authenticated SMTP submission.
// Each Send opens one session, submits one message and closes it.
type SMTPSender struct {
	host   string
	port   int
	policy mail.StartTLSPolicy
	log    *logger.Logger
}

func NewSMTPSender(cfg SMTPConfig, log *logger.Logger) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, fmt.Errorf("smtp: host is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("smtp: port is required")
	}
	policy, err := parseStartTLSPolicy(cfg.StartTLS)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SMTPSender{
		host:   cfg.Host,
		port:   cfg.Port,
		policy: policy,
		log:    log.WithComponent("smtp"),
	}, nil
}

// Send dials the relay, negotiates STARTTLS according to the policy,
// authenticates with creds and submits msg. A refused credential yields
// *AuthError; everything else yields *DeliveryError.
func (s *SMTPSender) Send(ctx context.Context, creds Credentials, msg Message) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Op: "dial", Err: err}
	}
	if msg.From == "" {
		msg.From = creds.Username
	}

	d := mail.NewDialer(s.host, s.port, creds.Username, creds.Password)
	d.StartTLSPolicy = s.policy

	conn, err := d.Dial()
	if err != nil {
		if isAuthReply(err) {
			return &AuthError{Err: err}
		}
		return &DeliveryError{Op: "dial", Err: err}
	}

	if err := mail.Send(conn, toMailMessage(msg)); err != nil {
		_ = conn.Close()
		return &DeliveryError{Op: "send", Err: err}
	}

	// The relay has accepted the message at this point; a failing QUIT is
	// not a delivery failure.
	if err := conn.Close(); err != nil {
		s.log.Warn().Err(err).Msg("closing smtp session")
	}

	s.log.Info().
		Str("relay", fmt.Sprintf("%s:%d", s.host, s.port)).
		Str("to", msg.To).
		Msg("mail submitted")
	return nil
}

func toMailMessage(msg Message) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}
	return m
}

func parseStartTLSPolicy(value string) (mail.StartTLSPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "mandatory":
		return mail.MandatoryStartTLS, nil
	case "opportunistic":
		return mail.OpportunisticStartTLS, nil
	case "none":
		return mail.NoStartTLS, nil
	default:
		return 0, fmt.Errorf("smtp: unknown starttls policy %q", value)
	}
}
