package mail

import (
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Sender interface {
	Send(to, subject, textBody string) error
}

type sender struct {
	dialer *gomail.Dialer
	cfg    Config
	log    *zap.SugaredLogger
}

// NewSender builds an SMTP sender from the config. gomail wraps the
// connection in implicit TLS when the port is 465 and upgrades via
// STARTTLS on other ports.
func NewSender(cfg Config, log *zap.SugaredLogger) Sender {
	return &sender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		cfg:    cfg,
		log:    log,
	}
}

// Send delivers a text body (with an HTML alternative) to a single
// recipient. Configuration problems are reported without dialing.
func (s *sender) Send(to, subject, textBody string) error {
	if missing := s.cfg.Missing(); len(missing) > 0 {
		return fmt.Errorf("missing SMTP configuration: %s", strings.Join(missing, ", "))
	}
	if w := s.cfg.SenderIdentityWarning(); w != "" {
		return fmt.Errorf("refusing to send: %s", w)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody(textBody))

	s.log.Infow("sending mail", "host", s.cfg.Host, "port", s.cfg.Port, "subject", subject)
	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func htmlBody(text string) string {
	escaped := strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
	return "<html><body><p>" + escaped + "</p></body></html>"
}
