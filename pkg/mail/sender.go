package mail

import (
	"errors"
	"io"

	"gopkg.in/mail.v2"
)

var ErrNoRecipients = errors.New("mail has no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Config struct {
	Email    string
	Password string
	Host     string
	Port     int
}

type sender struct {
	email  string
	dialer Dialer
}

// SendMail sends a multipart/alternative message; the HTML part is preferred by clients that support it.
func (s *sender) SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}
	m := mail.NewMessage()
	m.SetHeader("From", s.email)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	switch {
	case textBody != "" && htmlBody != "":
		m.SetBody("text/plain", textBody)
		m.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		m.SetBody("text/html", htmlBody)
	default:
		m.SetBody("text/plain", textBody)
	}

	for _, attachment := range attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}

	return s.dialer.DialAndSend(m)
}

// Enabled reports whether cfg carries enough settings to reach an SMTP server.
func (cfg Config) Enabled() bool {
	return cfg.Email != "" && cfg.Host != "" && cfg.Port > 0
}

func NewMailSender(cfg Config) Sender {
	return &sender{
		email:  cfg.Email,
		dialer: mail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password),
	}
}
