package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"leadscout/internal/config"
	"leadscout/internal/digest"
)

// Mailer delivers the rendered digest over SMTP. This is the primary
// delivery channel; the run's leads are lost if it fails, which the next
// scheduled run makes up for.
type Mailer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendDigest renders the digest and mails it to the configured recipient.
func (m *Mailer) SendDigest(d digest.Digest) error {
	html, err := digest.Render(d)
	if err != nil {
		return fmt.Errorf("rendering digest: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPEmail)
	msg.SetHeader("To", m.cfg.RecipientEmail)
	msg.SetHeader("Subject", d.Subject())
	msg.SetBody("text/html", html)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPEmail, m.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending digest email: %w", err)
	}

	log.Printf("📧 Email sent to %s with %d leads (total quality score: %d)",
		m.cfg.RecipientEmail, len(d.Leads), d.TotalScore())
	return nil
}
