package services

import (
	"crypto/tls"

	"github.com/Nyagwenchar/bmsafaris/config"
	"gopkg.in/gomail.v2"
)

type Message struct {
	From     string
	To       string
	Subject  string
	Body     string
	HTMLBody string
}

// Mailer is the outbound email transport. Tests substitute a recording fake.
type Mailer interface {
	Send(msg *Message) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if !cfg.SMTPUseTLS {
		// local debug relays run without a certificate
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &SMTPMailer{dialer: d}
}

func (m *SMTPMailer) Send(msg *Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", msg.From)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	if msg.HTMLBody != "" {
		gm.AddAlternative("text/html", msg.HTMLBody)
	}
	return m.dialer.DialAndSend(gm)
}
