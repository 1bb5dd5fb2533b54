package gomail

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/neuralforge-ai/consultation-api/pkg/config"
)

type Client struct {
	cfg    config.Config
	dialer *gomail.Dialer
}

func New(cfg config.Config) *Client {
	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.SMTPServer,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Send delivers one message in a single dial/auth/send/close cycle.
// When both bodies are given the text part is sent with an HTML
// alternative; otherwise the message carries the one body it has.
func (c *Client) Send(subject, to, textBody, htmlBody string) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.SenderEmail, c.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)

	switch {
	case textBody != "" && htmlBody != "":
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		msg.SetBody("text/html", htmlBody)
	default:
		msg.SetBody("text/plain", textBody)
	}

	err := c.dialer.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
