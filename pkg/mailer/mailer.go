// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/campusmart/campusmart/pkg/config"
)

// Mailer sends plain-text notification mail through the configured SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer from SMTP config. No connection is made until Send.
func New(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// SendListingPosted mails the seller a confirmation that their listing is live.
func (m *Mailer) SendListingPosted(toEmail, sellerName, title string, price int64) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Your listing is live on Campus Mart")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour listing \"%s\" (₹%d) is now visible to everyone on your campus.\n\n— Campus Mart",
		sellerName, title, price,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: send listing posted: %w", err)
	}
	return nil
}

// SendListingSold mails the seller a confirmation that the listing was marked sold.
func (m *Mailer) SendListingSold(toEmail, sellerName, title string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Listing marked as sold")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour listing \"%s\" is now marked as sold and hidden from buyers' contact options.\n\n— Campus Mart",
		sellerName, title,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: send listing sold: %w", err)
	}
	return nil
}
