package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/mzhdanova/autoservice/config"
	"github.com/mzhdanova/autoservice/internal/domain"
)

// Sender delivers booking confirmations over SMTP.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) SendBookingConfirmation(_ context.Context, c domain.BookingConfirmation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", c.To)
	m.SetHeader("Subject", "Booking Confirmation")
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYour booking for %s on %s at %s has been confirmed.\n\nThank you for choosing our service!",
		c.ClientName, c.ServiceName, c.Date, c.Time,
	))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	return d.DialAndSend(m)
}
