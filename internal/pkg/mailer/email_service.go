package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPasswordChangedNotice(toEmail string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendPasswordChangedNotice sends a security notice after a successful
// password change. Callers fire it in the background; delivery failure
// never fails the request.
func (s *emailService) SendPasswordChangedNotice(toEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your password was changed")

	body := `
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password changed</h2>
			<p>The password for your NoteNest account was just changed.</p>
			<p>If this was you, no action is needed.</p>
			<p>If you did not change your password, reset it immediately and contact support.</p>
		</div>
	`

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send password notice to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}
