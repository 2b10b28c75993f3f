package libs

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendWelcome(toEmail, displayName string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, pass, from string) (*SMTPMailer, error) {
	if host == "" || user == "" || pass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}
	if port <= 0 {
		port = 587
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}, nil
}

func (s *SMTPMailer) SendWelcome(toEmail, displayName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Witamy w Lutkowo")

	name := displayName
	if name == "" {
		name = toEmail
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #8b5cf6; text-align: center; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Lutkowo</div>
        <h2 style="color: #333;">Welcome, %s!</h2>
        <p>Your account is ready. Your cart follows you to every device you sign in on.</p>
        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>
	`, html.EscapeString(name))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NopMailer is used when SMTP is not configured.
type NopMailer struct{}

func (NopMailer) SendWelcome(string, string) error { return nil }
