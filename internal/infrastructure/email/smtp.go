package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendInvitation(to, tenantName, role, token string, expiresAt time.Time) error {
	acceptURL := fmt.Sprintf("%s/convites/aceitar?token=%s", s.config.BaseURL, token)

	subject := fmt.Sprintf("Convite para %s", tenantName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Você foi convidado para %s</h2>
			<p>Você recebeu um convite para participar de <strong>%s</strong> como <strong>%s</strong>.</p>
			<p><a href="%s">Aceitar convite</a></p>
			<p>Ou copie e cole este endereço no seu navegador:</p>
			<p>%s</p>
			<p>Este convite expira em %s.</p>
			<p>Se você não esperava este convite, ignore este email.</p>
		</body>
		</html>
	`, tenantName, tenantName, role, acceptURL, acceptURL, expiresAt.Format("02/01/2006 15:04"))

	plainBody := fmt.Sprintf(`
Você foi convidado para %s

Você recebeu um convite para participar de %s como %s.

Aceite o convite visitando:
%s

Este convite expira em %s.

Se você não esperava este convite, ignore este email.
	`, tenantName, tenantName, role, acceptURL, expiresAt.Format("02/01/2006 15:04"))

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
