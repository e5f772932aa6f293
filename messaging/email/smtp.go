package email

import (
	"errors"
	"fmt"
	"net/smtp"
)

// SMTPConfig holds the configuration for plain SMTP sending
type SMTPConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	From     string
}

// LocalSMTPSender implements Sender over plain SMTP with STARTTLS auth
type LocalSMTPSender struct {
	Config *SMTPConfig
}

func (s *LocalSMTPSender) SendTemplateEmail(recipientEmail string, template Template) (string, error) {
	auth := smtp.PlainAuth("", s.Config.Username, s.Config.Password, s.Config.SMTPHost)
	to := []string{recipientEmail}
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", recipientEmail, template.Subject, template.Body))

	err := smtp.SendMail(fmt.Sprintf("%s:%s", s.Config.SMTPHost, s.Config.SMTPPort), auth, s.Config.From, to, msg)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return "", nil
}

func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil || config.SMTPHost == "" || config.SMTPPort == "" || config.Username == "" || config.Password == "" || config.From == "" {
		return errors.New("invalid smtp email configuration")
	}
	return nil
}
