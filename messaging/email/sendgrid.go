package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridConfig holds the configuration for SendGrid
type SendGridConfig struct {
	Key  string
	From string
}

// SendGridSender implements Sender for SendGrid
type SendGridSender struct {
	Config *SendGridConfig
}

func (s *SendGridSender) SendTemplateEmail(recipientEmail string, template Template) (string, error) {
	from := mail.NewEmail("", s.Config.From)
	to := mail.NewEmail("", recipientEmail)
	message := mail.NewSingleEmail(from, template.Subject, to, template.Body, "")

	client := sendgrid.NewSendClient(s.Config.Key)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return "", err
	}

	if response.StatusCode != 202 {
		return "", fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

func validateSendGridConfig(config *SendGridConfig) error {
	if config == nil || config.Key == "" || config.From == "" {
		return errors.New("invalid SendGrid configuration")
	}
	return nil
}
