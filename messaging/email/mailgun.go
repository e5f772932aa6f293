package email

import (
	"context"
	"errors"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunConfig holds the configuration for Mailgun
type MailgunConfig struct {
	Key    string
	Domain string
	From   string
}

// MailgunSender implements Sender for Mailgun
type MailgunSender struct {
	Config *MailgunConfig
}

func (s *MailgunSender) SendTemplateEmail(recipientEmail string, template Template) (string, error) {
	mg := mailgun.NewMailgun(s.Config.Domain, s.Config.Key)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	message := mg.NewMessage(s.Config.From, template.Subject, template.Body)
	if err := message.AddRecipient(recipientEmail); err != nil {
		return "", err
	}

	_, id, err := mg.Send(ctx, message)
	if err != nil {
		return "", err
	}
	return id, nil
}

func validateMailgunConfig(config *MailgunConfig) error {
	if config == nil || config.Key == "" || config.Domain == "" || config.From == "" {
		return errors.New("invalid Mailgun configuration")
	}
	return nil
}
