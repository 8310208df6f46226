package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	TemplatesDir string
}

func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config    SMTPConfig
	templates *TemplateManager
	dialer    *gomail.Dialer
}

// NewSMTPProvider builds a Provider backed by an SMTP server.
func NewSMTPProvider(config SMTPConfig) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager(config.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPProvider{
		config:    config,
		templates: tm,
		dialer:    gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

// Send delivers a prepared email.
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
		if email.HTMLBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/html", email.HTMLBody)
	}

	return p.dialer.DialAndSend(m)
}

// SendTemplate renders the named template and delivers the result.
func (p *SMTPProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	htmlBody, err := p.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Close() error { return nil }
