package email

// Provider defines the outgoing email boundary. Notification dispatch is
// fire-and-forget from the workflows' perspective: a failed send is logged by
// the caller and never rolls back the triggering operation.
type Provider interface {
	// Send delivers a prepared email.
	Send(email *Email) error

	// SendTemplate renders the named template with data and delivers it.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Close releases provider resources.
	Close() error
}

// NoopProvider discards all mail. Used in development and tests.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error { return nil }
func (p *NoopProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	return nil
}
func (p *NoopProvider) Close() error { return nil }
