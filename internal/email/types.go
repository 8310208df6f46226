package email

// Email represents a single outgoing message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData holds the values interpolated into an email template.
type TemplateData map[string]interface{}
