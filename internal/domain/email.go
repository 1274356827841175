package domain

// Mailer sends a single email. Implementations decide the transport; the
// ingestion pipeline uses it to deliver batch reports.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, html, text string, err error)
}
