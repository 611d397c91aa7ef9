package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateReminder corresponds to templates/emails/reminder.html
	TemplateReminder Template = "reminder"
)
