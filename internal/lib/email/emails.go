package email

import "strconv"

// SendReminderEmail sends a habit reminder to a group member with open
// tasks.
//
// It builds template data and calls SendEmail using the "reminder"
// template.
func (c *Client) SendReminderEmail(to, name string, openTasks int) error {
	// Data keys must match what the HTML template expects.
	data := map[string]string{
		"MemberName": name,
		"OpenTasks":  strconv.Itoa(openTasks),
	}

	return c.SendEmail(
		to,
		"Your group is counting on you",
		TemplateReminder,
		data,
	)
}
