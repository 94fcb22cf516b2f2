package templates

const (
	checkAccent    = "linear-gradient(135deg, #2563eb 0%, #1e40af 100%)"
	reminderAccent = "linear-gradient(135deg, #f59e0b 0%, #b45309 100%)"
)

// RenderCheckEmail generates the HTML body for a shared vehicle check. The
// summary text is rendered as is, one line per row.
func RenderCheckEmail(subject, summary string) string {
	return renderEmail(subject, summary, checkAccent)
}

// RenderReminderEmail generates the HTML body for the inspection and service
// due reminder
func RenderReminderEmail(subject, body string) string {
	return renderEmail(subject, body, reminderAccent)
}
