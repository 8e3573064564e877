// Package workflow holds the session state machines behind the card
// registry, statement entry, and settings screens. Sessions are pure of
// any UI: they talk to the API client and report through the Presenter
// boundary, so a console adapter or a test fake can drive them equally.
package workflow

// Severity classifies a notification.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Presenter is the render and notification boundary. Implementations
// own how views, toasts, and field errors are drawn.
type Presenter interface {
	RenderView(name string, data any)
	ShowNotification(message string, severity Severity)
	ShowFieldError(field, message string)
	ClearFieldErrors()
}
