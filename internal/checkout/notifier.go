package checkout

import "log"

// NoticeKind classifies user-facing notifications.

type NoticeKind string

const (
	NoticeError NoticeKind = "error"
	NoticeInfo  NoticeKind = "info"
)

// Notifier is the injected toast/notification capability. Tests substitute an
// in-memory collector; the storefront shell plugs in its real toast system.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// Navigator abstracts page navigation so the router can be exercised without
// a browser shell.
type Navigator interface {
	Navigate(path string)
}

// Navigation surface of the workflow.
const (
	PathOrderConfirmation = "/order-confirmation"
	PathPaymentCancel     = "/payment/cancel"
)

// LogNotifier reports notices to the server log. Used as the default when the
// shell does not inject a toast implementation.

type LogNotifier struct{}

func (LogNotifier) Notify(kind NoticeKind, message string) {
	log.Printf("[checkout][notice] kind=%s message=%q", kind, message)
}
