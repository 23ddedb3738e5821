// Package notify defines the user-feedback capabilities the screens depend
// on. Any presentation (toast stack, blocking dialog, flash banner)
// satisfies these; the web layer ships a cookie-flash implementation.
package notify

// Notification kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
)

// Notifier surfaces the outcome of a mutation to the user. Implementations
// must never drop a message silently.
type Notifier interface {
	Notify(kind, title, message string)
}

// Confirmer asks the user to confirm a destructive action before it runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Func adapts a function to the Notifier interface.
type Func func(kind, title, message string)

// Notify implements Notifier.
func (f Func) Notify(kind, title, message string) { f(kind, title, message) }
