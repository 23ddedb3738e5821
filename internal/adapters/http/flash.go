package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"scholardesk/internal/application/notify"
)

const flashCookieName = "scholardesk_flash"

// Flash is one queued notification, shown on the next rendered page.
type Flash struct {
	Kind    string `json:"kind"` // notify.KindSuccess, KindError, KindInfo
	Title   string `json:"title"`
	Message string `json:"message"`
}

// setFlash queues a notification in a short-lived cookie.
// PRE: kind is a notify kind constant
// POST: next renderTemplate on this browser shows the flash once
func setFlash(w http.ResponseWriter, kind, title, message string) {
	payload, err := json.Marshal(Flash{Kind: kind, Title: title, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// popFlash reads and clears the queued notification, if any.
func popFlash(w http.ResponseWriter, r *http.Request) (Flash, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookieName, Value: "", Path: "/", MaxAge: -1})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Flash{}, false
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return Flash{}, false
	}
	return f, true
}

// flashNotifier adapts setFlash to the notify.Notifier capability.
type flashNotifier struct {
	w http.ResponseWriter
}

// Notify implements notify.Notifier.
func (n flashNotifier) Notify(kind, title, message string) {
	setFlash(n.w, kind, title, message)
}

// notifier returns the Notifier for this response.
func notifier(w http.ResponseWriter) notify.Notifier {
	return flashNotifier{w: w}
}
