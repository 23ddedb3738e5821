package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"scholardesk/internal/application/listctrl"
	"scholardesk/internal/application/listutil"
	"scholardesk/internal/application/notify"
)

// runList hydrates a fresh list controller from the request URL and fetches
// the page. Every management screen renders from the View this returns; a
// fetch failure is carried in View.Err, not raised, so the page still shows
// whatever state it has (stale rows, or the error banner on first load).
func runList[T any](r *http.Request, fetch listctrl.Fetcher[T], allowedStatuses []string) listctrl.View[T] {
	params := listutil.ParseListParams(r.URL.Query(), allowedStatuses)
	ctrl := listctrl.New(fetch, params.PerPage)
	ctrl.SetState(params.Page, params.Search, params.Status)
	_ = ctrl.Refresh(r.Context())
	return ctrl.Snapshot()
}

// listResponse is the JSON shape of a list view, for Accept: application/json.
type listResponse[T any] struct {
	Items      []T               `json:"items"`
	Pagination listutil.PageInfo `json:"pagination"`
	Search     string            `json:"search"`
	Status     string            `json:"status,omitempty"`
	Empty      string            `json:"empty,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeListJSON[T any](w http.ResponseWriter, view listctrl.View[T]) {
	status := http.StatusOK
	if view.Err != nil && len(view.Items) == 0 {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, listResponse[T]{
		Items:      view.Items,
		Pagination: view.PageInfo,
		Search:     view.Search,
		Status:     view.Status,
		Empty:      view.Empty,
		Error:      errText(view.Err),
	})
}

// mutationResponse is the JSON shape of a mutation outcome.
type mutationResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// runMutation executes a create/edit/delete, reports the outcome, and for
// HTML requests sends the browser back to the list it came from with its
// page/search/filter preserved. A failed mutation leaves the list untouched.
// PRE: mutation is non-nil; backPath is a registered GET route
// POST: outcome flashed (HTML) or encoded (JSON); response committed
func runMutation(w http.ResponseWriter, r *http.Request, mutation listctrl.Mutation, successTitle, successMsg, backPath string) {
	err := mutation(r.Context())

	if !isHTMLRequest(r) {
		if err != nil {
			writeJSON(w, http.StatusBadGateway, mutationResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, mutationResponse{Success: true})
		return
	}

	if err != nil {
		notifier(w).Notify(notify.KindError, "Something went wrong", err.Error())
	} else {
		notifier(w).Notify(notify.KindSuccess, successTitle, successMsg)
	}
	http.Redirect(w, r, backPath+listStateQuery(r), http.StatusSeeOther)
}

// listStateQuery rebuilds the page/search/filter query from the hidden form
// fields each mutation form carries, so a redirect lands back on the page
// the user was looking at.
func listStateQuery(r *http.Request) string {
	q := url.Values{}
	for _, key := range []string{"page", "limit", "search", "status"} {
		if v := r.FormValue(key); v != "" {
			q.Set(key, v)
		}
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// formInt parses an integer form field; 0 means absent or unparseable.
func formInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.FormValue(key))
	return n
}

// requirePost guards mutation routes. Returns false after responding.
func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
