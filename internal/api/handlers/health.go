package handlers

import (
	"net/http"
)

// Health is the liveness probe. It reports the service name so that a
// misrouted probe against the wrong backend is visible in the payload.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "trip-planner",
	})
}
