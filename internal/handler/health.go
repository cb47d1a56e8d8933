package handler

import "net/http"

// HandleHealth reports that the process is up. It does not call GitHub.
//
// HTTP: GET /healthz
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
