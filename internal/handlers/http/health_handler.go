// internal/handlers/http/health_handler.go
// Handler sederhana untuk health & readiness check

package http

import (
	"net/http"

	"shopfloor-tracker/internal/util"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// ReadyHandler melaporkan repo mana yang sudah siap; 503 jika repo produksi belum ada.
func (h *ProductionHandler) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	repos := map[string]bool{
		"production": h.Store != nil,
		"reference":  h.Refs != nil,
	}
	status := http.StatusOK
	state := "ok"
	if !repos["production"] {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	util.WriteJSON(w, status, map[string]any{"status": state, "repos": repos})
}
