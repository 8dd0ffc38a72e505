// internal/server/router.go
// Mux kecil untuk proses non-API (worker): healthz + status run terakhir
package server

import (
	"net/http"
	"sync"
	"time"

	"shopfloor-tracker/internal/util"
)

// RunStatus adalah ringkasan run terakhir worker.
type RunStatus struct {
	LastRun    time.Time `json:"lastRun"`
	Entries    int       `json:"entries"`
	Production string    `json:"production"`
	Working    string    `json:"working"`
	Issues     int       `json:"issues"`
	Err        string    `json:"error,omitempty"`
}

// StatusBoard menyimpan RunStatus terakhir; aman dipakai dari goroutine berbeda.
type StatusBoard struct {
	mu  sync.RWMutex
	cur RunStatus
}

func (b *StatusBoard) Set(s RunStatus) {
	b.mu.Lock()
	b.cur = s
	b.mu.Unlock()
}

func (b *StatusBoard) Get() RunStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cur
}

func NewMux(board *StatusBoard) *http.ServeMux {
	mux := http.NewServeMux()

	// Healthcheck (biar gampang cek port/path)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		st := board.Get()
		code := http.StatusOK
		if st.LastRun.IsZero() || st.Err != "" {
			code = http.StatusServiceUnavailable
		}
		util.WriteJSON(w, code, st)
	})

	return mux
}
