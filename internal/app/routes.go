// internal/app/routes.go
package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	hh "shopfloor-tracker/internal/handlers/http"
	"shopfloor-tracker/internal/middleware"
)

type RegisterDeps struct {
	Production *hh.ProductionHandler
	Login      hh.LoginHandler
	JWTSecret  string
	APIKey     string // kosong = /api tidak dicek
	Log        *zap.Logger
}

// RegisterRoutes menambahkan semua route HTTP ke router mux.
func RegisterRoutes(r *mux.Router, deps RegisterDeps) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	prod := deps.Production
	if prod == nil {
		prod = &hh.ProductionHandler{Log: log}
	}

	r.Use(middleware.RequestID, middleware.AccessLog(log), middleware.CORS)

	// --- no prefix ---
	r.HandleFunc("/healthz", hh.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/readyz", prod.ReadyHandler).Methods(http.MethodGet)
	r.HandleFunc("/metrics", hh.MetricsHandler).Methods(http.MethodGet)
	r.Handle("/login", deps.Login).Methods(http.MethodPost)

	// --- /api prefix ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.APIKey(deps.APIKey))
	api.HandleFunc("/entries", prod.Entries).Methods(http.MethodGet)
	api.HandleFunc("/entries/export", prod.Export).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", prod.Dashboard).Methods(http.MethodGet)
	api.HandleFunc("/customers", prod.Customers).Methods(http.MethodGet)
	api.HandleFunc("/calc/rollup", hh.CalcRollupHandler).Methods(http.MethodPost)

	// Admin (JWT + role admin), dilayani chi
	r.PathPrefix("/admin/").Handler(http.StripPrefix("/admin", adminRouter(prod, deps.JWTSecret)))

	// Preflight catch-all; respons 204 ditulis oleh middleware CORS
	r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
