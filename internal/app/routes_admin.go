// internal/app/routes_admin.go
package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	hh "shopfloor-tracker/internal/handlers/http"
	"shopfloor-tracker/internal/middleware"
)

// adminRouter: sub-router chi untuk /admin/*, dipasang di bawah mux via StripPrefix.
func adminRouter(prod *hh.ProductionHandler, secret string) http.Handler {
	cr := chi.NewRouter()
	cr.Use(middleware.AdminJWTAuth(secret), middleware.RequireRole("admin"))

	cr.Route("/entries", func(er chi.Router) {
		er.Get("/{id}", prod.EntryByID)
	})
	cr.Get("/reconcile", prod.Reconcile)
	return cr
}
