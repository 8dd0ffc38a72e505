// internal/app/app.go
package app

import (
	"database/sql"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"shopfloor-tracker/internal/config"
	hh "shopfloor-tracker/internal/handlers/http"
	mysqlrepo "shopfloor-tracker/internal/repositories/mysql"
	"shopfloor-tracker/internal/util"
)

// App menampung router utama
type App struct {
	Router *mux.Router
}

// New membuat instance App + registrasi semua routes.
// db boleh nil: endpoint yang butuh DB akan menjawab 503, /healthz tetap jalan.
func New(cfg *config.Config, log *zap.Logger, db *sql.DB) *App {
	r := mux.NewRouter()

	prod := &hh.ProductionHandler{
		Log:       log,
		Clock:     util.RealClock{},
		RangeDays: cfg.Dashboard.DefaultRangeDays,
	}
	if db != nil {
		prod.Store = &mysqlrepo.ProductionRepo{DB: db}
		prod.Refs = &mysqlrepo.ReferenceRepo{DB: db}
	} else {
		log.Warn("mysql not available; production endpoints will return 503")
	}

	RegisterRoutes(r, RegisterDeps{
		Production: prod,
		Login: hh.LoginHandler{
			User:     cfg.Auth.AdminUser,
			PassHash: cfg.Auth.AdminPassHash,
			Secret:   cfg.Auth.JWTSecret,
			TTL:      cfg.Auth.TokenTTL,
		},
		JWTSecret: cfg.Auth.JWTSecret,
		APIKey:    cfg.Auth.APIKey,
		Log:       log,
	})

	return &App{Router: r}
}
