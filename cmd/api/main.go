// cmd/api/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"shopfloor-tracker/internal/app"
	"shopfloor-tracker/internal/config"
	"shopfloor-tracker/internal/logging"
	"shopfloor-tracker/pkg/db"
)

var BuildVersion = "dev" // diisi saat ldflags

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger belum ada; pakai default supaya error tetap terstruktur
		logging.MustNew("info", "json").Fatal("load config", zap.Error(err))
	}
	log := logging.MustNew(cfg.LogLevel, cfg.LogFormat).With(
		zap.String("app", cfg.AppName),
		zap.String("env", cfg.AppEnv),
		zap.String("version", BuildVersion),
	)
	defer log.Sync() //nolint:errcheck

	// === init DB === (gagal konek tidak fatal; /readyz akan melaporkan degraded)
	var conn *sql.DB
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	conn, err = db.NewMySQL(ctx, db.Options{
		DSN:     cfg.MySQLDSN(),
		MaxOpen: cfg.MySQL.MaxOpen,
		MaxIdle: cfg.MySQL.MaxIdle,
	}, log)
	cancel()
	if err != nil {
		log.Error("mysql not ready; continuing without DB", zap.Error(err))
		conn = nil
	} else {
		defer conn.Close()
	}

	a := app.New(cfg, log, conn)

	addr := ":" + cfg.AppPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      a.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("API running", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down server")
	sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}
