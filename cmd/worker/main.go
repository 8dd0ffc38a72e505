// cmd/worker/main.go
// Worker periodik: hitung ringkasan produksi hari ini & laporkan masalah kualitas data
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"shopfloor-tracker/internal/config"
	"shopfloor-tracker/internal/logging"
	mysqlrepo "shopfloor-tracker/internal/repositories/mysql"
	"shopfloor-tracker/internal/server"
	"shopfloor-tracker/internal/services"
	"shopfloor-tracker/internal/util"
	"shopfloor-tracker/pkg/db"
)

type worker struct {
	repo  *mysqlrepo.ProductionRepo
	log   *zap.Logger
	clock util.Clock
	board *server.StatusBoard
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.MustNew("info", "json").Fatal("load config", zap.Error(err))
	}
	log := logging.MustNew(cfg.LogLevel, cfg.LogFormat).Named("worker")
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewMySQL(ctx, db.Options{
		DSN:     cfg.MySQLDSN(),
		MaxOpen: 2,
		MaxIdle: 1,
	}, log)
	if err != nil {
		log.Fatal("mysql not ready", zap.Error(err))
	}
	defer conn.Close()

	w := &worker{
		repo:  &mysqlrepo.ProductionRepo{DB: conn},
		log:   log,
		clock: util.RealClock{},
		board: &server.StatusBoard{},
	}

	if addr := cfg.Dashboard.WorkerAddr; addr != "" {
		srv := &http.Server{Addr: addr, Handler: server.NewMux(w.board), ReadTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status server", zap.Error(err))
			}
		}()
		defer srv.Close()
	}

	interval := cfg.Dashboard.WorkerInterval
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	log.Info("worker started", zap.Duration("interval", interval))

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		w.runOnce(ctx)
		select {
		case <-ctx.Done():
			log.Info("worker stopped")
			return
		case <-t.C:
		}
	}
}

// runOnce memuat entri hari ini lalu mencatat ringkasan & isu data.
func (w *worker) runOnce(ctx context.Context) {
	now := w.clock.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := day.AddDate(0, 0, 1)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := w.repo.ListEntries(ctx, mysqlrepo.EntryFilter{Start: &day, End: &next, Limit: 5000})
	if err != nil {
		w.log.Error("list entries", zap.Error(err))
		w.board.Set(server.RunStatus{LastRun: now, Err: err.Error()})
		return
	}
	recs := mysqlrepo.Records(rows)
	sum := services.BuildDashboard(recs, services.Filter{})

	w.log.Info("daily production summary",
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("entries", sum.TotalProducts),
		zap.String("production", sum.ProductionTotal),
		zap.String("working", sum.WorkingTotal),
		zap.String("idle", sum.IdleTotal),
		zap.Float64("efficiency", sum.Efficiency),
	)
	for _, m := range sum.Machines {
		w.log.Debug("machine rollup",
			zap.String("machine", m.Machine),
			zap.String("production", m.ProductionHrs),
			zap.String("working", m.WorkingHrs),
			zap.Int("qty", m.Qty),
		)
	}
	for _, o := range sum.IdleOutliers {
		w.log.Warn("idle outlier", zap.Any("outlier", o))
	}
	issues := services.Reconcile(recs)
	w.board.Set(server.RunStatus{
		LastRun:    now,
		Entries:    sum.TotalProducts,
		Production: sum.ProductionTotal,
		Working:    sum.WorkingTotal,
		Issues:     len(issues),
	})
	for _, is := range issues {
		w.log.Warn("data issue",
			zap.String("id", is.ID),
			zap.String("field", is.Field),
			zap.String("value", is.Value),
			zap.String("reason", is.Reason),
		)
	}
}
