// pkg/db/mysql.go
// Helper koneksi MySQL (menggunakan database/sql)

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

type Options struct {
	DSN        string
	MaxOpen    int
	MaxIdle    int
	PingTries  int
	PingWait   time.Duration
	ConnMaxAge time.Duration
}

// NewMySQL membuka pool dan retry ping agar tahan saat container DB baru up.
func NewMySQL(ctx context.Context, opt Options, log *zap.Logger) (*sql.DB, error) {
	if opt.DSN == "" {
		return nil, fmt.Errorf("mysql dsn is empty")
	}
	if opt.PingTries <= 0 {
		opt.PingTries = 20
	}
	if opt.PingWait <= 0 {
		opt.PingWait = 3 * time.Second
	}
	if opt.ConnMaxAge <= 0 {
		opt.ConnMaxAge = 30 * time.Minute
	}

	db, err := sql.Open("mysql", opt.DSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if opt.MaxOpen > 0 {
		db.SetMaxOpenConns(opt.MaxOpen)
	}
	if opt.MaxIdle > 0 {
		db.SetMaxIdleConns(opt.MaxIdle)
	}
	db.SetConnMaxLifetime(opt.ConnMaxAge)

	var pingErr error
	for i := 0; i < opt.PingTries; i++ {
		pingErr = db.PingContext(ctx)
		if pingErr == nil {
			return db, nil
		}
		log.Warn("ping mysql failed", zap.Int("try", i+1), zap.Error(pingErr))
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(opt.PingWait):
		}
	}
	db.Close()
	return nil, fmt.Errorf("mysql not ready after %d tries: %w", opt.PingTries, pingErr)
}
