// Package database opens the PostgreSQL pool and applies schema migrations.
package database

import (
	"context"
	"crypto/x509"
	"fmt"
	"net/url"
	"os"
	"time"

	"edugenie/internal/config"
	"edugenie/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const pingTimeout = 10 * time.Second

// NewPostgresDB opens a pooled connection that verifies the server against the
// configured CA bundle, and pings it once.
func NewPostgresDB(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	if _, err := loadRootCAs(cfg.CAFile); err != nil {
		return nil, err
	}
	connStr, err := connString(cfg.URL, cfg.CAFile)
	if err != nil {
		return nil, err
	}
	connCfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	db := sqlx.NewDb(stdlib.OpenDB(*connCfg), "pgx")
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Get().Info("Connected to PostgreSQL",
		zap.String("host", connCfg.Host),
		zap.String("database", connCfg.Database))
	return db, nil
}

// connString pins sslrootcert to caFile and refuses modes that skip certificate checks.
// An unset sslmode becomes verify-full.
func connString(rawURL, caFile string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("database URL must use the postgres:// scheme, got %q", u.Scheme)
	}

	q := u.Query()
	switch mode := q.Get("sslmode"); mode {
	case "":
		q.Set("sslmode", "verify-full")
	case "disable", "allow", "prefer":
		return "", fmt.Errorf("sslmode=%s does not verify the server certificate", mode)
	}
	q.Set("sslrootcert", caFile)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// loadRootCAs reads a PEM bundle and fails if it holds no certificates.
func loadRootCAs(path string) (*x509.CertPool, error) {
	if path == "" {
		return nil, fmt.Errorf("database CA file is not configured")
	}
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("database CA file %s contains no PEM certificates", path)
	}
	return pool, nil
}
