// Package health reports service liveness and catalog store reachability.
// A failing store never fails the request: the probe result is reported inline
// and the HTTP status stays 200.
package health

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"animecatalog/internal/metrics"
)

const (
	DefaultTimeout = 5 * time.Second

	StatusConnected = "connected"
	StatusError     = "error"

	Protocol = "HTTP"
	Version  = "1.0.0"
)

// DBStatus is the database section of a health report.
type DBStatus struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Message  string `json:"message,omitempty"`
}

type Report struct {
	Status    string   `json:"status"`
	Service   string   `json:"service"`
	Protocol  string   `json:"protocol"`
	Timestamp string   `json:"timestamp"`
	Database  DBStatus `json:"database"`
}

type Reporter struct {
	DB       *sql.DB
	Service  string
	Database string
	Timeout  time.Duration
	Logger   zerolog.Logger

	now func() time.Time
}

func NewReporter(db *sql.DB, service, database string, timeout time.Duration, logger zerolog.Logger) *Reporter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Reporter{
		DB:       db,
		Service:  service,
		Database: database,
		Timeout:  timeout,
		Logger:   logger.With().Str("component", "health").Logger(),
		now:      time.Now,
	}
}

// Probe runs SELECT 1 under the reporter timeout and records the outcome in
// the database_up gauge.
func (r *Reporter) Probe(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var one int
	if err := r.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		metrics.DatabaseUp.Set(0)
		r.Logger.Warn().Err(err).Msg("database probe failed")
		return 0, fmt.Errorf("probe database: %w", err)
	}
	metrics.DatabaseUp.Set(1)
	return one, nil
}

func (r *Reporter) Check(ctx context.Context) DBStatus {
	if _, err := r.Probe(ctx); err != nil {
		return DBStatus{Status: StatusError, Message: err.Error()}
	}
	return DBStatus{Status: StatusConnected, Database: r.Database}
}

func (r *Reporter) Report(ctx context.Context) Report {
	return Report{
		Status:    r.Service + " running",
		Service:   r.Service,
		Protocol:  Protocol,
		Timestamp: r.now().UTC().Format(time.RFC3339),
		Database:  r.Check(ctx),
	}
}

// Health serves the full report (GET /api/health).
func (r *Reporter) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, r.Report(c.Request.Context()))
	}
}

// Info serves static service information (GET /api/).
func (r *Reporter) Info() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":  r.Service,
			"protocol": Protocol,
			"version":  Version,
		})
	}
}

// Liveness never touches the store (GET /health).
func (r *Reporter) Liveness() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"service": r.Service,
			"message": r.Service + " is running",
		})
	}
}

// DBCheck serves the bare probe result (GET /db-check).
func (r *Reporter) DBCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		one, err := r.Probe(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"ok": false, "db": StatusError, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "db": StatusConnected, "result": one})
	}
}
