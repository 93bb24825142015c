package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"

	"animecatalog/internal/metrics"
	"animecatalog/internal/testutil"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("read gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func newRouter(r *Reporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", r.Health())
	router.GET("/api/", r.Info())
	router.GET("/health", r.Liveness())
	router.GET("/db-check", r.DBCheck())
	return router
}

func serve(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

// The gauge is process-wide, so these tests run sequentially.

func TestReporter_LiveStore(t *testing.T) {
	r := NewReporter(testutil.NewDB(t), "catalog-server", "anime_db", time.Second, zerolog.Nop())
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	status := r.Check(context.Background())
	if status.Status != StatusConnected || status.Database != "anime_db" || status.Message != "" {
		t.Errorf("Check = %+v", status)
	}
	if v := gaugeValue(t, metrics.DatabaseUp); v != 1 {
		t.Errorf("database_up = %v, want 1", v)
	}

	router := newRouter(r)

	w := serve(router, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var report Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Service != "catalog-server" || report.Protocol != "HTTP" || report.Timestamp != "2025-03-01T12:00:00Z" {
		t.Errorf("unexpected report %+v", report)
	}
	if report.Database.Status != StatusConnected {
		t.Errorf("database status = %q", report.Database.Status)
	}

	w = serve(router, "/db-check")
	var check map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &check); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if check["ok"] != true || check["db"] != "connected" || check["result"] != float64(1) {
		t.Errorf("db-check = %v", check)
	}
}

func TestReporter_UnreachableStore(t *testing.T) {
	db := testutil.NewDB(t)
	r := NewReporter(db, "anime-pg-server", "anime_db", 0, zerolog.Nop())
	db.Close()

	if r.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", r.Timeout, DefaultTimeout)
	}

	status := r.Check(context.Background())
	if status.Status != StatusError || status.Message == "" || status.Database != "" {
		t.Errorf("Check = %+v", status)
	}
	if v := gaugeValue(t, metrics.DatabaseUp); v != 0 {
		t.Errorf("database_up = %v, want 0", v)
	}

	router := newRouter(r)

	w := serve(router, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health must stay 200, got %d", w.Code)
	}
	var report Report
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if report.Database.Status != StatusError || report.Database.Message == "" {
		t.Errorf("database = %+v", report.Database)
	}

	w = serve(router, "/db-check")
	var check map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &check); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusOK || check["ok"] != false || check["db"] != "error" || check["message"] == "" {
		t.Errorf("db-check = %d %v", w.Code, check)
	}

	w = serve(router, "/health")
	var live map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &live); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if live["ok"] != true || live["service"] != "anime-pg-server" {
		t.Errorf("liveness = %v", live)
	}
}

func TestReporter_Info(t *testing.T) {
	router := newRouter(NewReporter(nil, "catalog-server", "", 0, zerolog.Nop()))

	w := serve(router, "/api/")
	var info map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info["service"] != "catalog-server" || info["version"] != Version {
		t.Errorf("info = %v", info)
	}
}
