package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/internal/bookings"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/database"
	"tripbook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type emptyRepository struct{}

func (emptyRepository) Insert(context.Context, *bookings.Booking) error { return nil }
func (emptyRepository) FindByID(context.Context, string) (*bookings.Booking, error) {
	return nil, bookings.ErrNotFound
}
func (emptyRepository) FindAll(context.Context) ([]bookings.Booking, error) {
	return []bookings.Booking{}, nil
}
func (emptyRepository) Replace(context.Context, *bookings.Booking) error { return bookings.ErrNotFound }
func (emptyRepository) DeleteByID(context.Context, string) (*bookings.Booking, error) {
	return nil, bookings.ErrNotFound
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.Storage.Driver = "local"
	cfg.Invoice.OutputDir = t.TempDir()

	r := NewRouter(cfg, &database.DB{}, nil, logger.NewWithWriter(io.Discard, "error"))
	r.repo = emptyRepository{}

	engine := gin.New()
	if err := r.SetupRoutes(engine); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	w := get(newTestEngine(t), "/does-not-exist")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "route not found" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthAndPing(t *testing.T) {
	engine := newTestEngine(t)

	if w := get(engine, "/health"); w.Code != http.StatusOK {
		t.Fatalf("expected healthy with no connections, got %d", w.Code)
	}
	if w := get(engine, "/ping"); w.Code != http.StatusOK {
		t.Fatalf("expected pong, got %d", w.Code)
	}
}

func TestBookingRoutesAreMounted(t *testing.T) {
	engine := newTestEngine(t)

	w := get(engine, "/bookings")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}

	if w := get(engine, "/bookings/invoice/missing"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown booking, got %d", w.Code)
	}
}

func TestSetupFailsWithoutBookingStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Load()
	cfg.Invoice.OutputDir = t.TempDir()

	r := NewRouter(cfg, &database.DB{}, nil, logger.NewWithWriter(io.Discard, "error"))
	if err := r.SetupRoutes(gin.New()); err == nil {
		t.Fatal("expected an error when no store is connected")
	}
}
