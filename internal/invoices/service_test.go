package invoices

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"tripbook/internal/bookings"
	"tripbook/internal/shared/apperrors"
	"tripbook/pkg/logger"
	"tripbook/pkg/storage"
)

var fakePNG = []byte("\x89PNG\r\n\x1a\nfake")

// fakeLauncher hands out engines and tracks how many are still open
type fakeLauncher struct {
	mu            sync.Mutex
	launched      int
	closed        int
	launchErr     error
	screenshotErr error
	lastHTML      string
}

func (l *fakeLauncher) Launch(context.Context) (Engine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.launchErr != nil {
		return nil, l.launchErr
	}
	l.launched++
	return &fakeEngine{l: l}, nil
}

func (l *fakeLauncher) open() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.launched - l.closed
}

type fakeEngine struct {
	l      *fakeLauncher
	closed bool
}

func (e *fakeEngine) Screenshot(_ context.Context, html string) ([]byte, error) {
	e.l.mu.Lock()
	defer e.l.mu.Unlock()
	e.l.lastHTML = html
	if e.l.screenshotErr != nil {
		return nil, e.l.screenshotErr
	}
	return fakePNG, nil
}

func (e *fakeEngine) Close() error {
	e.l.mu.Lock()
	defer e.l.mu.Unlock()
	if !e.closed {
		e.closed = true
		e.l.closed++
	}
	return nil
}

type failingStore struct{}

func (failingStore) Save(context.Context, string, []byte, string) (string, error) {
	return "", errors.New("disk full")
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func sampleRequest() InvoiceRequest {
	amount := Amount(2500)
	return InvoiceRequest{
		ContactNo:    "+91 99999 99999",
		CustomerName: "Asha Rao",
		From:         "Pune",
		To:           "Goa",
		Date:         "12/05/2025",
		Amount:       &amount,
	}
}

func newTestService(t *testing.T, launcher Launcher, store storage.Store) Service {
	t.Helper()
	if store == nil {
		s, err := storage.NewLocalStore(t.TempDir(), "http://localhost:8080", "invoices")
		if err != nil {
			t.Fatalf("store: %v", err)
		}
		store = s
	}
	return NewService(Config{ShareBaseURL: "https://wa.me/"}, launcher, store, nil, testLogger())
}

func TestRenderInvoiceProducesImageAndShareLink(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "http://localhost:8080", "invoices")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	launcher := &fakeLauncher{}
	svc := newTestService(t, launcher, store)

	res, err := svc.RenderInvoice(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.HasPrefix(res.ImageURL, "http://localhost:8080/invoices/invoice_") || !strings.HasSuffix(res.ImageURL, ".png") {
		t.Fatalf("unexpected image url %s", res.ImageURL)
	}
	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(res.ImageURL)))
	if err != nil {
		t.Fatalf("image not persisted: %v", err)
	}
	if !bytes.Equal(saved, fakePNG) {
		t.Fatal("persisted bytes differ from screenshot")
	}

	if !strings.HasPrefix(res.WhatsappURL, "https://wa.me/919999999999?text=") {
		t.Fatalf("unexpected share url %s", res.WhatsappURL)
	}
	u, _ := url.Parse(res.WhatsappURL)
	if !strings.Contains(u.Query().Get("text"), res.ImageURL) {
		t.Fatal("share text should carry the image url")
	}

	for _, want := range []string{"Asha Rao", "Pune", "Goa", "12/05/2025", "2500"} {
		if !strings.Contains(launcher.lastHTML, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
	if launcher.open() != 0 {
		t.Fatal("engine left open after successful render")
	}
}

func TestRenderInvoiceFileNamesAreUnique(t *testing.T) {
	svc := newTestService(t, &fakeLauncher{}, nil)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		res, err := svc.RenderInvoice(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if seen[res.ImageURL] {
			t.Fatalf("duplicate image url %s", res.ImageURL)
		}
		seen[res.ImageURL] = true
	}
}

func TestRenderInvoiceReleasesEngineOnScreenshotFailure(t *testing.T) {
	launcher := &fakeLauncher{screenshotErr: errors.New("page crashed")}
	svc := newTestService(t, launcher, nil)

	for i := 0; i < 10; i++ {
		_, err := svc.RenderInvoice(context.Background(), sampleRequest())
		var rErr apperrors.RenderError
		if !errors.As(err, &rErr) || rErr.Stage != StageScreenshot {
			t.Fatalf("expected screenshot RenderError, got %v", err)
		}
	}
	if launcher.launched != 10 || launcher.open() != 0 {
		t.Fatalf("engines leaked: launched=%d open=%d", launcher.launched, launcher.open())
	}
}

func TestRenderInvoiceStageErrors(t *testing.T) {
	launchFail := &fakeLauncher{launchErr: errors.New("chrome not found")}
	_, err := newTestService(t, launchFail, nil).RenderInvoice(context.Background(), sampleRequest())
	var rErr apperrors.RenderError
	if !errors.As(err, &rErr) || rErr.Stage != StageLaunch {
		t.Fatalf("expected launch RenderError, got %v", err)
	}
	if !strings.Contains(err.Error(), "chrome not found") {
		t.Fatalf("underlying message should be surfaced: %v", err)
	}

	launcher := &fakeLauncher{}
	_, err = newTestService(t, launcher, failingStore{}).RenderInvoice(context.Background(), sampleRequest())
	if !errors.As(err, &rErr) || rErr.Stage != StagePersist {
		t.Fatalf("expected persist RenderError, got %v", err)
	}
	if launcher.open() != 0 {
		t.Fatal("engine left open after persist failure")
	}

	svc := NewService(Config{TemplatePath: filepath.Join(t.TempDir(), "missing.html")}, &fakeLauncher{}, failingStore{}, nil, testLogger())
	_, err = svc.RenderInvoice(context.Background(), sampleRequest())
	if !errors.As(err, &rErr) || rErr.Stage != StageTemplate {
		t.Fatalf("expected template RenderError, got %v", err)
	}
}

func TestRenderInvoiceValidatesInput(t *testing.T) {
	launcher := &fakeLauncher{}
	svc := newTestService(t, launcher, nil)

	req := sampleRequest()
	req.CustomerName = " "
	req.Amount = nil
	_, err := svc.RenderInvoice(context.Background(), req)
	var vErr apperrors.ValidationError
	if !errors.As(err, &vErr) || len(vErr.Fields) != 2 {
		t.Fatalf("expected ValidationError for two fields, got %v", err)
	}
	if launcher.launched != 0 {
		t.Fatal("engine should not launch for invalid input")
	}
}

// stubBookings serves a single booking
type stubBookings struct {
	bookings.Service
	booking *bookings.Booking
}

func (s stubBookings) GetBooking(_ context.Context, id string) (*bookings.Booking, error) {
	if s.booking == nil || s.booking.ID != id {
		return nil, apperrors.NotFoundError{Resource: "booking", ID: id}
	}
	return s.booking, nil
}

func TestRenderReceiptPDF(t *testing.T) {
	date := "01/01/2025"
	b := &bookings.Booking{
		ID: "bk-1", Email: "a@b.com", Contact: "999", From: "Delhi", To: "Mumbai",
		TripType: bookings.TripTypeOneWay, Date: &date, PassengerCount: 2,
		PaymentAmount: 500, PaymentStatus: bookings.PaymentStatusPaid,
	}
	svc := NewService(Config{}, &fakeLauncher{}, failingStore{}, stubBookings{booking: b}, testLogger())

	pdf, filename, err := svc.RenderReceiptPDF(context.Background(), "bk-1")
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF")
	}
	if filename != "RECEIPT_bk-1.pdf" {
		t.Fatalf("unexpected filename %s", filename)
	}

	if _, _, err := svc.RenderReceiptPDF(context.Background(), "missing"); !apperrors.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRenderInvoiceLogsFailedStage(t *testing.T) {
	var buf bytes.Buffer
	svc := NewService(Config{ShareBaseURL: "https://wa.me/"}, &fakeLauncher{}, failingStore{}, nil, logger.NewWithWriter(&buf, "error"))

	if _, err := svc.RenderInvoice(context.Background(), sampleRequest()); err == nil {
		t.Fatal("expected persist failure")
	}

	out := buf.String()
	for _, want := range []string{"invoice render failed", "disk full", StagePersist} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}
}
