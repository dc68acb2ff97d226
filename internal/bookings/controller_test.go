package bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *memoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemoryRepository()
	r := gin.New()
	SetupBookingRoutes(r, NewController(NewService(repo, testLogger())))
	return r, repo
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOnewayBookingScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/book",
		`{"email":"a@b.com","contact":"9999999999","from":"Delhi","to":"Mumbai","date":"01/01/2025","passenger":2,"tripType":"oneway"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Message string                 `json:"message"`
		Booking map[string]interface{} `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message == "" {
		t.Fatal("expected a success message")
	}
	booking := body.Booking
	if booking["tripType"] != "oneway" {
		t.Fatalf("unexpected tripType %v", booking["tripType"])
	}
	startDate, present := booking["startDate"]
	if !present || startDate != nil {
		t.Fatalf("startDate should be present and null, got %v (present=%v)", startDate, present)
	}
	if booking["paymentStatus"] != "pending" || booking["_id"] == "" {
		t.Fatalf("unexpected booking %v", booking)
	}
}

func TestCreateMissingContactReturns400(t *testing.T) {
	r, repo := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/book",
		`{"email":"a@b.com","from":"Delhi","to":"Mumbai","passenger":2,"tripType":"oneway"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "contact") {
		t.Fatalf("error should name the missing field: %s", w.Body.String())
	}
	if len(repo.records) != 0 {
		t.Fatal("no record should be stored")
	}
}

func TestMalformedBodyReturns400(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(r, http.MethodPost, "/book", `{"email":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListReturnsArray(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(r, http.MethodGet, "/bookings", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
	}
}

func TestPaymentUpdateAndInvoiceFetch(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/book",
		`{"email":"a@b.com","contact":"1","from":"Pune","to":"Goa","startDate":"01/01/2025","endDate":"03/01/2025","passenger":1,"tripType":"roundtrip"}`)
	var created struct {
		Booking Booking `json:"booking"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(r, http.MethodPut, "/booking/payment/"+created.Booking.ID, `{"paymentAmount":500,"paymentStatus":"paid"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("payment update: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/bookings/invoice/"+created.Booking.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("invoice fetch: expected 200, got %d", w.Code)
	}
	var fetched InvoiceBookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.Booking.PaymentAmount != 500 || fetched.Booking.PaymentStatus != PaymentStatusPaid {
		t.Fatalf("payment not persisted: %+v", fetched.Booking)
	}
}

func TestUnknownIDsReturn404(t *testing.T) {
	r, _ := newTestRouter(t)

	checks := []struct{ method, path, body string }{
		{http.MethodDelete, "/booking/nope", ""},
		{http.MethodPut, "/booking/nope", `{"from":"Goa"}`},
		{http.MethodPut, "/booking/payment/nope", `{"paymentAmount":1,"paymentStatus":"paid"}`},
		{http.MethodGet, "/bookings/invoice/nope", ""},
	}
	for _, c := range checks {
		w := doJSON(r, c.method, c.path, c.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d", c.method, c.path, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"message"`) {
			t.Fatalf("%s %s: expected message body, got %s", c.method, c.path, w.Body.String())
		}
	}
}
