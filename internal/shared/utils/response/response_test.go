package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripbook/internal/shared/apperrors"

	"github.com/gin-gonic/gin"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{apperrors.ValidationError{Fields: []string{"contact"}, Msg: "missing required fields"}, http.StatusBadRequest, "missing required fields: contact"},
		{fmt.Errorf("get: %w", apperrors.NotFoundError{Resource: "booking"}), http.StatusNotFound, "booking not found"},
		{apperrors.RenderError{Stage: "launch", Err: errors.New("no chrome")}, http.StatusInternalServerError, "invoice rendering failed at launch: no chrome"},
		{apperrors.StoreError{Op: "insert", Err: errors.New("connection reset")}, http.StatusInternalServerError, "Internal server error"},
		{errors.New("unexpected"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		code, msg := StatusFor(tc.err)
		if code != tc.wantCode || msg != tc.wantMsg {
			t.Fatalf("StatusFor(%v) = %d %q, want %d %q", tc.err, code, msg, tc.wantCode, tc.wantMsg)
		}
	}
}

func TestErrorWritesMessageBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/booking/x", nil)

	Error(c, apperrors.NotFoundError{Resource: "booking", ID: "x"})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "booking not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
