package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/shoppingcart/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, http.StatusBadRequest, "something went wrong")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["error"] != "something went wrong" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestText(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.Text(w, http.StatusCreated, "No items.")

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if w.Body.String() != "No items." {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestAcceptsText(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"application/json", false},
		{"text/plain", true},
		{"text/plain; charset=utf-8, */*;q=0.1", true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		if tt.accept != "" {
			r.Header.Set("Accept", tt.accept)
		}
		if got := httpx.AcceptsText(r); got != tt.want {
			t.Errorf("AcceptsText(%q) = %v, want %v", tt.accept, got, tt.want)
		}
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("event bus closed")
	if got := httpx.SafeError(err, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusInternalServerError, false); got != err.Error() {
		t.Errorf("development 500: got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusUnprocessableEntity, true); got != err.Error() {
		t.Errorf("production 422: got %q", got)
	}
}
