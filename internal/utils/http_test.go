package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/ergo/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := models.Message{Message: "Not Found"}

	n, err := WriteJSON(w, data, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"message":"Not Found"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantAnyEr bool
		wantName  string
	}{
		{name: "valid body", body: `{"tagName":"work","tagColor":"#fff"}`, wantName: "work"},
		{name: "empty body", body: "", wantErr: ErrEmptyBody},
		{name: "malformed json", body: `{"tagName":`, wantAnyEr: true},
		{name: "unknown field", body: `{"tagName":"a","tagColor":"b","extra":1}`, wantAnyEr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var tag models.Tag
			err := ReadJSON(r, &tag)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.wantAnyEr:
				if err == nil {
					t.Fatal("expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tag.TagName != tt.wantName {
					t.Errorf("expected tagName %q, got %q", tt.wantName, tag.TagName)
				}
			}
		})
	}
}

func TestWriteJSON_RoundTripThroughReadJSON(t *testing.T) {
	w := httptest.NewRecorder()
	_, err := WriteJSON(w, models.LoginRequest{Email: "a@b.c", Password: "secret"}, http.StatusOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(w.Body.String()))
	var got models.LoginRequest
	if err := ReadJSON(r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := json.Marshal(got)
	if string(raw) != w.Body.String() {
		t.Errorf("expected %s, got %s", w.Body.String(), raw)
	}
}
