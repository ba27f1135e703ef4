package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAllowContentType(t *testing.T) {
	tests := []struct {
		name         string
		contentType  string
		body         string
		expectedCode int
	}{
		{"json", "application/json", `{}`, http.StatusOK},
		{"json with charset", "Application/JSON; charset=utf-8", `{}`, http.StatusOK},
		{"no body", "", "", http.StatusOK},
		{"form", "application/x-www-form-urlencoded", "a=b", http.StatusUnsupportedMediaType},
		{"missing header", "", `{}`, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

			AllowContentType("application/json")(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode != http.StatusUnsupportedMediaType {
				return
			}
			var body struct {
				OK      bool   `json:"ok"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected JSON envelope, got %q", rec.Body.String())
			}
			if body.OK || !bytes.Contains([]byte(body.Message), []byte("application/json")) {
				t.Errorf("unexpected envelope %+v", body)
			}
		})
	}
}
