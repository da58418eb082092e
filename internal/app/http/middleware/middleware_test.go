package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
})

func mint(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAdminAuth(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	past := time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name   string
		header map[string]string
		want   int
	}{
		{"no credentials", nil, http.StatusUnauthorized},
		{"internal token", map[string]string{"X-Internal-Token": "tok"}, http.StatusOK},
		{"wrong internal token", map[string]string{"X-Internal-Token": "nope"}, http.StatusUnauthorized},
		{"admin bearer", map[string]string{
			"Authorization": "Bearer " + mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "a1", "role": "admin", "exp": future}),
		}, http.StatusOK},
		{"lowercase scheme", map[string]string{
			"Authorization": "bearer " + mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"role": "admin"}),
		}, http.StatusOK},
		{"staff bearer", map[string]string{
			"Authorization": "Bearer " + mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"role": "staff", "exp": future}),
		}, http.StatusForbidden},
		{"expired", map[string]string{
			"Authorization": "Bearer " + mint(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"role": "admin", "exp": past}),
		}, http.StatusUnauthorized},
		{"wrong secret", map[string]string{
			"Authorization": "Bearer " + mint(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"role": "admin"}),
		}, http.StatusUnauthorized},
		{"other algorithm", map[string]string{
			"Authorization": "Bearer " + mint(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"role": "admin"}),
		}, http.StatusUnauthorized},
		{"garbage", map[string]string{"Authorization": "Bearer not.a.jwt"}, http.StatusUnauthorized},
	}

	h := AdminAuth(testSecret, "tok")(okHandler)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/quotes/q1", nil)
			for k, v := range tt.header {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestAdminAuthWithoutInternalToken(t *testing.T) {
	h := AdminAuth(testSecret, "")(okHandler)
	r := httptest.NewRequest(http.MethodGet, "/v1/quotes/q1", nil)
	r.Header.Set("X-Internal-Token", "")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 when no internal token is configured", w.Code)
	}
}

func TestCORS(t *testing.T) {
	h := CORS("*")(okHandler)

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("Origin", "https://admin.eaglesevents.co.za")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.eaglesevents.co.za" {
		t.Errorf("allow origin = %q, want the request origin", got)
	}
	if w.Body.String() != "ok" {
		t.Errorf("body = %q", w.Body.String())
	}

	r = httptest.NewRequest(http.MethodOptions, "/v1/quotes", nil)
	r.Header.Set("Origin", "https://admin.eaglesevents.co.za")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Errorf("preflight = %d %q, want 204 with no body", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	CORS("https://www.eaglesevents.co.za")(okHandler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://www.eaglesevents.co.za" {
		t.Errorf("allow origin = %q, want the configured origin", got)
	}
}

func TestLogging(t *testing.T) {
	h := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/quotes/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("no request id assigned")
	}

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("request id = %q, want the caller's", got)
	}
}
