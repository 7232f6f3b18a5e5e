package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Body.String()
	if generated == "" || rec.Header().Get(RequestIDHeader) != generated {
		t.Fatalf("expected generated id echoed, body=%q header=%q", generated, rec.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() != "abc-123" {
		t.Fatalf("expected inbound id to be reused, got %q", rec.Body.String())
	}
}

func TestRealIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "cloudflare", headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, want: "203.0.113.7"},
		{name: "forwarded left-most", headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, want: "198.51.100.1"},
		{name: "x-real-ip", headers: map[string]string{"X-Real-IP": "198.51.100.9"}, want: "198.51.100.9"},
		{name: "garbage falls back", headers: map[string]string{"X-Forwarded-For": "nope"}, want: "192.0.2.1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:4000"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Body.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, rec.Body.String())
			}
		})
	}
}

func TestRateLimit_NilRedisIsPassthrough(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RateLimit(nil, 1, time.Minute, KeyByIP(), nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "" {
			t.Fatal("expected no rate limit headers without redis")
		}
	}
}

func TestKeyFuncs(t *testing.T) {
	t.Parallel()

	r := gin.New()
	var ipKey, pathKey string
	r.GET("/employees/:id", func(c *gin.Context) {
		c.Set("real_ip", "198.51.100.4")
		ipKey = KeyByIP()(c)
		pathKey = KeyByIPAndPath()(c)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/employees/5", nil))

	if ipKey != "rl:ip:198.51.100.4" {
		t.Errorf("unexpected ip key %s", ipKey)
	}
	if pathKey != "rl:path:/employees/:id:ip:198.51.100.4" {
		t.Errorf("unexpected path key %s", pathKey)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"127.0.0.1":   true,
		"10.1.2.3":    true,
		"192.168.0.5": true,
		"8.8.8.8":     false,
		"not-an-ip":   false,
	}
	allow := AllowPrivateIP()

	for ip, want := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Set("real_ip", ip)
		if got := allow(c); got != want {
			t.Errorf("%s: expected %v, got %v", ip, want, got)
		}
	}
}

func TestToInt(t *testing.T) {
	t.Parallel()

	if toInt(int64(3)) != 3 || toInt(4) != 4 || toInt("5") != 5 || toInt(nil) != 0 {
		t.Fatal("unexpected toInt conversion")
	}
}
