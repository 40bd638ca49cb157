package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// overlayOrigins mirrors the configured default plus a packaged overlay origin
var overlayOrigins = []string{"http://localhost:*", "app://poetis-overlay"}

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{"exact match", "app://poetis-overlay", overlayOrigins, true},
		{"wildcard port match", "http://localhost:5173", overlayOrigins, true},
		{"wildcard matches bare host", "http://localhost:", overlayOrigins, true},
		{"scheme must match", "https://localhost:5173", overlayOrigins, false},
		{"other host", "http://pathofexile.com", overlayOrigins, false},
		{"prefix of exact entry is not enough", "app://poetis", overlayOrigins, false},
		{"empty origin never matches a wildcard", "", []string{"*"}, false},
		{"empty origin never matches", "", overlayOrigins, false},
		{"empty allowed list", "http://localhost:5173", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllowedOrigin(tt.origin, tt.allowedOrigins)
			if got != tt.want {
				t.Errorf("isAllowedOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newCORSRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORSMiddleware(allowedOrigins))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.POST("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		origin     string
		method     string
		wantStatus int
		wantCORS   bool
	}{
		{"overlay origin GET", "app://poetis-overlay", "GET", http.StatusOK, true},
		{"local dev server POST", "http://localhost:5173", "POST", http.StatusOK, true},
		{"allowed origin preflight", "http://localhost:3000", "OPTIONS", http.StatusNoContent, true},
		{"disallowed origin is rejected", "http://evil.example", "GET", http.StatusForbidden, false},
		{"disallowed origin preflight is rejected", "http://evil.example", "OPTIONS", http.StatusForbidden, false},
		{"no origin header passes through", "", "GET", http.StatusOK, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter(overlayOrigins)

			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			corsHeader := w.Header().Get("Access-Control-Allow-Origin")
			if tt.wantCORS {
				if corsHeader != tt.origin {
					t.Errorf("Access-Control-Allow-Origin = %q, want %q", corsHeader, tt.origin)
				}
				if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
					t.Errorf("Access-Control-Allow-Credentials not set to true")
				}
			} else if corsHeader != "" {
				t.Errorf("Access-Control-Allow-Origin should not be set, got %q", corsHeader)
			}
		})
	}
}

func TestCORSMiddleware_OriginFuncConsultsConfiguredList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := newCORSRouter([]string{"http://127.0.0.1:*"})

	for origin, want := range map[string]int{
		"http://127.0.0.1:8081": http.StatusOK,
		"http://localhost:8081": http.StatusForbidden,
	} {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != want {
			t.Errorf("origin %s: Status = %d, want %d", origin, w.Code, want)
		}
	}
}

func TestCORSMiddleware_PreflightRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := newCORSRouter(overlayOrigins)

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "app://poetis-overlay")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "app://poetis-overlay" {
		t.Errorf("Access-Control-Allow-Origin = %q, want app://poetis-overlay", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET,POST,OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q, want GET,POST,OPTIONS", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Origin,Content-Type,Authorization,X-Requested-With" {
		t.Errorf("Access-Control-Allow-Headers = %q", got)
	}
	if got := w.Header().Get("Access-Control-Max-Age"); got != "3600" {
		t.Errorf("Access-Control-Max-Age = %q, want 3600", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects requests over the burst", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(8)) // burst of 2
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
		for i := range want {
			if codes[i] != want[i] {
				t.Errorf("request %d: Status = %d, want %d", i, codes[i], want[i])
			}
		}
	})

	t.Run("limits each client separately", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(1))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		for _, addr := range []string{"10.0.0.1:1234", "10.0.0.2:1234"} {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = addr
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("%s: Status = %d, want %d", addr, w.Code, http.StatusOK)
			}
		}
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(0))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "OK")
		})

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i, w.Code, http.StatusOK)
			}
		}
	})
}

func TestIPRateLimiter_PrunesIdleVisitors(t *testing.T) {
	limiter := newIPRateLimiter(60)
	limiter.allow("10.0.0.1")
	limiter.visitors["10.0.0.1"].lastSeen = time.Now().Add(-10 * time.Minute)
	limiter.lastPrune = time.Now().Add(-2 * time.Minute)

	limiter.allow("10.0.0.2")

	if _, ok := limiter.visitors["10.0.0.1"]; ok {
		t.Error("idle visitor was not pruned")
	}
	if len(limiter.visitors) != 1 {
		t.Errorf("visitors = %d, want 1", len(limiter.visitors))
	}
}
