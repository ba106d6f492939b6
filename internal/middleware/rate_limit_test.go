package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"chat-session-manager/internal/middleware"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newRouter(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit(t *testing.T) {
	t.Run("Burst Then Throttled", func(t *testing.T) {
		// 10/min gives a burst of 1: the second immediate request is
		// rejected.
		r := newRouter(middleware.New(noopLogger{}, middleware.Config{RateLimitPerMin: 10}))

		if code := doGet(r, "10.0.0.1:1234", ""); code != http.StatusOK {
			t.Fatalf("first request: expected 200, got %d", code)
		}
		if code := doGet(r, "10.0.0.1:1234", ""); code != http.StatusTooManyRequests {
			t.Errorf("second request: expected 429, got %d", code)
		}
	})

	t.Run("Clients Are Throttled Independently", func(t *testing.T) {
		r := newRouter(middleware.New(noopLogger{}, middleware.Config{RateLimitPerMin: 10}))

		if code := doGet(r, "10.0.0.1:1234", ""); code != http.StatusOK {
			t.Fatalf("client A: expected 200, got %d", code)
		}
		if code := doGet(r, "10.0.0.2:1234", ""); code != http.StatusOK {
			t.Errorf("client B must have its own bucket, got %d", code)
		}
	})

	t.Run("Forwarded Header Identifies Client", func(t *testing.T) {
		r := newRouter(middleware.New(noopLogger{}, middleware.Config{RateLimitPerMin: 10}))

		if code := doGet(r, "127.0.0.1:1234", "203.0.113.7, 10.0.0.1"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		// Same forwarded client through a different proxy hop shares
		// the bucket.
		if code := doGet(r, "127.0.0.2:1234", "203.0.113.7"); code != http.StatusTooManyRequests {
			t.Errorf("expected shared bucket for forwarded client, got %d", code)
		}
	})
}
