package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveFrom(e *echo.Echo, h echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 3)
	frozen := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return frozen }

	h := rl.Middleware()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, serveFrom(e, h, "10.0.0.1").Code, "request %d", i)
	}

	rec := serveFrom(e, h, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")

	frozen = frozen.Add(time.Second)
	assert.Equal(t, http.StatusOK, serveFrom(e, h, "10.0.0.1").Code)
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	h := rl.Middleware()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serveFrom(e, h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serveFrom(e, h, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, serveFrom(e, h, "10.0.0.2").Code)
}

func TestClientIP(t *testing.T) {
	e := echo.New()

	testCases := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{"first forwarded hop", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
		{"remote addr", nil, "192.0.2.1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:5555"
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tc.expected, clientIP(c))
		})
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := NewRateLimiter(5, 10)
	now := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	require.True(t, rl.allow("10.0.0.1"))
	now = now.Add(2 * time.Minute)
	require.True(t, rl.allow("10.0.0.2"))

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, rl.evictIdle())
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 50)
	h := rl.Middleware()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if serveFrom(e, h, "10.0.0.9").Code == http.StatusOK {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 50)
	assert.Less(t, allowed, 100)
}
