package restapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ledcalc/internal/logging"
	"ledcalc/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(5, time.Second)
	defer middleware.Stop()

	limitedHandler := middleware.Handler(okHandler())

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
		w := httptest.NewRecorder()

		limitedHandler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "Request %d should be allowed", i+1)
	}
}

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	middleware := NewRateLimitMiddleware(3, time.Second)
	defer middleware.Stop()

	limitedHandler := middleware.Handler(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should be allowed", i+1)
	}

	req := httptest.NewRequest("GET", "/test?key=test-api-key", nil)
	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code, "Request over limit should be blocked")
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, http.StatusTooManyRequests, response.Code)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", response.Text)
}

func TestRateLimitMiddleware_PerAPIKeyLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)
	defer middleware.Stop()

	limitedHandler := middleware.Handler(okHandler())

	for _, key := range []string{"key1", "key2"} {
		for i := 0; i < 2; i++ {
			req := httptest.NewRequest("GET", "/test?key="+key, nil)
			w := httptest.NewRecorder()
			limitedHandler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "%s request %d should be allowed", key, i+1)
		}
	}

	req := httptest.NewRequest("GET", "/test?key=key1", nil)
	w := httptest.NewRecorder()
	limitedHandler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitMiddleware_ExemptKeys(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second, "bench")
	defer middleware.Stop()

	limitedHandler := middleware.Handler(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("GET", "/test?key=bench", nil)
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_NegativeRateDisablesLimiting(t *testing.T) {
	middleware := NewRateLimitMiddleware(-1, time.Second)
	defer middleware.Stop()

	limitedHandler := middleware.Handler(okHandler())

	for i := 0; i < 50; i++ {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		limitedHandler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_ZeroRateBlocksEverything(t *testing.T) {
	middleware := NewRateLimitMiddleware(0, time.Second)
	defer middleware.Stop()

	req := httptest.NewRequest("GET", "/test?key=any", nil)
	w := httptest.NewRecorder()
	middleware.Handler(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
}

type brokenBodyWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenBodyWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRateLimitMiddleware_LogsEncodeFailure(t *testing.T) {
	middleware := NewRateLimitMiddleware(0, time.Second)
	defer middleware.Stop()

	var logs bytes.Buffer
	logger := logging.NewStructuredLogger(&logs, slog.LevelInfo)

	req := httptest.NewRequest("GET", "/test?key=any", nil)
	req = req.WithContext(logging.WithLogger(req.Context(), logger))
	w := brokenBodyWriter{httptest.NewRecorder()}
	middleware.Handler(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, logs.String(), "failed to encode rate limit response")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestRateLimitMiddleware_RetryAfterForSlowRates(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, 10*time.Second)
	defer middleware.Stop()

	assert.Equal(t, 10*time.Second, middleware.retryAfter())
}

func TestRateLimitMiddleware_RemoveIdle(t *testing.T) {
	middleware := NewRateLimitMiddleware(2, time.Second)
	defer middleware.Stop()

	middleware.getLimiter("idle")
	middleware.getLimiter("busy").Allow()

	middleware.removeIdle()

	middleware.mu.RLock()
	defer middleware.mu.RUnlock()
	assert.NotContains(t, middleware.limiters, "idle")
	assert.Contains(t, middleware.limiters, "busy")
}

func TestRateLimitMiddleware_ConcurrentRequests(t *testing.T) {
	middleware := NewRateLimitMiddleware(10, time.Minute)
	defer middleware.Stop()

	limitedHandler := middleware.Handler(okHandler())

	var wg sync.WaitGroup
	var mu sync.Mutex
	statusCounts := map[int]int{}

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest("GET", fmt.Sprintf("/test?key=shared&n=%d", i), nil)
			w := httptest.NewRecorder()
			limitedHandler.ServeHTTP(w, req)

			mu.Lock()
			statusCounts[w.Code]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, statusCounts[http.StatusOK])
	assert.Equal(t, 10, statusCounts[http.StatusTooManyRequests])
}

func TestRateLimitMiddleware_StopIsIdempotent(t *testing.T) {
	middleware := NewRateLimitMiddleware(1, time.Second)
	middleware.Stop()
	assert.NotPanics(t, middleware.Stop)
}
