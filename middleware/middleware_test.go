package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})
	return r
}

func get(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	r := newRouter(RateLimitMiddleware(3))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(r, map[string]string{"X-Forwarded-For": "10.0.0.1"}).Code)
	}
	w := get(r, map[string]string{"X-Forwarded-For": "10.0.0.1"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message": "Rate limit exceeded. Try again later.", "details": "ip 10.0.0.1 exceeded the limit on /ping"}`, w.Body.String())

	// Other clients keep their own budget.
	assert.Equal(t, http.StatusOK, get(r, map[string]string{"X-Forwarded-For": "10.0.0.2"}).Code)
}

func TestRequestID(t *testing.T) {
	r := newRouter(RequestID())

	w := get(r, nil)
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	w = get(r, map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRequestLogger_SetsLogger(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})
	assert.Equal(t, http.StatusNoContent, get(r, nil).Code)
}

func TestGetClientIP(t *testing.T) {
	var got string
	r := gin.New()
	r.GET("/ping", func(c *gin.Context) {
		got = getClientIP(c)
	})

	get(r, map[string]string{"X-Forwarded-For": " 1.2.3.4 , 5.6.7.8"})
	assert.Equal(t, "1.2.3.4", got)

	get(r, map[string]string{"X-Real-IP": "9.9.9.9"})
	assert.Equal(t, "9.9.9.9", got)

	get(r, nil)
	assert.Equal(t, "192.0.2.1", got)
}

func TestRedisRateLimiter_FailsOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	rl := NewRedisRateLimiter(rdb, 1, time.Minute, "")
	assert.Equal(t, "rl", rl.prefix)

	r := newRouter(rl.Middleware())
	assert.Equal(t, http.StatusOK, get(r, nil).Code)
	assert.Equal(t, http.StatusOK, get(r, nil).Code)
}
