package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"feature-flag-backend/internal/api/middleware"
	"feature-flag-backend/internal/config"
	"feature-flag-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ctxRequestID string
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		// The id must reach the request context so service-layer loggers see it
		log := logger.WithContext(c.Request.Context())
		ctxRequestID, _ = log.Data["request_id"].(string)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), ctxRequestID)
}

func TestRequestID_ReusesCallerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ctxRequestID string
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ping", func(c *gin.Context) {
		log := logger.WithContext(c.Request.Context())
		ctxRequestID, _ = log.Data["request_id"].(string)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "caller-supplied-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied-id", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "caller-supplied-id", ctxRequestID)
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := gin.New()
	router.Use(middleware.CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
