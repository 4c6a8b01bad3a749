package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"obsidianiq-forms-api/config"
	"obsidianiq-forms-api/internal/delivery/http/response"
	"obsidianiq-forms-api/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.POST("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doRequest(r http.Handler, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSPolicies(t *testing.T) {
	frontend := NewCORSPolicy(config.CORSPolicyFrontend, []string{"https://obsidianiq.com/"})
	dev := NewCORSPolicy(config.CORSPolicyDevelopment, nil)
	all := NewCORSPolicy(config.CORSPolicyAllowAll, nil)
	unknown := NewCORSPolicy("nope", nil)

	assert.True(t, frontend.Allows("https://obsidianiq.com"))
	assert.False(t, frontend.Allows("http://localhost:3000"))
	assert.True(t, frontend.Allows(""))

	assert.True(t, dev.Allows("http://localhost:3000"))
	assert.True(t, dev.Allows("https://localhost:7000"))
	assert.False(t, dev.Allows("https://evil.example.com"))

	assert.True(t, all.Allows("https://anything.example.com"))
	assert.False(t, all.AllowCredentials)

	assert.Equal(t, config.CORSPolicyDevelopment, unknown.Name)
}

func TestCORSMiddlewareHeaders(t *testing.T) {
	r := newEngine(CORSMiddleware(NewCORSPolicy(config.CORSPolicyFrontend, []string{"https://obsidianiq.com"})))

	w := doRequest(r, http.MethodPost, "https://obsidianiq.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://obsidianiq.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))

	w = doRequest(r, http.MethodPost, "https://evil.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	r := newEngine(CORSMiddleware(NewCORSPolicy(config.CORSPolicyDevelopment, nil)))

	assert.Equal(t, http.StatusNoContent, doRequest(r, http.MethodOptions, "http://localhost:3000").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, http.MethodOptions, "https://evil.example.com").Code)
}

func TestCORSMiddlewareAllowAll(t *testing.T) {
	r := newEngine(CORSMiddleware(NewCORSPolicy(config.CORSPolicyAllowAll, nil)))

	w := doRequest(r, http.MethodGet, "https://anywhere.example.com")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w := doRequest(r, http.MethodGet, "")
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	inbound := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", inbound)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, inbound, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	w := doRequest(newEngine(SecurityHeadersMiddleware()), http.MethodGet, "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperror.BadRequest("Invalid request body").WithErrors("unexpected EOF"))
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: password authentication failed"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid request body", body.Message)
	assert.Equal(t, []string{"unexpected EOF"}, body.Errors)
	assert.NotEmpty(t, body.RequestID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body = decode(t, w)
	assert.NotContains(t, body.Message, "pq:")
	assert.Equal(t, []string{}, body.Errors)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.NotContains(t, w.Body.String(), "kaboom")
}
