package middleware

import (
	"net/http"
	"strings"

	"obsidianiq-forms-api/config"

	"github.com/gin-gonic/gin"
)

// CORSPolicy decides which browser origins may call the API.
type CORSPolicy struct {
	Name             string
	AllowedOrigins   map[string]bool
	AllowLocalhost   bool // any http(s)://localhost[:port] origin
	AllowAny         bool // responds with "*"; never combined with credentials
	AllowCredentials bool
}

// NewCORSPolicy builds one of the named policies from configuration
func NewCORSPolicy(name string, origins []string) CORSPolicy {
	switch name {
	case config.CORSPolicyAllowAll:
		return CORSPolicy{Name: name, AllowAny: true}
	case config.CORSPolicyFrontend:
		allowed := make(map[string]bool, len(origins))
		for _, o := range origins {
			allowed[strings.TrimRight(o, "/")] = true
		}
		return CORSPolicy{Name: name, AllowedOrigins: allowed, AllowCredentials: true}
	default:
		return CORSPolicy{Name: config.CORSPolicyDevelopment, AllowLocalhost: true, AllowCredentials: true}
	}
}

// Allows reports whether origin passes the policy. Empty origins are same-origin requests.
func (p CORSPolicy) Allows(origin string) bool {
	switch {
	case origin == "":
		return true
	case p.AllowAny:
		return true
	case p.AllowedOrigins[origin]:
		return true
	case p.AllowLocalhost:
		return strings.HasPrefix(origin, "http://localhost") || strings.HasPrefix(origin, "https://localhost")
	}
	return false
}

// CORSMiddleware adds CORS headers for cross-origin requests and answers preflights.
// Disallowed origins get no CORS headers, so the browser blocks the response.
func CORSMiddleware(policy CORSPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		isAllowed := policy.Allows(origin)

		if isAllowed && origin != "" {
			if policy.AllowAny {
				c.Header("Access-Control-Allow-Origin", "*")
			} else {
				c.Header("Access-Control-Allow-Origin", origin)
			}
			if policy.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			if isAllowed {
				c.AbortWithStatus(http.StatusNoContent)
			} else {
				c.AbortWithStatus(http.StatusForbidden)
			}
			return
		}

		c.Next()
	}
}
