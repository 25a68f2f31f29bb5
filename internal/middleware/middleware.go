package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jishu-admin/internal/model"
	"jishu-admin/pkg/response"
)

const requestIDKey = "request_id"

// RequestID ensures every request has an ID for tracing and logs.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// GetRequestID extracts request_id from gin context when available.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Logger prints minimal request log including request_id when available.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		m.l.Infof(c.Request.Context(), "request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}

// Cors allows everything in development and only the configured origins
// in production.
func (m Middleware) Cors() gin.HandlerFunc {
	production := m.config.Environment.Name == string(model.EnvironmentProduction)

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := "*"
		if production {
			allowed = ""
			for _, o := range m.config.CORS.AllowedOrigins {
				if o == origin {
					allowed = origin
					break
				}
			}
		}
		if allowed != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// Auth checks the admin bearer token. With no token configured the
// gateway is open, which is only acceptable in development.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.config.Auth.AdminToken
		if token == "" {
			c.Next()
			return
		}

		header := c.Request.Header.Get("Authorization")
		got, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || got != token {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimit enforces the per-client request budget.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if err := m.limiter.Allow(c.ClientIP()); err != nil {
			m.l.Warnf(c.Request.Context(), "rate limit hit: %v", err)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
