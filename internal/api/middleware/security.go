// Package middleware provides security middleware for the API.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gosign/internal/config/server"
	"github.com/jonesrussell/gosign/internal/logger"
)

// TimeProvider is an interface for getting the current time
type TimeProvider interface {
	Now() time.Time
}

// realTimeProvider is the default implementation of TimeProvider
type realTimeProvider struct{}

func (r *realTimeProvider) Now() time.Time {
	return time.Now()
}

const (
	// DefaultThrottleWindow is the default window for request throttling
	DefaultThrottleWindow = 1 * time.Second
	// DefaultMaxRequests is the default number of requests allowed per window
	DefaultMaxRequests = 100
)

// SecurityMiddleware implements security measures for the API
type SecurityMiddleware struct {
	config         *server.Config
	logger         logger.Interface
	throttle       map[string]throttleInfo
	mu             sync.Mutex
	timeProvider   TimeProvider
	throttleWindow time.Duration
	maxRequests    int
}

// throttleInfo holds per-client request counts for the current window
type throttleInfo struct {
	count      int
	lastAccess time.Time
}

// NewSecurityMiddleware creates a new security middleware instance
func NewSecurityMiddleware(cfg *server.Config, log logger.Interface) *SecurityMiddleware {
	return &SecurityMiddleware{
		config:         cfg,
		logger:         log,
		throttle:       make(map[string]throttleInfo),
		timeProvider:   &realTimeProvider{},
		throttleWindow: DefaultThrottleWindow,
		maxRequests:    DefaultMaxRequests,
	}
}

// SetTimeProvider sets a custom time provider for testing
func (m *SecurityMiddleware) SetTimeProvider(provider TimeProvider) {
	m.timeProvider = provider
}

// SetThrottleWindow sets the throttle window duration
func (m *SecurityMiddleware) SetThrottleWindow(window time.Duration) {
	m.throttleWindow = window
}

// SetMaxRequests sets the number of requests allowed per window
func (m *SecurityMiddleware) SetMaxRequests(limit int) {
	m.maxRequests = limit
}

// checkThrottle reports whether the client is within its request budget
func (m *SecurityMiddleware) checkThrottle(clientIP string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.timeProvider.Now()
	info, exists := m.throttle[clientIP]

	if !exists || now.Sub(info.lastAccess) > m.throttleWindow {
		m.throttle[clientIP] = throttleInfo{count: 1, lastAccess: now}
		return true
	}

	if info.count >= m.maxRequests {
		return false
	}

	info.count++
	info.lastAccess = now
	m.throttle[clientIP] = info
	return true
}

// addSecurityHeaders adds security headers to the response
func (m *SecurityMiddleware) addSecurityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "1; mode=block")
	c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	c.Header("Content-Security-Policy", "default-src 'self'")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
}

// handleAPIKey checks if the API key is valid
func (m *SecurityMiddleware) handleAPIKey(c *gin.Context) error {
	if !m.config.SecurityEnabled {
		return nil
	}

	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" {
		return errors.New("missing API key")
	}

	if apiKey != m.config.APIKey {
		return errors.New("invalid API key")
	}

	return nil
}

// Middleware returns the security middleware function
func (m *SecurityMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.handleAPIKey(c); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if !m.checkThrottle(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		m.addSecurityHeaders(c)
		c.Next()
	}
}

// Cleanup periodically removes expired throttle entries until ctx is done
func (m *SecurityMiddleware) Cleanup(ctx context.Context) {
	ticker := time.NewTicker(m.throttleWindow)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Cleanup context cancelled, stopping cleanup routine")
			return
		case <-ticker.C:
			expiry := m.timeProvider.Now().Add(-m.throttleWindow)

			m.mu.Lock()
			for ip, info := range m.throttle {
				if info.lastAccess.Before(expiry) {
					delete(m.throttle, ip)
				}
			}
			m.mu.Unlock()
		}
	}
}
