package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/feedbackdesk/internal/common"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
)

const (
	userKey         = "user"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"

	limiterClientsKey = "limiter_clients"
)

// requestID echoes the caller's X-Request-ID or assigns a fresh one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			var err error
			if id, err = common.MakeRandHexString(8); err != nil {
				id = "unknown"
			}
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Request = c.Request.WithContext(logging.ContextWith(c.Request.Context(), requestIDKey, id))
		c.Next()
	}
}

func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// idleLimiterTTL is how long a client's bucket survives without requests.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimit keeps one token bucket per client IP. Buckets idle for longer
// than idleLimiterTTL are swept on the next request after the TTL.
func rateLimit(rps float64, burst int) gin.HandlerFunc {
	return rateLimitAt(rps, burst, time.Now)
}

func rateLimitAt(rps float64, burst int, now func() time.Time) gin.HandlerFunc {
	if burst < 1 {
		burst = 1
	}
	var (
		mu        sync.Mutex
		clients   = make(map[string]*clientLimiter)
		lastSweep = now()
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		t := now()

		mu.Lock()
		if t.Sub(lastSweep) >= idleLimiterTTL {
			for k, cl := range clients {
				if t.Sub(cl.lastSeen) >= idleLimiterTTL {
					delete(clients, k)
				}
			}
			lastSweep = t
		}
		cl, ok := clients[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = cl
		}
		cl.lastSeen = t
		allowed := cl.limiter.AllowN(t, 1)
		size := len(clients)
		mu.Unlock()

		c.Set(limiterClientsKey, size)
		if !allowed {
			fail(c, http.StatusTooManyRequests, "Too many requests, please slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerAuth(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			fail(c, http.StatusUnauthorized, "Missing bearer token", nil)
			c.Abort()
			return
		}

		user, err := svc.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			switch {
			case errors.Is(err, common.ErrTokenExpired):
				fail(c, http.StatusUnauthorized, "Token expired", nil)
			case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrorUnauthorized):
				fail(c, http.StatusUnauthorized, "Invalid token", nil)
			default:
				fail(c, http.StatusInternalServerError, "Internal error", nil)
			}
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}
