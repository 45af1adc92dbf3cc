package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/feedbackdesk/internal/common"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/server/users"
)

// MePath returns the profile of the bearer token's owner.
const MePath = "/api/auth/me"

// UserService is the part of users.Service the handlers need.
type UserService interface {
	Register(ctx context.Context, in users.RegisterInput) (*users.User, error)
	Login(ctx context.Context, email, password string) (*users.User, string, error)
	Authenticate(ctx context.Context, token string) (*users.User, error)
}

// Options tunes the router.
type Options struct {
	// Development keeps gin's debug output on.
	Development bool
	// AuthRateLimit is the per-client request rate allowed on register and
	// login. Zero disables limiting.
	AuthRateLimit float64
	AuthBurst     int
}

// NewRouter wires the identity routes onto a fresh gin engine.
func NewRouter(svc UserService, logger logging.Logger, o Options) *gin.Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	if !o.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID(), requestLogger(logger))

	h := &handlers{svc: svc, logger: logger}

	router.GET(common.HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := router.Group("")
	if o.AuthRateLimit > 0 {
		authGroup.Use(rateLimit(o.AuthRateLimit, o.AuthBurst))
	}
	authGroup.POST(common.RegisterPath, h.register)
	authGroup.POST(common.LoginPath, h.login)

	router.GET(MePath, bearerAuth(svc), h.me)

	return router
}
