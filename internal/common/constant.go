package common

// Identity service routes shared by the HTTP client and the dev server.
const (
	RegisterPath = "/api/auth/register"
	LoginPath    = "/api/auth/login"
	HealthPath   = "/api/health"
)
