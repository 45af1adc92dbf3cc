package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/feedbackdesk/internal/common"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

var (
	_ session.Authenticator = (*HTTPClient)(nil)
	_ session.Registrar     = (*HTTPClient)(nil)
	_ session.TokenResetter = (*HTTPClient)(nil)
)

const userAgent = "feedbackdesk-client/1.0"

// Options configures an HTTPClient.
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// RateLimit is the sustained number of requests per second. Zero disables
	// limiting.
	RateLimit float64
	Burst     int
}

// HTTPClient is the identity service client.
type HTTPClient struct {
	rest    *resty.Client
	limiter *rate.Limiter
	logger  logging.Logger

	mu    sync.RWMutex
	token string
}

// envelope is the common response shape of the identity service.
type envelope struct {
	Success *bool             `json:"success,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (e envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	envelope
	User  *session.User `json:"user"`
	Token string        `json:"token"`
}

func NewHTTPClient(o Options, logger logging.Logger) (*HTTPClient, error) {
	if strings.TrimSpace(o.BaseURL) == "" {
		return nil, errors.New("identity: base URL is required")
	}
	if logger == nil {
		logger = logging.Nop()
	}
	logger = logger.With("component", "identity")

	rc := retryablehttp.NewClient()
	rc.RetryMax = o.RetryMax
	if o.RetryWaitMin > 0 {
		rc.RetryWaitMin = o.RetryWaitMin
	}
	if o.RetryWaitMax > 0 {
		rc.RetryWaitMax = o.RetryWaitMax
	}
	rc.Logger = retryLogger{l: logger}
	// return the last response instead of a synthetic error so the body stays readable
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	rest := resty.NewWithClient(rc.StandardClient()).
		SetBaseURL(strings.TrimRight(o.BaseURL, "/")).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if o.Timeout > 0 {
		rest.SetTimeout(o.Timeout)
	}

	limit := rate.Inf
	if o.RateLimit > 0 {
		limit = rate.Limit(o.RateLimit)
	}
	burst := o.Burst
	if burst <= 0 {
		burst = 1
	}

	return &HTTPClient{
		rest:    rest,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}, nil
}

// Register creates an account. Any refusal by the service, including a 2xx
// reply with success=false, is returned as *session.RegistrationError.
// Failures to reach the service wrap session.ErrServiceUnavailable.
func (c *HTTPClient) Register(ctx context.Context, req session.RegisterRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	if err := ValidateRegistration(req); err != nil {
		return err
	}

	var ok, fail envelope
	resp, err := c.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).SetResult(&ok).SetError(&fail).Post(common.RegisterPath)
	})
	if err != nil {
		return err
	}

	switch {
	case resp.IsError():
		return registrationFailure(resp.StatusCode(), fail)
	case ok.failed():
		return registrationFailure(resp.StatusCode(), ok)
	}

	c.logger.Debug(ctx, "account created", "email", req.Email, "status", resp.StatusCode())
	return nil
}

func registrationFailure(status int, e envelope) error {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		if status >= http.StatusBadRequest {
			msg = "Registration failed: " + http.StatusText(status)
		} else {
			msg = "Registration failed"
		}
	}
	return session.NewRegistrationError(msg, e.Errors)
}

// Authenticate exchanges credentials for the user profile and remembers the
// returned bearer token.
func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (*session.User, error) {
	var ok loginResponse
	var fail envelope
	resp, err := c.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(loginRequest{Email: email, Password: password}).
			SetResult(&ok).SetError(&fail).Post(common.LoginPath)
	})
	if err != nil {
		return nil, err
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", session.ErrInvalidCredentials, describe(status, fail))
	case status >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %s", session.ErrServiceUnavailable, describe(status, fail))
	case resp.IsError():
		return nil, fmt.Errorf("%w: %s", session.ErrLoginFailed, describe(status, fail))
	case ok.failed():
		return nil, fmt.Errorf("%w: %s", session.ErrInvalidCredentials, describe(status, ok.envelope))
	case ok.User == nil:
		return nil, fmt.Errorf("%w: response has no user", session.ErrLoginFailed)
	}

	c.mu.Lock()
	c.token = ok.Token
	c.mu.Unlock()

	return ok.User, nil
}

func describe(status int, e envelope) string {
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	return fmt.Sprintf("HTTP %d %s", status, http.StatusText(status))
}

// Ping checks that the identity service answers its health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(common.HealthPath)
	})
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("%w: HTTP %d", session.ErrServiceUnavailable, resp.StatusCode())
	}
	return nil
}

// Token returns the bearer token from the last successful login.
func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) ResetToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *HTTPClient) send(ctx context.Context, call func(r *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", session.ErrServiceUnavailable, err)
	}

	r := c.rest.R().SetContext(ctx)
	if tok := c.Token(); tok != "" {
		r.SetAuthToken(tok)
	}

	resp, err := call(r)
	if err != nil {
		c.logger.Warn(ctx, "identity request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", session.ErrServiceUnavailable, err)
	}
	return resp, nil
}

// retryLogger routes retryablehttp's leveled logs into our logger.
type retryLogger struct {
	l logging.Logger
}

var _ retryablehttp.LeveledLogger = retryLogger{}

func (r retryLogger) Error(msg string, kv ...interface{}) { r.l.Error(context.Background(), msg, kv...) }
func (r retryLogger) Info(msg string, kv ...interface{})  { r.l.Debug(context.Background(), msg, kv...) }
func (r retryLogger) Debug(msg string, kv ...interface{}) { r.l.Debug(context.Background(), msg, kv...) }
func (r retryLogger) Warn(msg string, kv ...interface{})  { r.l.Warn(context.Background(), msg, kv...) }
