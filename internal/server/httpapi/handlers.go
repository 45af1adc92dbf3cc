package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/feedbackdesk/internal/common"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/server/users"
)

type handlers struct {
	svc    UserService
	logger logging.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func fail(c *gin.Context, status int, message string, fields map[string]string) {
	body := gin.H{"success": false, "message": message}
	if len(fields) > 0 {
		body["errors"] = fields
	}
	c.JSON(status, body)
}

func (h *handlers) register(c *gin.Context) {
	var in users.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Malformed request body", nil)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		var verr *users.ValidationError
		switch {
		case errors.As(err, &verr):
			fail(c, http.StatusUnprocessableEntity, "Validation failed", verr.Fields)
		case errors.Is(err, common.ErrorAlreadyExists):
			fail(c, http.StatusConflict, "Email taken", map[string]string{"email": "already in use"})
		default:
			h.logger.Error(c.Request.Context(), "register failed", "error", err)
			fail(c, http.StatusInternalServerError, "Internal error", nil)
		}
		return
	}

	h.logger.Info(c.Request.Context(), "account created", "email", user.Email)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Account created",
		"user":    user.Profile(),
	})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Malformed request body", nil)
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fail(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		h.logger.Error(c.Request.Context(), "login failed", "error", err)
		fail(c, http.StatusInternalServerError, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Profile(),
		"token":   token,
	})
}

func (h *handlers) me(c *gin.Context) {
	user := c.MustGet(userKey).(*users.User)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user.Profile()})
}
