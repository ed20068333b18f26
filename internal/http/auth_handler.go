package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/logger"
	"github.com/guttosm/container-quote/internal/middleware"
	"github.com/guttosm/container-quote/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Seller login
// @Description  Verifies the seller password and returns a bearer token. The token unlocks the seller quote view, catalog edits and scenarios.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Seller credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.Fail(err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.For("auth").Warn().
				Str("request_id", middleware.GetRequestID(c)).
				Str("username", req.Username).
				Str("client_ip", c.ClientIP()).
				Msg("failed login attempt")
		}
		builder.Fail(err)
		return
	}

	builder.SuccessOK(resp)
}
