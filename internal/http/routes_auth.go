package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService)}
}

// RegisterPublicRoutes registers the login endpoint.
func (r *AuthRoutes) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.POST("/auth/login", r.handler.Login)
}

func (r *AuthRoutes) RegisterProtectedRoutes(*gin.RouterGroup) {}
