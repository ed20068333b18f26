package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/i18n"
	"github.com/guttosm/container-quote/internal/service"
)

const (
	// ClaimsKey is the gin context key holding the validated *dto.Claims.
	ClaimsKey = "seller_claims"
	// ViewQuery lets a seller request the customer view of a quote.
	ViewQuery = "view"
)

// SellerAuth returns a middleware that requires a valid seller token.
func SellerAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		if !claims.IsSeller() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewError(dto.ErrCodeForbidden, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalSellerAuth accepts anonymous requests and validates a token when one is sent.
// A malformed or expired token is rejected rather than downgraded to anonymous.
func OptionalSellerAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// LocalSellerSubject is the subject recorded for changes made with auth disabled.
const LocalSellerSubject = "local"

// LocalSeller treats every request as the seller. It replaces the token
// middlewares when authentication is disabled for a single-user deployment.
func LocalSeller() gin.HandlerFunc {
	claims := &dto.Claims{Subject: LocalSellerSubject, Role: dto.RoleSeller}
	return func(c *gin.Context) {
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the validated claims of the request, or nil for anonymous requests.
func GetClaims(c *gin.Context) *dto.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*dto.Claims); ok {
			return claims
		}
	}
	return nil
}

// ResolveViewMode picks the quote view: sellers see the seller view unless
// they ask for ?view=customer; everyone else always sees the customer view.
func ResolveViewMode(c *gin.Context) dto.ViewMode {
	if !GetClaims(c).IsSeller() {
		return dto.ViewCustomer
	}
	if dto.ViewMode(strings.ToLower(c.Query(ViewQuery))) == dto.ViewCustomer {
		return dto.ViewCustomer
	}
	return dto.ViewSeller
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return tokenString, tokenString != ""
}

func abortUnauthorized(c *gin.Context, key string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
