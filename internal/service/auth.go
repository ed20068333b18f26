package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/container-quote/config"
	"github.com/guttosm/container-quote/internal/domain/dto"
	"github.com/guttosm/container-quote/internal/logger"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is kept in the dto package to avoid import cycles.
type Claims = dto.Claims

// ClaimsWithJWT extends the role claim with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates the seller and validates seller access tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService for the single configured seller account.
type AuthServiceImpl struct {
	username     string
	passwordHash []byte
	secretKey    []byte
	issuer       string
	tokenTTL     time.Duration
}

// NewAuthService creates a new authentication service from the auth configuration.
func NewAuthService(cfg config.AuthConfig) AuthService {
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	if cfg.SellerPasswordHash == "" {
		logger.For("auth").Warn().Msg("SELLER_PASSWORD_HASH is empty, seller login is disabled")
	}
	return &AuthServiceImpl{
		username:     cfg.SellerUsername,
		passwordHash: []byte(cfg.SellerPasswordHash),
		secretKey:    []byte(cfg.JWTSecretKey),
		issuer:       cfg.JWTIssuer,
		tokenTTL:     ttl,
	}
}

// Login verifies the seller credentials and issues an access token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	if len(s.passwordHash) == 0 {
		return nil, ErrInvalidCredentials
	}

	// bcrypt runs even when the username does not match.
	passwordErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	if !userOK || passwordErr != nil {
		logger.For("auth").Warn().Str("username", username).Msg("seller login rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &dto.Claims{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}

func (s *AuthServiceImpl) generateAccessToken(subject string) (string, error) {
	now := time.Now()

	claims := &ClaimsWithJWT{
		Role: dto.RoleSeller,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
