package dto

// RoleSeller is the only role issued by the login endpoint. Requests carrying
// a token with this role see the seller view of quotes.
const RoleSeller = "seller"

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Seller credentials
// @Example {"username": "seller", "password": "password123"}
type LoginRequest struct {
	// Username is the seller account name.
	Username string `json:"username" binding:"required" example:"seller"`
	// Password is the seller password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with a JWT access token
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always Bearer.
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"28800"`
} // @name LoginResponse

// Claims represents the validated JWT claims (kept here to avoid import cycles).
type Claims struct {
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// IsSeller reports whether the claims grant the seller view.
func (c *Claims) IsSeller() bool {
	return c != nil && c.Role == RoleSeller
}

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return &ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if len(r.Password) < 6 {
		return &ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		}
	}
	return nil
}
