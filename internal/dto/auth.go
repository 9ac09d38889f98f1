package dto

// RegisterRequest represents the request payload for user registration.
// Older clients send the plaintext password under hashed_password; it is
// accepted as an alias and hashed server-side like password.
type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email,max=255"`
	Password       string `json:"password,omitempty"`
	HashedPassword string `json:"hashed_password,omitempty" swaggerignore:"true"`
}

// Secret returns whichever password field the client filled in.
func (r RegisterRequest) Secret() string {
	if r.Password != "" {
		return r.Password
	}
	return r.HashedPassword
}

// RegisterResponse represents the response after a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// TokenResponse is the OAuth2 password-flow style token payload
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MeResponse represents the authenticated user
type MeResponse struct {
	Email string `json:"email"`
	ID    uint   `json:"id"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}
