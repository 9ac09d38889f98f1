package handlers

import (
	"context"
	"net/http"

	"DOCSHELF_BACK-END/internal/apperr"
	"DOCSHELF_BACK-END/internal/dto"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/middleware"
	"DOCSHELF_BACK-END/internal/utils"
)

// Authenticator registers users and exchanges credentials for tokens
type Authenticator interface {
	Register(ctx context.Context, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth Authenticator
	log  logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth Authenticator, log logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with email and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 200 {object} dto.RegisterResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if req.Secret() == "" {
		utils.WriteError(w, apperr.Validation("Email and password are required"))
		return
	}

	userID, err := h.auth.Register(r.Context(), req.Email, req.Secret())
	if err != nil {
		respondError(w, h.log, err, "Registration failed")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login handles the OAuth2 password flow
// @Summary Login user
// @Description Exchange form-encoded username (email) and password for a bearer token
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Incorrect username or password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /token [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := r.ParseForm(); err != nil {
		utils.WriteError(w, apperr.Validation("Invalid form body"))
		return
	}
	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if username == "" || password == "" {
		utils.WriteError(w, apperr.Validation("username and password are required"))
		return
	}

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		respondError(w, h.log, err, "Login failed")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the current user
// @Summary Get current user
// @Description Get the authenticated user's email and id
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /users/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, middleware.MsgNotAuthenticated)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MeResponse{Email: user.Email, ID: user.ID})
}
