package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LoginRequest is the body for the admin login endpoint.
// @Description Request body for admin login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
// @Description Response containing a JWT access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in" example:"3600"`
}

// AuthProblemDetail represents an RFC 7807 error response for auth endpoints.
// @Description RFC 7807 Problem Details error response.
type AuthProblemDetail struct {
	Type   string `json:"type" example:"https://inkwell.dev/problems/auth-error"`
	Title  string `json:"title" example:"Unauthorized"`
	Status int    `json:"status" example:"401"`
	Detail string `json:"detail" example:"invalid credentials"`
}

// Handler provides the admin login endpoint.
type Handler struct {
	tokens       *TokenService
	passwordHash string
	logger       *zap.Logger
}

// NewHandler creates an auth Handler. passwordHash is the bcrypt hash of
// the admin password from configuration.
func NewHandler(tokens *TokenService, passwordHash string, logger *zap.Logger) *Handler {
	return &Handler{
		tokens:       tokens,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

// RegisterRoutes registers auth routes on the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
}

// Middleware returns the token-validation middleware for the server chain.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return Middleware(h.tokens)
}

// handleLogin verifies the admin password and issues an access token.
//
//	@Summary		Admin login
//	@Description	Exchange the admin password for a JWT access token.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest		true	"Credentials"
//	@Success		200		{object}	LoginResponse		"Access token"
//	@Failure		401		{object}	AuthProblemDetail	"Invalid credentials"
//	@Router			/auth/login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.passwordHash == "" {
		writeAuthError(w, http.StatusServiceUnavailable, "admin password is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		// Small fixed delay keeps timing flat on failures.
		time.Sleep(200 * time.Millisecond)
		h.logger.Warn("failed admin login attempt", zap.String("remote", r.RemoteAddr))
		writeAuthError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.tokens.IssueAccessToken()
	if err != nil {
		h.logger.Error("failed to issue access token", zap.Error(err))
		writeAuthError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(LoginResponse{
		AccessToken: token,
		ExpiresIn:   int(h.tokens.AccessTokenTTL().Seconds()),
	})
}
