package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/saludml/salud-backend/internal/httperr"
	"github.com/saludml/salud-backend/internal/middleware"
	"github.com/saludml/salud-backend/internal/store"
	"github.com/saludml/salud-backend/pkg/utils"
)

// maxUsernameLength matches the VARCHAR(255) users column; anything longer
// is rejected up front instead of surfacing as a database error.
const maxUsernameLength = 255

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MeResponse struct {
	Username string `json:"username"`
}

// Register creates a new user account.
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.E(httperr.Validation, "invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httperr.Write(w, httperr.E(httperr.Validation, "username and password are required"))
		return
	}
	if len(req.Username) > maxUsernameLength {
		httperr.Write(w, httperr.E(httperr.Validation, "username is too long"))
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		httperr.Write(w, httperr.Wrap(httperr.Internal, "failed to hash password", err))
		return
	}

	user, err := a.Users.Register(r.Context(), req.Username, hashedPassword)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			httperr.Write(w, httperr.E(httperr.Conflict, "username is already taken"))
			return
		}
		log.Printf("register: %v", err)
		httperr.Write(w, httperr.Wrap(httperr.Internal, "failed to create user", err))
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
}

// Login verifies credentials and issues a bearer token.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.E(httperr.Validation, "invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httperr.Write(w, httperr.E(httperr.Validation, "username and password are required"))
		return
	}

	user, err := a.Users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same message as a bad password so usernames can't be probed.
			httperr.Write(w, httperr.E(httperr.Auth, "invalid username or password"))
			return
		}
		log.Printf("login: %v", err)
		httperr.Write(w, httperr.Wrap(httperr.Internal, "database error", err))
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		httperr.Write(w, httperr.E(httperr.Auth, "invalid username or password"))
		return
	}

	token, err := a.Tokens.Issue(user.Username)
	if err != nil {
		httperr.Write(w, httperr.Wrap(httperr.Internal, "failed to issue token", err))
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated user's identity.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.E(httperr.Auth, "authentication required"))
		return
	}
	writeJSON(w, http.StatusOK, MeResponse{Username: username})
}
