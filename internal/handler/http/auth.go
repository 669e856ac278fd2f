package http

import (
	"encoding/json"
	"net/http"

	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/utils"
	"github.com/ndanilchenko/go-skill-market/models"
)

// registerRequest is the body of POST /api/auth/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest is the body of POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, models.KindValidationError, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeServiceError(w, err)
		return
	}

	// No token here: a freshly registered user still has to log in.
	if _, err := utils.WriteJSON(w, models.RegisterResponse{User: registeredUser.Public()}, http.StatusCreated); err != nil {
		log.Err(err).Msg("failed to write registration response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, models.KindValidationError, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeServiceError(w, err)
		return
	}

	response := models.LoginResponse{
		Token: token.SignedString,
		User:  user.Public(),
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write login response")
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The auth middleware already validated the bearer token and attached its
	// subject; Me still resolves the id against the store so a deleted user
	// cannot keep using a still-valid token.
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, models.KindUnauthorized, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.Me(ctx, userID)
	if err != nil {
		log.Err(err).Msg("failed to resolve current user")
		writeServiceError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, user.Public(), http.StatusOK); err != nil {
		log.Err(err).Msg("failed to write current user response")
	}
}
