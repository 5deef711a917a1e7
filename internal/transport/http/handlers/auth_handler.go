package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dvukovic/devconnect/internal/service"
	"github.com/dvukovic/devconnect/internal/transport/http/middleware"
	"github.com/dvukovic/devconnect/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService *service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateRegister(input.Name, input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	tok, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "USER_EXISTS", "User already exists")
		} else {
			h.logger.Error().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("register failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	tok, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		} else {
			h.logger.Error().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("login failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

// Me returns the stored record for the identity the auth middleware attached.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claim := middleware.UserClaim(r.Context())

	user, err := h.authService.Profile(r.Context(), claim.ID)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", middleware.GetRequestID(r.Context())).Msg("profile lookup failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}
