package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ecoroute/ecoroute/internal/api/middleware"
	"github.com/ecoroute/ecoroute/internal/api/models"
	"github.com/ecoroute/ecoroute/internal/api/response"
	"github.com/ecoroute/ecoroute/internal/auth"
)

// AuthHandler handles account and session endpoints.
type AuthHandler struct {
	authService *auth.Service
	validate    *validator.Validate
	secure      bool
}

// NewAuthHandler creates a new AuthHandler. secure controls the Secure
// flag on session cookies and should be true behind TLS.
func NewAuthHandler(authService *auth.Service, secure bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
		secure:      secure,
	}
}

// Signup handles POST /api/signup - account creation.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, models.CodeMissingFields, "invalid JSON body", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, r, models.CodeMissingFields, "name, email and password are required", fieldErrors(err))
		return
	}

	_, token, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			response.Conflict(w, r, models.CodeEmailExists, "email already registered")
			return
		}
		response.InternalError(w, r, "signup failed")
		return
	}

	h.setSessionCookie(w, token)
	response.JSON(w, r, http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Login handles POST /api/login - credential verification.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, models.CodeMissingFields, "invalid JSON body", nil)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, r, models.CodeMissingFields, "email and password are required", fieldErrors(err))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Unauthorized(w, r, models.CodeInvalidCredentials, "invalid email or password")
			return
		}
		response.InternalError(w, r, "login failed")
		return
	}

	h.setSessionCookie(w, token)
	response.JSON(w, r, http.StatusOK, models.StatusResponse{Status: "ok", Name: user.Name})
}

// Logout handles POST /api/logout - session teardown. Always succeeds,
// even without an active session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	response.JSON(w, r, http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Profile handles GET /api/profile - the authenticated account.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())
	if session == nil {
		response.Unauthorized(w, r, models.CodeUnauthenticated, "no session")
		return
	}

	user, err := h.authService.Profile(r.Context(), session.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			response.Unauthorized(w, r, models.CodeUnauthenticated, "account no longer exists")
			return
		}
		response.InternalError(w, r, "profile lookup failed")
		return
	}

	response.JSON(w, r, http.StatusOK, models.ProfileResponse{ID: user.ID, Name: user.Name})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionExpiry.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// fieldErrors converts validator errors into API field errors.
func fieldErrors(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{
			Field:   fe.Field(),
			Message: "failed validation: " + fe.Tag(),
			Code:    fe.Tag(),
		})
	}
	return out
}
