package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/design-assistant/internal/api/middleware"
	"github.com/Rrens/design-assistant/internal/api/response"
	"github.com/Rrens/design-assistant/internal/domain"
	"github.com/Rrens/design-assistant/internal/service"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  *service.AuthService
	cookieName   string
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cookieName string, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "failed to register user")
		return
	}

	response.Created(w, map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login handles user login and sets the session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input domain.UserLogin
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessages(err))
		return
	}

	user, session, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalError(w, "failed to log in")
		return
	}

	h.setSessionCookie(w, session.Token)

	response.OK(w, map[string]any{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Logout revokes the session and clears the cookie; always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := middleware.GetAuth(r.Context())
	if auth.HadToken {
		if err := h.authService.Logout(r.Context(), auth.Token); err != nil {
			response.InternalError(w, "failed to log out")
			return
		}
		h.clearSessionCookie(w)
	}

	response.OK(w, map[string]any{"message": "logged out"})
}

// Session reports the current authentication state. An invalid cookie is
// cleared as a side effect.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	auth := middleware.GetAuth(r.Context())

	if !auth.Authenticated {
		if auth.HadToken {
			h.clearSessionCookie(w)
		}
		response.JSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), auth.UserID)
	if err != nil {
		response.InternalError(w, "failed to load user")
		return
	}
	if user == nil {
		// Session survived its user; treat the credential as stale.
		h.clearSessionCookie(w)
		response.JSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}

	response.OK(w, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"sessionId": auth.SessionID,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// validationMessages flattens validator errors into a field -> message
// map.
func validationMessages(err error) any {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make(map[string]string)
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages[e.Field()] = "field is required"
		case "email":
			messages[e.Field()] = "invalid email format"
		case "min":
			messages[e.Field()] = "must be at least " + e.Param() + " characters"
		case "max":
			messages[e.Field()] = "must be at most " + e.Param() + " characters"
		default:
			messages[e.Field()] = "validation failed on " + e.Tag()
		}
	}
	return messages
}
