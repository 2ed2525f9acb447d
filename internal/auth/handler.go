package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/concord-mediation/concord/internal/platform/httpx"
	"github.com/concord-mediation/concord/internal/shared"
)

// Handler wires HTTP endpoints for the login and token verification flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	authority *TokenAuthority
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, authority *TokenAuthority) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:    logger,
		service:   service,
		authority: authority,
		validator: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/users/login", h.handleLogin)
	r.With(RequireAuth(h.authority, h.logger)).Get("/users/verify-current", h.handleVerifyCurrent)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type profileResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RegisteredDate time.Time `json:"registeredDate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, shared.ErrInvalidCredentials) {
			h.logger.Error("login failed", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusOK, "login successful", loginResponse{
		Token: token,
		User: loginUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Status: user.Status,
		},
	})
}

func (h *Handler) handleVerifyCurrent(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), identity)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("verify current user", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.OK(w, http.StatusOK, "user verified", profileResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		RegisteredDate: user.RegisteredDate,
		Status:         user.Status,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	})
}
