package users

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

// Handler wires HTTP endpoints for user records.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers user routes on the provided router. The legacy
// /users/create path is an alias for POST /users.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/users", h.handleCreate)
	r.Post("/users/create", h.handleCreate)
	r.Get("/users", h.handleList)
	r.Get("/users/{id}", h.handleGet)
	r.Put("/users/{id}", h.handleUpdate)
	r.Delete("/users/{id}", h.handleDelete)
}

type createRequest struct {
	Name           string    `json:"name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Password       string    `json:"password" validate:"required"`
	RegisteredDate time.Time `json:"registeredDate" validate:"required"`
	Status         string    `json:"status" validate:"required"`
}

type updateRequest struct {
	Name           *string    `json:"name"`
	Email          *string    `json:"email"`
	Password       *string    `json:"password"`
	RegisteredDate *time.Time `json:"registeredDate"`
	Status         *string    `json:"status"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "all fields are required: name, email, password, registeredDate, status")
		return
	}

	user, err := h.service.Create(r.Context(), CreateInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		RegisteredDate: req.RegisteredDate,
		Status:         req.Status,
	})
	if err != nil {
		h.respondServiceError(w, "create user", err)
		return
	}

	httpx.OK(w, http.StatusCreated, "user created", user.Public())
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, "list users", err)
		return
	}
	public := make([]Public, 0, len(list))
	for _, user := range list {
		public = append(public, user.Public())
	}
	httpx.OK(w, http.StatusOK, "users retrieved", public)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, "get user", err)
		return
	}
	httpx.OK(w, http.StatusOK, "user found", user.Public())
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	in := UpdateInput{
		Name:           req.Name,
		Email:          req.Email,
		RegisteredDate: req.RegisteredDate,
		Status:         req.Status,
	}
	// An empty password means "leave it alone", matching create-time absence.
	if req.Password != nil && *req.Password != "" {
		in.Password = req.Password
	}

	user, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondServiceError(w, "update user", err)
		return
	}
	httpx.OK(w, http.StatusOK, "user updated", user.Public())
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, "delete user", err)
		return
	}
	httpx.OK(w, http.StatusOK, "user deleted", user.Public())
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound),
		errors.Is(err, shared.ErrConflict),
		errors.Is(err, shared.ErrValidation):
	default:
		h.logger.Error(op, slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
