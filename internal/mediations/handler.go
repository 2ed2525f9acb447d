package mediations

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

// Handler wires HTTP endpoints for mediation records.
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

// MountRoutes registers mediation routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/mediations", h.handleList)
	r.Post("/mediations", h.handleCreate)
	r.Get("/mediations/{id}", h.handleGet)
	r.Put("/mediations/{id}", h.handleUpdate)
	r.Delete("/mediations/{id}", h.handleDelete)
}

type createRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Status      string    `json:"status" validate:"required"`
}

type updateRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "all fields are required: name, description, date, status")
		return
	}

	mediation, err := h.service.Create(r.Context(), CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
	})
	if err != nil {
		h.respondServiceError(w, "create mediation", err)
		return
	}
	httpx.OK(w, http.StatusCreated, "mediation created", mediation)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, "list mediations", err)
		return
	}
	if list == nil {
		list = []Mediation{}
	}
	httpx.OK(w, http.StatusOK, "mediations retrieved", list)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	mediation, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, "get mediation", err)
		return
	}
	httpx.OK(w, http.StatusOK, "mediation found", mediation)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	mediation, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
	})
	if err != nil {
		h.respondServiceError(w, "update mediation", err)
		return
	}
	httpx.OK(w, http.StatusOK, "mediation updated", mediation)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	mediation, err := h.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, "delete mediation", err)
		return
	}
	httpx.OK(w, http.StatusOK, "mediation deleted", mediation)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	if !errors.Is(err, shared.ErrNotFound) && !errors.Is(err, shared.ErrValidation) {
		h.logger.Error(op, slog.Any("error", err))
	}
	httpx.RespondError(w, err)
}
