package waterpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/aquarealty/apperror"
)

// WaterpointHandlers provides the HTTP handlers mounted under /waterpoints.
type WaterpointHandlers struct {
	store *Store
}

// NewWaterpointHandlers creates WaterpointHandlers.
func NewWaterpointHandlers(store *Store) *WaterpointHandlers {
	return &WaterpointHandlers{store: store}
}

// RegisterRoutes mounts the waterpoint endpoints on router.
func (h *WaterpointHandlers) RegisterRoutes(router chi.Router) {
	router.Post("/", h.HandleCreate())
	router.Get("/", h.HandleList())
	router.Get("/{id}", h.HandleGet())
	router.Delete("/{id}", h.HandleDelete())
}

// HandleCreate godoc
// @Summary Create a waterpoint
// @Tags Waterpoints
// @Accept json
// @Produce json
// @Param body body waterpoints.CreateWaterpointRequest true "Waterpoint to create"
// @Success 201 {object} models.Waterpoint "Created"
// @Header 201 {string} Location "Endpoint of the created waterpoint"
// @Failure 400 {object} apperror.ErrorResponse "Body is not JSON"
// @Failure 406 {object} apperror.ErrorResponse "Error creating waterpoint"
// @Router /waterpoints [post]
func (h *WaterpointHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWaterpointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		point, err := h.store.Create(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/waterpoints/%d", point.ID))
		apperror.WriteJSON(w, http.StatusCreated, point)
	}
}

// HandleList godoc
// @Summary Get all waterpoints
// @Tags Waterpoints
// @Produce json
// @Success 200 {array} models.Waterpoint
// @Router /waterpoints [get]
func (h *WaterpointHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := h.store.List(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, points)
	}
}

// HandleGet godoc
// @Summary Get a waterpoint by id
// @Tags Waterpoints
// @Produce json
// @Param id path int true "Waterpoint id"
// @Success 200 {object} models.Waterpoint
// @Failure 404 "Waterpoint not found"
// @Router /waterpoints/{id} [get]
func (h *WaterpointHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := apperror.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		point, err := h.store.Get(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, point)
	}
}

// HandleDelete godoc
// @Summary Delete a waterpoint
// @Tags Waterpoints
// @Param id path int true "Waterpoint id"
// @Success 200 "Deleted"
// @Failure 404 "Waterpoint not found"
// @Router /waterpoints/{id} [delete]
func (h *WaterpointHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := apperror.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		removed, err := h.store.Delete(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		if !removed {
			apperror.WriteError(w, r, apperror.NewNotFoundError("waterpoint not found", nil))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
