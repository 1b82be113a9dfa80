package realties

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/aquarealty/apperror"
)

// RealtyHandlers provides the HTTP handlers mounted under /realties.
type RealtyHandlers struct {
	store *Store
}

// NewRealtyHandlers creates RealtyHandlers.
func NewRealtyHandlers(store *Store) *RealtyHandlers {
	return &RealtyHandlers{store: store}
}

// RegisterRoutes mounts the realty endpoints on router.
func (h *RealtyHandlers) RegisterRoutes(router chi.Router) {
	router.Post("/", h.HandleCreate())
	router.Get("/", h.HandleList())
	router.Get("/{id}", h.HandleGet())
	router.Delete("/{id}", h.HandleDelete())
}

// HandleCreate godoc
// @Summary Create a realty
// @Tags Realties
// @Accept json
// @Produce json
// @Param body body realties.CreateRealtyRequest true "Realty to create"
// @Success 201 {object} models.Realty "Created"
// @Header 201 {string} Location "Endpoint of the created realty"
// @Failure 400 {object} apperror.ErrorResponse "Body is not JSON"
// @Failure 406 {object} apperror.ErrorResponse "Error creating realty"
// @Router /realties [post]
func (h *RealtyHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRealtyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		realty, err := h.store.Create(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/realties/%d", realty.ID))
		apperror.WriteJSON(w, http.StatusCreated, realty)
	}
}

// HandleList godoc
// @Summary Get all realties
// @Tags Realties
// @Produce json
// @Success 200 {array} models.Realty
// @Router /realties [get]
func (h *RealtyHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		realties, err := h.store.List(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, realties)
	}
}

// HandleGet godoc
// @Summary Get a realty by id
// @Tags Realties
// @Produce json
// @Param id path int true "Realty id"
// @Success 200 {object} models.Realty
// @Failure 404 "Realty not found"
// @Router /realties/{id} [get]
func (h *RealtyHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := apperror.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		realty, err := h.store.Get(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, realty)
	}
}

// HandleDelete godoc
// @Summary Delete a realty
// @Description Zones of the realty are kept without a realty.
// @Tags Realties
// @Param id path int true "Realty id"
// @Success 200 "Deleted"
// @Failure 404 "Realty not found"
// @Router /realties/{id} [delete]
func (h *RealtyHandlers) HandleDelete() http.HandlerFunc {
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
			apperror.WriteError(w, r, apperror.NewNotFoundError("realty not found", nil))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
