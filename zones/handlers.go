package zones

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/aquarealty/apperror"
)

// ZoneHandlers provides the HTTP handlers mounted under /zones.
type ZoneHandlers struct {
	store *Store
}

// NewZoneHandlers creates ZoneHandlers.
func NewZoneHandlers(store *Store) *ZoneHandlers {
	return &ZoneHandlers{store: store}
}

// RegisterRoutes mounts the zone endpoints on router.
func (h *ZoneHandlers) RegisterRoutes(router chi.Router) {
	router.Post("/", h.HandleCreate())
	router.Get("/", h.HandleList())
	router.Get("/{id}", h.HandleGet())
	router.Delete("/{id}", h.HandleDelete())
}

// HandleCreate godoc
// @Summary Create a zone
// @Tags Zones
// @Accept json
// @Produce json
// @Param body body zones.CreateZoneRequest true "Zone to create"
// @Success 201 {object} models.Zone "Created"
// @Header 201 {string} Location "Endpoint of the created zone"
// @Failure 400 {object} apperror.ErrorResponse "Body is not JSON"
// @Failure 406 {object} apperror.ErrorResponse "Error creating zone"
// @Router /zones [post]
func (h *ZoneHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateZoneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		zone, err := h.store.Create(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/zones/%d", zone.ID))
		apperror.WriteJSON(w, http.StatusCreated, zone)
	}
}

// HandleList godoc
// @Summary Get all zones
// @Tags Zones
// @Produce json
// @Success 200 {array} models.Zone
// @Router /zones [get]
func (h *ZoneHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := h.store.List(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, zones)
	}
}

// HandleGet godoc
// @Summary Get a zone by id
// @Tags Zones
// @Produce json
// @Param id path int true "Zone id"
// @Success 200 {object} models.Zone
// @Failure 404 "Zone not found"
// @Router /zones/{id} [get]
func (h *ZoneHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := apperror.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		zone, err := h.store.Get(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, zone)
	}
}

// HandleDelete godoc
// @Summary Delete a zone
// @Description Waterpoints in the zone are kept without a zone.
// @Tags Zones
// @Param id path int true "Zone id"
// @Success 200 "Deleted"
// @Failure 404 "Zone not found"
// @Router /zones/{id} [delete]
func (h *ZoneHandlers) HandleDelete() http.HandlerFunc {
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
			apperror.WriteError(w, r, apperror.NewNotFoundError("zone not found", nil))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
