package users

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/user/aquarealty/apperror"
	"github.com/user/aquarealty/auth"
)

// UserHandlers provides the HTTP handlers mounted under /users.
type UserHandlers struct {
	store       *Store
	login       *LoginService
	requireAuth func(http.Handler) http.Handler
}

// NewUserHandlers creates UserHandlers. requireAuth guards the update route.
func NewUserHandlers(store *Store, login *LoginService, requireAuth func(http.Handler) http.Handler) *UserHandlers {
	return &UserHandlers{store: store, login: login, requireAuth: requireAuth}
}

// RegisterRoutes mounts the user endpoints on router.
// The single {key} segment is an email for GET/PUT and a numeric id for DELETE.
func (h *UserHandlers) RegisterRoutes(router chi.Router) {
	router.Post("/", h.HandleCreate())
	router.Get("/", h.HandleList())
	router.Post("/login", h.HandleLogin())
	router.Get("/{key}", h.HandleGetByEmail())
	router.With(h.requireAuth).Put("/{key}", h.HandleUpdate())
	router.Delete("/{key}", h.HandleDelete())
}

// HandleCreate godoc
// @Summary Create a user
// @Description Registers a user. The password is stored as a bcrypt digest.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body users.CreateUserRequest true "User to create"
// @Success 201 {object} models.User "Created"
// @Header 201 {string} Location "Endpoint of the created user"
// @Failure 400 {object} apperror.ErrorResponse "Body is not JSON"
// @Failure 406 {object} apperror.ErrorResponse "Validation error, e.g. invalid email"
// @Failure 409 {object} apperror.ErrorResponse "Email already registered"
// @Router /users [post]
func (h *UserHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		user, err := h.store.Create(r.Context(), req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		w.Header().Set("Location", "/users/"+url.PathEscape(user.Email))
		apperror.WriteJSON(w, http.StatusCreated, user)
	}
}

// HandleList godoc
// @Summary Get all users
// @Description Lists users. Password digests are never included.
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (h *UserHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.store.List(r.Context())
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, users)
	}
}

// HandleGetByEmail godoc
// @Summary Get a user by email
// @Tags Users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} models.User
// @Failure 404 "User not found"
// @Router /users/{email} [get]
func (h *UserHandlers) HandleGetByEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.store.GetByEmail(r.Context(), chi.URLParam(r, "key"))
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleLogin godoc
// @Summary Login a user
// @Description Checks credentials and returns the user with a bearer token in the Authorization header.
// @Description An unknown email and a wrong password produce the same 404.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body users.LoginRequest true "Credentials"
// @Success 200 {object} models.User
// @Header 200 {string} Authorization "Signed bearer token"
// @Failure 400 {object} apperror.ErrorResponse "Body is not JSON"
// @Failure 404 "Invalid credentials"
// @Router /users/login [post]
func (h *UserHandlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		user, token, err := h.login.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}

		w.Header().Set("Authorization", token)
		apperror.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleUpdate godoc
// @Summary Update a user
// @Description Partially updates the authenticated user. Email changes are ignored; a new password is re-hashed.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Param body body users.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} apperror.ErrorResponse "Token belongs to another user"
// @Failure 404 "User not found"
// @Failure 406 {object} apperror.ErrorResponse "Validation error"
// @Router /users/{email} [put]
func (h *UserHandlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "key")

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}

		target, err := h.store.GetByEmail(r.Context(), email)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		callerID, ok := auth.UserIDFromContext(r.Context())
		if !ok || callerID != target.ID {
			apperror.WriteError(w, r, apperror.NewUnauthorizedError("cannot modify another user", nil))
			return
		}

		user, err := h.store.Update(r.Context(), email, req)
		if err != nil {
			apperror.WriteError(w, r, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleDelete godoc
// @Summary Delete a user
// @Description Deletes a user by id. Realties owned by the user are kept without an owner.
// @Tags Users
// @Param id path int true "User id"
// @Success 200 "Deleted"
// @Failure 404 "User not found"
// @Router /users/{id} [delete]
func (h *UserHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := apperror.ParseID(chi.URLParam(r, "key"))
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
			apperror.WriteError(w, r, apperror.NewNotFoundError("user not found", nil))
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
