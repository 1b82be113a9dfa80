package users_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/aquarealty/auth"
	"github.com/user/aquarealty/config"
	"github.com/user/aquarealty/db/dbtest"
	"github.com/user/aquarealty/models"
	"github.com/user/aquarealty/users"
)

type userAPI struct {
	router http.Handler
	store  *users.Store
}

func newUserAPI(t *testing.T) *userAPI {
	t.Helper()

	hasher := auth.NewHasher(bcrypt.MinCost)
	issuer := auth.NewTokenIssuer(config.AuthConfig{
		JWTSecret:     "users-test-secret",
		TokenDuration: time.Hour,
		Issuer:        "aquarealty-test",
	})
	store := users.NewStore(dbtest.Open(t), hasher)
	login := users.NewLoginService(store, hasher, issuer)
	handlers := users.NewUserHandlers(store, login, auth.BearerMiddleware(issuer))

	r := chi.NewRouter()
	r.Route("/users", handlers.RegisterRoutes)
	return &userAPI{router: r, store: store}
}

func (a *userAPI) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *userAPI) register(t *testing.T, email, password string) models.User {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/users",
		fmt.Sprintf(`{"name":"n","address":"a","email":%q,"password":%q}`, email, password), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	return user
}

func (a *userAPI) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/users/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password), "")
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Header().Get("Authorization")
}

func TestCreateUserHandler(t *testing.T) {
	api := newUserAPI(t)

	t.Run("valid user", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/users",
			`{"name":"C. Auguste Dupin","address":"Paris","email":"augustedupin@email.com","password":"FirstDetective!"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/users/augustedupin@email.com", rec.Header().Get("Location"))
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "FirstDetective!")
	})

	t.Run("invalid email", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/users", `{"email":"not-an-email","password":"pw"}`, "")

		assert.Equal(t, http.StatusNotAcceptable, rec.Code)
		assert.JSONEq(t, `{"message":"Validation Error: invalid email"}`, rec.Body.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/users", `{"email":"augustedupin@email.com","password":"pw"}`, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/users", `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	api := newUserAPI(t)
	api.register(t, "a@a.a", "correct horse")

	t.Run("valid credentials", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/users/login", `{"email":"a@a.a","password":"correct horse"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Authorization"))
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "a@a.a", body["email"])
		assert.NotContains(t, body, "password")
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		wrong := api.do(t, http.MethodPost, "/users/login", `{"email":"a@a.a","password":"battery staple"}`, "")
		unknown := api.do(t, http.MethodPost, "/users/login", `{"email":"b@b.b","password":"correct horse"}`, "")

		assert.Equal(t, http.StatusNotFound, wrong.Code)
		assert.Equal(t, http.StatusNotFound, unknown.Code)
		assert.Equal(t, wrong.Body.String(), unknown.Body.String())
		assert.Empty(t, wrong.Header().Get("Authorization"))
	})

	t.Run("empty password", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/users/login", `{"email":"a@a.a","password":""}`, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetAndListHandlers(t *testing.T) {
	api := newUserAPI(t)
	api.register(t, "first@x.io", "pw")
	api.register(t, "second@x.io", "pw")

	rec := api.do(t, http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	var all []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = api.do(t, http.MethodGet, "/users/second@x.io", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var one models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, "second@x.io", one.Email)

	rec = api.do(t, http.MethodGet, "/users/nobody@x.io", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUpdateUserHandler(t *testing.T) {
	api := newUserAPI(t)
	api.register(t, "owner@x.io", "pw-owner")
	api.register(t, "other@x.io", "pw-other")
	ownerToken := api.login(t, "owner@x.io", "pw-owner")
	otherToken := api.login(t, "other@x.io", "pw-other")

	t.Run("missing token", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/users/owner@x.io", `{"name":"x"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token of another user", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/users/owner@x.io", `{"name":"x"}`, otherToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("own token", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/users/owner@x.io",
			`{"name":"Renamed","email":"hijack@x.io","password":"pw-new"}`, ownerToken)

		require.Equal(t, http.StatusOK, rec.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, "Renamed", user.Name)
		assert.Equal(t, "owner@x.io", user.Email)

		// The new password works, the old one does not.
		api.login(t, "owner@x.io", "pw-new")
		old := api.do(t, http.MethodPost, "/users/login", `{"email":"owner@x.io","password":"pw-owner"}`, "")
		assert.Equal(t, http.StatusNotFound, old.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/users/ghost@x.io", `{"name":"x"}`, ownerToken)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	api := newUserAPI(t)
	user := api.register(t, "gone@x.io", "pw")

	rec := api.do(t, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = api.do(t, http.MethodDelete, fmt.Sprintf("/users/%d", user.ID), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodDelete, "/users/not-a-number", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/users/gone@x.io", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
