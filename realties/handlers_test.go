package realties_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/user/aquarealty/db/dbtest"
	"github.com/user/aquarealty/models"
	"github.com/user/aquarealty/realties"
)

const casaPrincipal = `{
	"name": "Casa principal",
	"street": "Somewhere in Paris, France",
	"number": "12",
	"city": "Paris",
	"zipCode": "555-5555",
	"state": "-",
	"neighborhood": "Bairro Latino",
	"literCost": "15"
}`

func newRouter(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	gdb := dbtest.Open(t)
	r := chi.NewRouter()
	r.Route("/realties", realties.NewRealtyHandlers(realties.NewStore(gdb)).RegisterRoutes)
	return r, gdb
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRealtyLifecycle(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(router, http.MethodPost, "/realties", casaPrincipal)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created models.Realty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Casa principal", created.Name)
	assert.Equal(t, "15", created.LiterCost)
	assert.Nil(t, created.UserID)
	path := fmt.Sprintf("/realties/%d", created.ID)
	assert.Equal(t, path, rec.Header().Get("Location"))

	rec = do(router, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.Realty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Bairro Latino", fetched.Neighborhood)

	rec = do(router, http.MethodGet, "/realties", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Realty
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	rec = do(router, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteMissingRealty(t *testing.T) {
	router, _ := newRouter(t)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/realties/42", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodDelete, "/realties/abc", "").Code)
}

func TestCreateRealty_Errors(t *testing.T) {
	router, gdb := newRouter(t)

	t.Run("unknown owner", func(t *testing.T) {
		rec := do(router, http.MethodPost, "/realties", `{"name":"x","userId":999}`)
		assert.Equal(t, http.StatusNotAcceptable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation Error")
	})

	t.Run("known owner", func(t *testing.T) {
		owner := &models.User{Email: "owner@x.io", Password: "digest"}
		require.NoError(t, gdb.Create(owner).Error)

		rec := do(router, http.MethodPost, "/realties", fmt.Sprintf(`{"name":"x","userId":%d}`, owner.ID))
		require.Equal(t, http.StatusCreated, rec.Code)
		var created models.Realty
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		require.NotNil(t, created.UserID)
		assert.Equal(t, owner.ID, *created.UserID)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(router, http.MethodPost, "/realties", `[`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
