package handlers_test

import (
	"net/http"
	"testing"

	"movie-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMoviesHidesDraftsFromAnonymous(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Public"}).Error)
	require.NoError(t, env.db.Create(&models.Movie{Title: "Hidden", Draft: true}).Error)

	resp := env.request(t, http.MethodGet, "/api/v1/movies/", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Public", data[0].(map[string]interface{})["title"])

	admin := env.token(t, "admin@example.com", true)
	resp = env.request(t, http.MethodGet, "/api/v1/movies/", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["data"].([]interface{}), 2)
}

func TestListMoviesPaginationDefaultsAndCap(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 8; i++ {
		require.NoError(t, env.db.Create(&models.Movie{Title: string(rune('A' + i))}).Error)
	}

	// Default page size is 5.
	resp := env.request(t, http.MethodGet, "/api/v1/movies/", "", nil)
	body := decodeBody(t, resp)
	assert.Len(t, body["data"].([]interface{}), 5)

	meta := body["meta"].(map[string]interface{})
	assert.EqualValues(t, 8, meta["total"])
	assert.EqualValues(t, 5, meta["limit"])
	assert.Equal(t, true, meta["has_next"])

	// Requests above the cap clamp to 100 rather than failing.
	resp = env.request(t, http.MethodGet, "/api/v1/movies/?page_size=5000", "", nil)
	body = decodeBody(t, resp)
	meta = body["meta"].(map[string]interface{})
	assert.EqualValues(t, 100, meta["limit"])

	// Out-of-range pages return an empty list, not an error.
	resp = env.request(t, http.MethodGet, "/api/v1/movies/?page=99", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Empty(t, body["data"])
}

func TestGetMovieDraftReturns404ForPublic(t *testing.T) {
	env := newTestEnv(t)

	draft := &models.Movie{Title: "Secret", Draft: true}
	require.NoError(t, env.db.Create(draft).Error)

	resp := env.request(t, http.MethodGet, "/api/v1/movies/1", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	admin := env.token(t, "admin@example.com", true)
	resp = env.request(t, http.MethodGet, "/api/v1/movies/1", admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateMovieRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	payload := map[string]interface{}{"title": "New Movie"}

	resp := env.request(t, http.MethodPost, "/api/v1/movies/", "", payload)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	viewer := env.token(t, "viewer@example.com", false)
	resp = env.request(t, http.MethodPost, "/api/v1/movies/", viewer, payload)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin := env.token(t, "admin@example.com", true)
	resp = env.request(t, http.MethodPost, "/api/v1/movies/", admin, payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateMovieValidatesBody(t *testing.T) {
	env := newTestEnv(t)
	admin := env.token(t, "admin@example.com", true)

	// Missing required title.
	resp := env.request(t, http.MethodPost, "/api/v1/movies/", admin, map[string]interface{}{"tagline": "no title"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown category id.
	resp = env.request(t, http.MethodPost, "/api/v1/movies/", admin, map[string]interface{}{"title": "Bad", "category": 42})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Malformed premiere date.
	resp = env.request(t, http.MethodPost, "/api/v1/movies/", admin, map[string]interface{}{"title": "Bad", "world_premiere": "not-a-date"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPatchMovie(t *testing.T) {
	env := newTestEnv(t)
	admin := env.token(t, "admin@example.com", true)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Before", Draft: true}).Error)

	resp := env.request(t, http.MethodPatch, "/api/v1/movies/1", admin, map[string]interface{}{"draft": false})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Now public.
	resp = env.request(t, http.MethodGet, "/api/v1/movies/1", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Before", body["data"].(map[string]interface{})["title"])
}

func TestDeleteMovie(t *testing.T) {
	env := newTestEnv(t)
	admin := env.token(t, "admin@example.com", true)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Doomed"}).Error)

	resp := env.request(t, http.MethodDelete, "/api/v1/movies/1", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/v1/movies/1", admin, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardStatsRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/v1/dashboard/stats", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	viewer := env.token(t, "viewer@example.com", false)
	resp = env.request(t, http.MethodGet, "/api/v1/dashboard/stats", viewer, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin := env.token(t, "admin@example.com", true)
	resp = env.request(t, http.MethodGet, "/api/v1/dashboard/stats", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Contains(t, data, "total_movies")
	assert.Contains(t, data, "top_rated")
}
