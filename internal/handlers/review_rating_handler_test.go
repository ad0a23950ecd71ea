package handlers_test

import (
	"net/http"
	"testing"

	"movie-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewFlow(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, "alice@example.com", false)
	bob := env.token(t, "bob@example.com", false)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Discussed"}).Error)

	// Anonymous posting is rejected.
	resp := env.request(t, http.MethodPost, "/api/v1/reviews/", "", map[string]interface{}{
		"movie": 1, "text": "anon",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/v1/reviews/", alice, map[string]interface{}{
		"movie": 1, "text": "masterpiece",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Replying to your own review is rejected with the canonical message.
	resp = env.request(t, http.MethodPost, "/api/v1/reviews/", alice, map[string]interface{}{
		"movie": 1, "text": "me again", "parent": 1,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body["message"], "cannot comment on your own review")

	// Another user's reply lands under the parent.
	resp = env.request(t, http.MethodPost, "/api/v1/reviews/", bob, map[string]interface{}{
		"movie": 1, "text": "agreed", "parent": 1,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The movie detail carries the thread.
	resp = env.request(t, http.MethodGet, "/api/v1/movies/1", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	reviews := body["data"].(map[string]interface{})["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	children := reviews[0].(map[string]interface{})["children"].([]interface{})
	require.Len(t, children, 1)
	assert.Equal(t, "agreed", children[0].(map[string]interface{})["text"])
}

func TestCreateReviewRejectsCrossMovieParent(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, "alice@example.com", false)
	bob := env.token(t, "bob@example.com", false)

	require.NoError(t, env.db.Create(&models.Movie{Title: "First"}).Error)
	require.NoError(t, env.db.Create(&models.Movie{Title: "Second"}).Error)

	resp := env.request(t, http.MethodPost, "/api/v1/reviews/", alice, map[string]interface{}{
		"movie": 1, "text": "on the first",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/v1/reviews/", bob, map[string]interface{}{
		"movie": 2, "text": "wrong thread", "parent": 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteReviewRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, "alice@example.com", false)
	admin := env.token(t, "admin@example.com", true)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Discussed"}).Error)
	resp := env.request(t, http.MethodPost, "/api/v1/reviews/", alice, map[string]interface{}{
		"movie": 1, "text": "short-lived",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/api/v1/reviews/1", alice, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, "/api/v1/reviews/1", admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCreateRatingUpserts(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, "alice@example.com", false)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Rated"}).Error)

	resp := env.request(t, http.MethodPost, "/api/v1/ratings/", alice, map[string]interface{}{
		"movie": 1, "star": 4,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Rating again replaces instead of accumulating.
	resp = env.request(t, http.MethodPost, "/api/v1/ratings/", alice, map[string]interface{}{
		"movie": 1, "star": 9,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, env.db.Model(&models.Rating{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	resp = env.request(t, http.MethodGet, "/api/v1/movies/1", "", nil)
	body := decodeBody(t, resp)
	assert.EqualValues(t, 9, body["data"].(map[string]interface{})["average_rating"])
}

func TestCreateRatingValidation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.token(t, "alice@example.com", false)

	require.NoError(t, env.db.Create(&models.Movie{Title: "Rated"}).Error)

	// Star value outside the seeded scale.
	resp := env.request(t, http.MethodPost, "/api/v1/ratings/", alice, map[string]interface{}{
		"movie": 1, "star": 11,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Unknown movie.
	resp = env.request(t, http.MethodPost, "/api/v1/ratings/", alice, map[string]interface{}{
		"movie": 99, "star": 5,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Anonymous.
	resp = env.request(t, http.MethodPost, "/api/v1/ratings/", "", map[string]interface{}{
		"movie": 1, "star": 5,
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRatingStarsPublic(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/v1/ratings/stars", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["data"].([]interface{}), 10)
}
