package repository

import (
	"context"
	"testing"

	"movie-catalog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieFindAllHidesDrafts(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	createMovie(t, db, &models.Movie{Title: "Published", Draft: false})
	createMovie(t, db, &models.Movie{Title: "Hidden", Draft: true})

	movies, total, err := repo.FindAll(ctx, MovieFilter{}, 1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, movies, 1)
	assert.Equal(t, "Published", movies[0].Title)

	movies, total, err = repo.FindAll(ctx, MovieFilter{IncludeDrafts: true}, 1, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, movies, 2)
}

func TestMovieFindByIDDraftVisibility(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	draft := createMovie(t, db, &models.Movie{Title: "Unreleased", Draft: true})

	_, err := repo.FindByID(ctx, draft.ID, false)
	require.ErrorIs(t, err, ErrNotFound)

	movie, err := repo.FindByID(ctx, draft.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Unreleased", movie.Title)
}

func TestMovieFindAllTitleFilterIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	createMovie(t, db, &models.Movie{Title: "The Green Mile"})
	createMovie(t, db, &models.Movie{Title: "Interstellar"})

	movies, total, err := repo.FindAll(ctx, MovieFilter{Title: "GREEN"}, 1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "The Green Mile", movies[0].Title)
}

func TestMovieFindAllCategoryFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	drama := &models.Category{Name: "Drama"}
	comedy := &models.Category{Name: "Comedy"}
	require.NoError(t, db.Create(drama).Error)
	require.NoError(t, db.Create(comedy).Error)

	createMovie(t, db, &models.Movie{Title: "Sad Movie", CategoryID: &drama.ID})
	createMovie(t, db, &models.Movie{Title: "Funny Movie", CategoryID: &comedy.ID})
	createMovie(t, db, &models.Movie{Title: "Uncategorized"})

	movies, total, err := repo.FindAll(ctx, MovieFilter{Category: "dra"}, 1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Sad Movie", movies[0].Title)
	require.NotNil(t, movies[0].Category)
	assert.Equal(t, "Drama", movies[0].Category.Name)
}

func TestMovieFindAllYearFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	createMovie(t, db, &models.Movie{Title: "Old", YearOfRelease: 1994})
	createMovie(t, db, &models.Movie{Title: "New", YearOfRelease: 2019})

	movies, total, err := repo.FindAll(ctx, MovieFilter{YearOfRelease: 1994}, 1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	assert.Equal(t, "Old", movies[0].Title)
}

func TestMovieFindAllGenreFilterAnyMatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	horror := models.Genre{Name: "Horror"}
	scifi := models.Genre{Name: "Sci-Fi"}
	require.NoError(t, db.Create(&horror).Error)
	require.NoError(t, db.Create(&scifi).Error)

	scary := createMovie(t, db, &models.Movie{Title: "Scary"})
	space := createMovie(t, db, &models.Movie{Title: "Space"})
	createMovie(t, db, &models.Movie{Title: "Plain"})
	require.NoError(t, db.Model(scary).Association("Genres").Append(&horror))
	require.NoError(t, db.Model(space).Association("Genres").Append(&scifi))

	movies, total, err := repo.FindAll(ctx, MovieFilter{Genres: []string{"horror", "sci-fi"}}, 1, 5)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	titles := []string{movies[0].Title, movies[1].Title}
	assert.ElementsMatch(t, []string{"Scary", "Space"}, titles)
}

func TestMovieFindAllPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		createMovie(t, db, &models.Movie{Title: title})
	}

	movies, total, err := repo.FindAll(ctx, MovieFilter{}, 1, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	assert.Len(t, movies, 5)
	assert.Equal(t, "A", movies[0].Title)

	movies, total, err = repo.FindAll(ctx, MovieFilter{}, 2, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	require.Len(t, movies, 2)
	assert.Equal(t, "F", movies[0].Title)

	// Pages past the end are empty, not an error.
	movies, _, err = repo.FindAll(ctx, MovieFilter{}, 5, 5)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieAverageRatingAnnotation(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	rated := createMovie(t, db, &models.Movie{Title: "Rated"})
	unrated := createMovie(t, db, &models.Movie{Title: "Unrated"})

	for i, value := range []int{2, 4, 6} {
		user := createUser(t, db, string(rune('a'+i))+"@example.com")
		rate(t, db, user.ID, rated.ID, value)
	}

	movie, err := repo.FindByID(ctx, rated.ID, false)
	require.NoError(t, err)
	require.NotNil(t, movie.AverageRating)
	assert.InDelta(t, 4.0, *movie.AverageRating, 0.001)

	movie, err = repo.FindByID(ctx, unrated.ID, false)
	require.NoError(t, err)
	assert.Nil(t, movie.AverageRating)
}

func TestMovieDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	genre := models.Genre{Name: "Thriller"}
	require.NoError(t, db.Create(&genre).Error)

	movie := createMovie(t, db, &models.Movie{Title: "Doomed"})
	require.NoError(t, db.Model(movie).Association("Genres").Append(&genre))
	require.NoError(t, db.Create(&models.MovieFrame{Title: "Still", MovieID: movie.ID}).Error)

	user := createUser(t, db, "viewer@example.com")
	rate(t, db, user.ID, movie.ID, 7)
	require.NoError(t, db.Create(&models.Review{UserID: user.ID, MovieID: movie.ID, Text: "ok"}).Error)

	require.NoError(t, repo.Delete(ctx, movie.ID))

	_, err := repo.FindByID(ctx, movie.ID, true)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	for _, model := range []interface{}{&models.MovieFrame{}, &models.Rating{}, &models.Review{}} {
		require.NoError(t, db.Model(model).Where("movie_id = ?", movie.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM movie_genres WHERE movie_id = ?", movie.ID).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestMoviePartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := createMovie(t, db, &models.Movie{Title: "Before", Draft: true})

	require.NoError(t, repo.PartialUpdate(ctx, movie.ID, map[string]interface{}{
		"title": "After",
		"draft": false,
	}))

	updated, err := repo.FindByID(ctx, movie.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.False(t, updated.Draft)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	good := createMovie(t, db, &models.Movie{Title: "Good"})
	bad := createMovie(t, db, &models.Movie{Title: "Bad"})
	createMovie(t, db, &models.Movie{Title: "WIP", Draft: true})

	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")
	rate(t, db, alice.ID, good.ID, 9)
	rate(t, db, bob.ID, good.ID, 7)
	rate(t, db, alice.ID, bad.ID, 2)

	require.NoError(t, db.Create(&models.Review{UserID: alice.ID, MovieID: good.ID, Text: "great"}).Error)

	stats, err := repo.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalMovies)
	assert.EqualValues(t, 1, stats.DraftMovies)
	assert.EqualValues(t, 3, stats.TotalRatings)
	assert.EqualValues(t, 1, stats.TotalReviews)
	require.NotNil(t, stats.AverageRating)
	assert.InDelta(t, 6.0, *stats.AverageRating, 0.001)
	require.NotEmpty(t, stats.TopRated)
	assert.Equal(t, "Good", stats.TopRated[0].Title)
}
