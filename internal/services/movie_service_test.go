package services

import (
	"context"
	"testing"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovieService(t *testing.T) (MovieService, *database.Database, *fakeStorage) {
	t.Helper()
	db := newTestDB(t)
	storage := newFakeStorage()
	movieRepo := repository.NewMovieRepository(db)
	reviews := NewReviewService(repository.NewReviewRepository(db), movieRepo, testLogger())
	svc := NewMovieService(
		movieRepo,
		repository.NewCategoryRepository(db),
		repository.NewGenreRepository(db),
		repository.NewActorRepository(db),
		repository.NewDirectorRepository(db),
		reviews,
		storage,
		testLogger(),
	)
	return svc, db, storage
}

func TestCreateMovieWiresRelations(t *testing.T) {
	svc, db, _ := newMovieService(t)
	ctx := context.Background()

	category := &models.Category{Name: "Drama"}
	genre := &models.Genre{Name: "Prison"}
	actor := &models.Actor{Name: "Tim Robbins"}
	director := &models.Director{Name: "Frank Darabont"}
	require.NoError(t, db.Create(category).Error)
	require.NoError(t, db.Create(genre).Error)
	require.NoError(t, db.Create(actor).Error)
	require.NoError(t, db.Create(director).Error)

	movie, err := svc.CreateMovie(ctx, MovieInput{
		Title:         "The Shawshank Redemption",
		YearOfRelease: 1994,
		CategoryID:    &category.ID,
		GenreIDs:      []uint{genre.ID},
		ActorIDs:      []uint{actor.ID},
		DirectorIDs:   []uint{director.ID},
	})
	require.NoError(t, err)

	detail, err := svc.GetMovie(ctx, movie.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Drama", detail.Category)
	assert.Equal(t, []string{"Prison"}, detail.Genres)
	require.Len(t, detail.Actors, 1)
	assert.Equal(t, "Tim Robbins", detail.Actors[0].Name)
	require.Len(t, detail.Directors, 1)
	assert.Equal(t, "Frank Darabont", detail.Directors[0].Name)
	assert.Nil(t, detail.AverageRating)
	assert.Empty(t, detail.Reviews)
}

func TestCreateMovieRejectsUnknownRelations(t *testing.T) {
	svc, _, _ := newMovieService(t)
	ctx := context.Background()

	_, err := svc.CreateMovie(ctx, MovieInput{Title: "Broken", GenreIDs: []uint{9999}})
	require.ErrorIs(t, err, ErrUnknownRelation)

	missing := uint(9999)
	_, err = svc.CreateMovie(ctx, MovieInput{Title: "Broken", CategoryID: &missing})
	require.ErrorIs(t, err, ErrUnknownRelation)
}

func TestCreateMovieRequiresTitle(t *testing.T) {
	svc, _, _ := newMovieService(t)

	_, err := svc.CreateMovie(context.Background(), MovieInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateMovieReplacesRelations(t *testing.T) {
	svc, db, _ := newMovieService(t)
	ctx := context.Background()

	horror := &models.Genre{Name: "Horror"}
	comedy := &models.Genre{Name: "Comedy"}
	require.NoError(t, db.Create(horror).Error)
	require.NoError(t, db.Create(comedy).Error)

	movie, err := svc.CreateMovie(ctx, MovieInput{Title: "Shifting", GenreIDs: []uint{horror.ID}})
	require.NoError(t, err)

	_, err = svc.UpdateMovie(ctx, movie.ID, MovieInput{Title: "Shifting", GenreIDs: []uint{comedy.ID}})
	require.NoError(t, err)

	detail, err := svc.GetMovie(ctx, movie.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Comedy"}, detail.Genres)
}

func TestPatchMovieUpdatesOnlyGivenFields(t *testing.T) {
	svc, _, _ := newMovieService(t)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, MovieInput{
		Title:   "Original",
		Tagline: "keep me",
		Draft:   true,
	})
	require.NoError(t, err)

	title := "Renamed"
	draft := false
	patched, err := svc.PatchMovie(ctx, movie.ID, MoviePatch{Title: &title, Draft: &draft})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", patched.Title)
	assert.Equal(t, "keep me", patched.Tagline)
	assert.False(t, patched.Draft)
}

func TestGetMovieIncludesReviewTree(t *testing.T) {
	svc, db, _ := newMovieService(t)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, MovieInput{Title: "Discussed"})
	require.NoError(t, err)

	alice := createUser(t, db, "alice@example.com")
	bob := createUser(t, db, "bob@example.com")

	reviews := NewReviewService(repository.NewReviewRepository(db), repository.NewMovieRepository(db), testLogger())
	top, err := reviews.Create(ctx, alice, movie.ID, "loved it", nil)
	require.NoError(t, err)
	_, err = reviews.Create(ctx, bob, movie.ID, "same", &top.ID)
	require.NoError(t, err)

	detail, err := svc.GetMovie(ctx, movie.ID, false)
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "loved it", detail.Reviews[0].Text)
	require.Len(t, detail.Reviews[0].Children, 1)
	assert.Equal(t, "same", detail.Reviews[0].Children[0].Text)
}

func TestGetMovieHidesDraftsFromPublic(t *testing.T) {
	svc, _, _ := newMovieService(t)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, MovieInput{Title: "Secret", Draft: true})
	require.NoError(t, err)

	_, err = svc.GetMovie(ctx, movie.ID, false)
	require.ErrorIs(t, err, repository.ErrNotFound)

	detail, err := svc.GetMovie(ctx, movie.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "Secret", detail.Title)
}

func TestAttachPosterStoresAndLinks(t *testing.T) {
	svc, _, storage := newMovieService(t)
	ctx := context.Background()

	movie, err := svc.CreateMovie(ctx, MovieInput{Title: "Pictured"})
	require.NoError(t, err)

	url, err := svc.AttachPoster(ctx, movie.ID, "poster.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, url, "movies/")

	detail, err := svc.GetMovie(ctx, movie.ID, false)
	require.NoError(t, err)
	assert.Equal(t, url, detail.Poster)

	path, data := storage.only(t)
	assert.Contains(t, url, path)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestCreateFrameRequiresMovie(t *testing.T) {
	svc, _, _ := newMovieService(t)
	ctx := context.Background()

	_, err := svc.CreateFrame(ctx, FrameInput{Title: "Still", MovieID: 9999})
	require.ErrorIs(t, err, ErrUnknownRelation)

	movie, err := svc.CreateMovie(ctx, MovieInput{Title: "Framed"})
	require.NoError(t, err)

	frame, err := svc.CreateFrame(ctx, FrameInput{Title: "Still", MovieID: movie.ID})
	require.NoError(t, err)
	assert.Equal(t, movie.ID, frame.MovieID)
}
