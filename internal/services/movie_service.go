package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieInput is the full set of writable movie fields plus association ids.
type MovieInput struct {
	Title          string
	Tagline        string
	Description    string
	YearOfRelease  int
	Country        string
	WorldPremiere  *time.Time
	Budget         int64
	FeesInTheUSA   int64
	FeesInTheWorld int64
	Draft          bool
	CategoryID     *uint
	DirectorIDs    []uint
	ActorIDs       []uint
	GenreIDs       []uint
}

// MoviePatch carries optional fields for a partial update; nil means "leave
// as is".
type MoviePatch struct {
	Title          *string
	Tagline        *string
	Description    *string
	YearOfRelease  *int
	Country        *string
	WorldPremiere  *time.Time
	Budget         *int64
	FeesInTheUSA   *int64
	FeesInTheWorld *int64
	Draft          *bool
	CategoryID     *uint
}

type FrameInput struct {
	Title       string
	Description string
	MovieID     uint
}

type MovieService interface {
	CreateMovie(ctx context.Context, in MovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, id uint, in MovieInput) (*models.Movie, error)
	PatchMovie(ctx context.Context, id uint, patch MoviePatch) (*models.Movie, error)
	DeleteMovie(ctx context.Context, id uint) error
	GetMovie(ctx context.Context, id uint, includeDrafts bool) (*models.MovieDetail, error)
	ListMovies(ctx context.Context, filter repository.MovieFilter, page, pageSize int) ([]models.MovieListItem, int64, error)
	AttachPoster(ctx context.Context, id uint, filename string, data []byte, contentType string) (string, error)

	CreateFrame(ctx context.Context, in FrameInput) (*models.MovieFrame, error)
	AttachFrameImage(ctx context.Context, frameID uint, filename string, data []byte, contentType string) (string, error)

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type movieService struct {
	repo         repository.MovieRepository
	categoryRepo repository.CategoryRepository
	genreRepo    repository.GenreRepository
	actorRepo    repository.ActorRepository
	directorRepo repository.DirectorRepository
	reviews      ReviewService
	storage      ObjectStorage
	logger       *logrus.Logger
}

func NewMovieService(
	repo repository.MovieRepository,
	categoryRepo repository.CategoryRepository,
	genreRepo repository.GenreRepository,
	actorRepo repository.ActorRepository,
	directorRepo repository.DirectorRepository,
	reviews ReviewService,
	storage ObjectStorage,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		repo:         repo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		actorRepo:    actorRepo,
		directorRepo: directorRepo,
		reviews:      reviews,
		storage:      storage,
		logger:       logger,
	}
}

func (s *movieService) CreateMovie(ctx context.Context, in MovieInput) (*models.Movie, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("%w: movie title is required", ErrInvalidInput)
	}

	directors, actors, genres, err := s.resolveRelations(ctx, &in)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:          in.Title,
		Tagline:        in.Tagline,
		Description:    in.Description,
		YearOfRelease:  in.YearOfRelease,
		Country:        in.Country,
		WorldPremiere:  in.WorldPremiere,
		Budget:         in.Budget,
		FeesInTheUSA:   in.FeesInTheUSA,
		FeesInTheWorld: in.FeesInTheWorld,
		Draft:          in.Draft,
		CategoryID:     in.CategoryID,
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAssociations(ctx, movie, directors, actors, genres); err != nil {
		return nil, err
	}

	return s.reloadMovie(ctx, movie.ID)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, in MovieInput) (*models.Movie, error) {
	existing, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}

	directors, actors, genres, err := s.resolveRelations(ctx, &in)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Tagline = in.Tagline
	existing.Description = in.Description
	existing.YearOfRelease = in.YearOfRelease
	existing.Country = in.Country
	existing.WorldPremiere = in.WorldPremiere
	existing.Budget = in.Budget
	existing.FeesInTheUSA = in.FeesInTheUSA
	existing.FeesInTheWorld = in.FeesInTheWorld
	existing.Draft = in.Draft
	existing.CategoryID = in.CategoryID

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAssociations(ctx, existing, directors, actors, genres); err != nil {
		return nil, err
	}

	return s.reloadMovie(ctx, id)
}

func (s *movieService) PatchMovie(ctx context.Context, id uint, patch MoviePatch) (*models.Movie, error) {
	if _, err := s.repo.FindByID(ctx, id, true); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Tagline != nil {
		fields["tagline"] = *patch.Tagline
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.YearOfRelease != nil {
		fields["year_of_release"] = *patch.YearOfRelease
	}
	if patch.Country != nil {
		fields["country"] = *patch.Country
	}
	if patch.WorldPremiere != nil {
		fields["world_premiere"] = *patch.WorldPremiere
	}
	if patch.Budget != nil {
		fields["budget"] = *patch.Budget
	}
	if patch.FeesInTheUSA != nil {
		fields["fees_in_the_usa"] = *patch.FeesInTheUSA
	}
	if patch.FeesInTheWorld != nil {
		fields["fees_in_the_world"] = *patch.FeesInTheWorld
	}
	if patch.Draft != nil {
		fields["draft"] = *patch.Draft
	}
	if patch.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *patch.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: category %d", ErrUnknownRelation, *patch.CategoryID)
			}
			return nil, err
		}
		fields["category_id"] = *patch.CategoryID
	}

	if len(fields) > 0 {
		if err := s.repo.PartialUpdate(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.reloadMovie(ctx, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return err
	}

	if existing.Poster != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, existing.Poster); err != nil {
			s.logger.WithError(err).Warn("Failed to delete poster from storage")
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *movieService) GetMovie(ctx context.Context, id uint, includeDrafts bool) (*models.MovieDetail, error) {
	movie, err := s.repo.FindByID(ctx, id, includeDrafts)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.TreeForMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.MovieDetail{
		ID:             movie.ID,
		Title:          movie.Title,
		Tagline:        movie.Tagline,
		Description:    movie.Description,
		Poster:         movie.Poster,
		YearOfRelease:  movie.YearOfRelease,
		Country:        movie.Country,
		WorldPremiere:  movie.WorldPremiere,
		Budget:         movie.Budget,
		FeesInTheUSA:   movie.FeesInTheUSA,
		FeesInTheWorld: movie.FeesInTheWorld,
		AverageRating:  movie.AverageRating,
		Genres:         make([]string, 0, len(movie.Genres)),
		Directors:      make([]models.PersonListItem, 0, len(movie.Directors)),
		Actors:         make([]models.PersonListItem, 0, len(movie.Actors)),
		Frames:         movie.Frames,
		Ratings:        make([]models.RatingItem, 0, len(movie.Ratings)),
		Reviews:        reviews,
	}
	if detail.Frames == nil {
		detail.Frames = []models.MovieFrame{}
	}
	if movie.Category != nil {
		detail.Category = movie.Category.Name
	}
	for i := range movie.Genres {
		detail.Genres = append(detail.Genres, movie.Genres[i].Name)
	}
	for i := range movie.Directors {
		d := movie.Directors[i]
		detail.Directors = append(detail.Directors, models.PersonListItem{ID: d.ID, Name: d.Name, Image: d.Image})
	}
	for i := range movie.Actors {
		a := movie.Actors[i]
		detail.Actors = append(detail.Actors, models.PersonListItem{ID: a.ID, Name: a.Name, Image: a.Image})
	}
	for i := range movie.Ratings {
		r := movie.Ratings[i]
		item := models.RatingItem{}
		if r.User != nil {
			item.User = r.User.DisplayName()
		}
		if r.Star != nil {
			item.Star = r.Star.Value
		}
		detail.Ratings = append(detail.Ratings, item)
	}

	return detail, nil
}

func (s *movieService) ListMovies(ctx context.Context, filter repository.MovieFilter, page, pageSize int) ([]models.MovieListItem, int64, error) {
	movies, total, err := s.repo.FindAll(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.MovieListItem, 0, len(movies))
	for i := range movies {
		m := movies[i]
		item := models.MovieListItem{
			ID:            m.ID,
			Title:         m.Title,
			Tagline:       m.Tagline,
			Poster:        m.Poster,
			AverageRating: m.AverageRating,
		}
		if m.Category != nil {
			item.Category = m.Category.Name
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (s *movieService) AttachPoster(ctx context.Context, id uint, filename string, data []byte, contentType string) (string, error) {
	existing, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return "", err
	}

	objectPath := UploadPath("movies", id, filename)
	url, err := s.storage.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		return "", err
	}

	if existing.Poster != "" {
		if err := s.storage.Delete(ctx, existing.Poster); err != nil {
			s.logger.WithError(err).Warn("Failed to delete old poster from storage")
		}
	}

	if err := s.repo.SetPoster(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *movieService) CreateFrame(ctx context.Context, in FrameInput) (*models.MovieFrame, error) {
	if _, err := s.repo.FindByID(ctx, in.MovieID, true); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: movie %d", ErrUnknownRelation, in.MovieID)
		}
		return nil, err
	}

	frame := &models.MovieFrame{
		Title:       in.Title,
		Description: in.Description,
		MovieID:     in.MovieID,
	}
	if err := s.repo.CreateFrame(ctx, frame); err != nil {
		return nil, err
	}
	return frame, nil
}

func (s *movieService) AttachFrameImage(ctx context.Context, frameID uint, filename string, data []byte, contentType string) (string, error) {
	frame, err := s.repo.FindFrameByID(ctx, frameID)
	if err != nil {
		return "", err
	}

	objectPath := UploadPath("movie-frames", frame.ID, filename)
	url, err := s.storage.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		return "", err
	}

	if frame.Image != "" {
		if err := s.storage.Delete(ctx, frame.Image); err != nil {
			s.logger.WithError(err).Warn("Failed to delete old frame image from storage")
		}
	}

	if err := s.repo.SetFrameImage(ctx, frameID, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *movieService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.repo.GetDashboardStats(ctx)
}

// resolveRelations loads every referenced entity up front so a body pointing
// at a missing category, person or genre fails as a validation error instead
// of a broken association.
func (s *movieService) resolveRelations(ctx context.Context, in *MovieInput) ([]models.Director, []models.Actor, []models.Genre, error) {
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, nil, nil, fmt.Errorf("%w: category %d", ErrUnknownRelation, *in.CategoryID)
			}
			return nil, nil, nil, err
		}
	}

	directors, err := s.directorRepo.FindByIDs(ctx, in.DirectorIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(directors) != len(in.DirectorIDs) {
		return nil, nil, nil, fmt.Errorf("%w: one or more directors", ErrUnknownRelation)
	}

	actors, err := s.actorRepo.FindByIDs(ctx, in.ActorIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(actors) != len(in.ActorIDs) {
		return nil, nil, nil, fmt.Errorf("%w: one or more actors", ErrUnknownRelation)
	}

	genres, err := s.genreRepo.FindByIDs(ctx, in.GenreIDs)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(genres) != len(in.GenreIDs) {
		return nil, nil, nil, fmt.Errorf("%w: one or more genres", ErrUnknownRelation)
	}

	return directors, actors, genres, nil
}

func (s *movieService) reloadMovie(ctx context.Context, id uint) (*models.Movie, error) {
	return s.repo.FindByID(ctx, id, true)
}
