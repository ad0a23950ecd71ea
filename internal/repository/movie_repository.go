package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// avgRatingSubquery annotates a movie row with the mean of its star values.
// Movies without ratings get NULL, never zero.
const avgRatingSubquery = "(SELECT AVG(rating_stars.value) FROM ratings " +
	"JOIN rating_stars ON rating_stars.id = ratings.star_id " +
	"WHERE ratings.movie_id = movies.id)"

// MovieFilter carries the public listing filters. Substring matches are
// case-insensitive; Genres matches movies linked to any of the listed names.
type MovieFilter struct {
	Title         string
	Category      string
	YearOfRelease int
	Genres        []string
	IncludeDrafts bool
}

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	PartialUpdate(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint, includeDrafts bool) (*models.Movie, error)
	FindAll(ctx context.Context, filter MovieFilter, page, pageSize int) ([]models.Movie, int64, error)
	ReplaceAssociations(ctx context.Context, movie *models.Movie, directors []models.Director, actors []models.Actor, genres []models.Genre) error
	SetPoster(ctx context.Context, id uint, poster string) error

	CreateFrame(ctx context.Context, frame *models.MovieFrame) error
	FindFrameByID(ctx context.Context, id uint) (*models.MovieFrame, error)
	SetFrameImage(ctx context.Context, id uint, image string) error

	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Directors", "Actors", "Genres", "Frames", "Ratings", "Reviews").Save(movie).Error
}

func (r *movieRepository) PartialUpdate(ctx context.Context, id uint, fields map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the movie and everything whose lifecycle it bounds: frames,
// ratings, reviews and the many-to-many link rows. Foreign keys are disabled
// at migration time, so the cascade is done here in one transaction.
func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("movie_id = ?", id).Delete(&models.MovieFrame{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		for _, join := range []string{"movie_genres", "movie_actors", "movie_directors"} {
			if err := tx.Exec("DELETE FROM "+join+" WHERE movie_id = ?", id).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Movie{}, id).Error
	})
}

func (r *movieRepository) FindByID(ctx context.Context, id uint, includeDrafts bool) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).
		Select("movies.*, " + avgRatingSubquery + " AS average_rating").
		Preload("Category").
		Preload("Genres").
		Preload("Directors").
		Preload("Actors").
		Preload("Frames").
		Preload("Ratings.Star").
		Preload("Ratings.User")

	if !includeDrafts {
		query = query.Where("draft = ?", false)
	}

	var movie models.Movie
	err := query.First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter, page, pageSize int) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	if !filter.IncludeDrafts {
		query = query.Where("draft = ?", false)
	}

	// LOWER + LIKE instead of ILIKE keeps the filter portable across
	// postgres and the sqlite used in tests.
	if filter.Title != "" {
		query = query.Where("LOWER(movies.title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	if filter.Category != "" {
		query = query.Where("movies.category_id IN (SELECT id FROM categories WHERE LOWER(name) LIKE ?)",
			"%"+strings.ToLower(filter.Category)+"%")
	}
	if filter.YearOfRelease > 0 {
		query = query.Where("movies.year_of_release = ?", filter.YearOfRelease)
	}
	if len(filter.Genres) > 0 {
		names := make([]string, 0, len(filter.Genres))
		for _, g := range filter.Genres {
			names = append(names, strings.ToLower(strings.TrimSpace(g)))
		}
		query = query.Where("movies.id IN (SELECT movie_genres.movie_id FROM movie_genres "+
			"JOIN genres ON genres.id = movie_genres.genre_id WHERE LOWER(genres.name) IN ?)", names)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Select("movies.*, " + avgRatingSubquery + " AS average_rating").
		Preload("Category").
		Order("movies.title ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) ReplaceAssociations(ctx context.Context, movie *models.Movie, directors []models.Director, actors []models.Actor, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)
	if err := db.Model(movie).Association("Directors").Replace(directors); err != nil {
		return err
	}
	if err := db.Model(movie).Association("Actors").Replace(actors); err != nil {
		return err
	}
	return db.Model(movie).Association("Genres").Replace(genres)
}

func (r *movieRepository) SetPoster(ctx context.Context, id uint, poster string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("id = ?", id).Update("poster", poster).Error
}

func (r *movieRepository) CreateFrame(ctx context.Context, frame *models.MovieFrame) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(frame).Error
}

func (r *movieRepository) FindFrameByID(ctx context.Context, id uint) (*models.MovieFrame, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var frame models.MovieFrame
	err := r.db.WithContext(ctx).First(&frame, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &frame, nil
}

func (r *movieRepository) SetFrameImage(ctx context.Context, id uint, image string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.MovieFrame{}).Where("id = ?", id).Update("image", image).Error
}

func (r *movieRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats models.DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Movie{}).Count(&stats.TotalMovies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Movie{}).Where("draft = ?", true).Count(&stats.DraftMovies).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Rating{}).Count(&stats.TotalRatings).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Review{}).Count(&stats.TotalReviews).Error; err != nil {
		return nil, err
	}

	if stats.TotalRatings > 0 {
		var avg float64
		err := db.Model(&models.Rating{}).
			Select("AVG(rating_stars.value)").
			Joins("JOIN rating_stars ON rating_stars.id = ratings.star_id").
			Scan(&avg).Error
		if err != nil {
			return nil, err
		}
		stats.AverageRating = &avg
	}

	var top []models.Movie
	err := db.Model(&models.Movie{}).
		Select("movies.*, "+avgRatingSubquery+" AS average_rating").
		Preload("Category").
		Where("draft = ?", false).
		Where(avgRatingSubquery + " IS NOT NULL").
		Order("average_rating DESC").
		Limit(10).
		Find(&top).Error
	if err != nil {
		return nil, err
	}

	stats.TopRated = make([]models.MovieListItem, 0, len(top))
	for i := range top {
		item := models.MovieListItem{
			ID:            top[i].ID,
			Title:         top[i].Title,
			Tagline:       top[i].Tagline,
			Poster:        top[i].Poster,
			AverageRating: top[i].AverageRating,
		}
		if top[i].Category != nil {
			item.Category = top[i].Category.Name
		}
		stats.TopRated = append(stats.TopRated, item)
	}

	return &stats, nil
}
