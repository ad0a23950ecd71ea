package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	FindStarByValue(ctx context.Context, value int) (*models.RatingStar, error)
	FindStars(ctx context.Context) ([]models.RatingStar, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uint) (*models.Rating, error)
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
	ListByMovie(ctx context.Context, movieID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *ratingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *ratingRepository) FindStarByValue(ctx context.Context, value int) (*models.RatingStar, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var star models.RatingStar
	err := r.db.WithContext(ctx).Where("value = ?", value).First(&star).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &star, nil
}

func (r *ratingRepository) FindStars(ctx context.Context) ([]models.RatingStar, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stars []models.RatingStar
	err := r.db.WithContext(ctx).Order("value DESC").Find(&stars).Error
	return stars, err
}

func (r *ratingRepository) FindByUserAndMovie(ctx context.Context, userID, movieID uint) (*models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rating models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) ListByMovie(ctx context.Context, movieID uint) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Preload("Star").
		Preload("User").
		Where("movie_id = ?", movieID).
		Find(&ratings).Error
	return ratings, err
}
