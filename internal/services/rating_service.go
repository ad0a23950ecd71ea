package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type RatingService interface {
	// Rate records the user's star for a movie, replacing any previous one.
	Rate(ctx context.Context, user *models.User, movieID uint, starValue int) (*models.Rating, error)
	Stars(ctx context.Context) ([]models.RatingStar, error)
}

type ratingService struct {
	repo      repository.RatingRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewRatingService(repo repository.RatingRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

// Rate is a conditional upsert keyed on (user, movie): an existing row gets
// its star replaced, otherwise one is created. There is no unique constraint
// backing this at the storage layer, so two concurrent identical submissions
// from the same user can transiently produce two rows; the race is accepted
// and not corrected retroactively.
func (s *ratingService) Rate(ctx context.Context, user *models.User, movieID uint, starValue int) (*models.Rating, error) {
	star, err := s.repo.FindStarByValue(ctx, starValue)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownStar, starValue)
		}
		return nil, err
	}

	if _, err := s.movieRepo.FindByID(ctx, movieID, false); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: movie %d", ErrUnknownRelation, movieID)
		}
		return nil, err
	}

	rating, err := s.repo.FindByUserAndMovie(ctx, user.ID, movieID)
	switch {
	case err == nil:
		rating.StarID = star.ID
		if err := s.repo.Update(ctx, rating); err != nil {
			return nil, err
		}
	case errors.Is(err, repository.ErrNotFound):
		rating = &models.Rating{
			UserID:  user.ID,
			MovieID: movieID,
			StarID:  star.ID,
		}
		if err := s.repo.Create(ctx, rating); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movieID,
		"star":     star.Value,
	}).Info("Rating saved")

	rating.Star = star
	rating.User = user
	return rating, nil
}

func (s *ratingService) Stars(ctx context.Context) ([]models.RatingStar, error) {
	return s.repo.FindStars(ctx)
}
