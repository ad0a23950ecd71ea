package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type ReviewService interface {
	Create(ctx context.Context, user *models.User, movieID uint, text string, parentID *uint) (*models.Review, error)
	TreeForMovie(ctx context.Context, movieID uint) ([]models.ReviewNode, error)
	Delete(ctx context.Context, id uint) error
}

type reviewService struct {
	repo      repository.ReviewRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

func (s *reviewService) Create(ctx context.Context, user *models.User, movieID uint, text string, parentID *uint) (*models.Review, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID, false); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: movie %d", ErrUnknownRelation, movieID)
		}
		return nil, err
	}

	if parentID != nil {
		parent, err := s.repo.FindByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent review %d", ErrUnknownRelation, *parentID)
			}
			return nil, err
		}
		// A reply stays inside its movie's thread.
		if parent.MovieID != movieID {
			return nil, ErrParentMismatch
		}
		if parent.UserID == user.ID {
			return nil, ErrSelfReply
		}
	}

	review := &models.Review{
		UserID:   user.ID,
		MovieID:  movieID,
		Text:     text,
		ParentID: parentID,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id":  movieID,
		"review_id": review.ID,
	}).Info("Review created")

	review.User = user
	return review, nil
}

// TreeForMovie returns only parentless reviews at the top level, each
// carrying its full descendant chain. The whole set is fetched in one query
// and assembled in memory, so depth does not multiply round trips.
func (s *reviewService) TreeForMovie(ctx context.Context, movieID uint) ([]models.ReviewNode, error) {
	reviews, err := s.repo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*models.ReviewNode, len(reviews))
	for i := range reviews {
		r := reviews[i]
		node := &models.ReviewNode{
			ID:       r.ID,
			Text:     r.Text,
			Children: []models.ReviewNode{},
		}
		if r.User != nil {
			node.User = r.User.DisplayName()
		}
		nodes[r.ID] = node
	}

	// Children attach bottom-up in reverse id order so every node's subtree
	// is complete before the node itself is appended to its parent.
	for i := len(reviews) - 1; i >= 0; i-- {
		r := reviews[i]
		if r.ParentID == nil {
			continue
		}
		parent, ok := nodes[*r.ParentID]
		if !ok {
			// Orphan (parent deleted mid-listing); treat as top-level.
			continue
		}
		parent.Children = append([]models.ReviewNode{*nodes[r.ID]}, parent.Children...)
	}

	tree := make([]models.ReviewNode, 0)
	for i := range reviews {
		r := reviews[i]
		if r.ParentID != nil {
			if _, ok := nodes[*r.ParentID]; ok {
				continue
			}
		}
		tree = append(tree, *nodes[r.ID])
	}

	return tree, nil
}

func (s *reviewService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
