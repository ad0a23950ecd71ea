package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type CategoryService interface {
	Create(ctx context.Context, name, description string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

func (s *categoryService) Create(ctx context.Context, name, description string) (*models.Category, error) {
	category := &models.Category{Name: name, Description: description}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

type GenreService interface {
	Create(ctx context.Context, name string) (*models.Genre, error)
	List(ctx context.Context) ([]models.Genre, error)
}

type genreService struct {
	repo   repository.GenreRepository
	logger *logrus.Logger
}

func NewGenreService(repo repository.GenreRepository, logger *logrus.Logger) GenreService {
	return &genreService{repo: repo, logger: logger}
}

func (s *genreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	genre := &models.Genre{Name: name}
	if err := s.repo.Create(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

func (s *genreService) List(ctx context.Context) ([]models.Genre, error) {
	return s.repo.FindAll(ctx)
}
