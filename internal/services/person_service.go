package services

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type PersonInput struct {
	Name        string
	Age         int
	Description string
}

type ActorService interface {
	Create(ctx context.Context, in PersonInput) (*models.Actor, error)
	Update(ctx context.Context, id uint, in PersonInput) (*models.Actor, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Actor, error)
	List(ctx context.Context, name string, page, pageSize int) ([]models.PersonListItem, int64, error)
	AttachImage(ctx context.Context, id uint, filename string, data []byte, contentType string) (string, error)
}

type actorService struct {
	repo    repository.ActorRepository
	storage ObjectStorage
	logger  *logrus.Logger
}

func NewActorService(repo repository.ActorRepository, storage ObjectStorage, logger *logrus.Logger) ActorService {
	return &actorService{repo: repo, storage: storage, logger: logger}
}

func (s *actorService) Create(ctx context.Context, in PersonInput) (*models.Actor, error) {
	actor := &models.Actor{
		Name:        in.Name,
		Age:         in.Age,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *actorService) Update(ctx context.Context, id uint, in PersonInput) (*models.Actor, error) {
	actor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	actor.Name = in.Name
	actor.Age = in.Age
	actor.Description = in.Description

	if err := s.repo.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *actorService) Delete(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.Image != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, existing.Image); err != nil {
			s.logger.WithError(err).Warn("Failed to delete actor image from storage")
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *actorService) Get(ctx context.Context, id uint) (*models.Actor, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *actorService) List(ctx context.Context, name string, page, pageSize int) ([]models.PersonListItem, int64, error) {
	actors, total, err := s.repo.FindAll(ctx, name, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.PersonListItem, 0, len(actors))
	for i := range actors {
		items = append(items, models.PersonListItem{
			ID:    actors[i].ID,
			Name:  actors[i].Name,
			Image: actors[i].Image,
		})
	}
	return items, total, nil
}

func (s *actorService) AttachImage(ctx context.Context, id uint, filename string, data []byte, contentType string) (string, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	objectPath := UploadPath("actors", id, filename)
	url, err := s.storage.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		return "", err
	}

	if existing.Image != "" {
		if err := s.storage.Delete(ctx, existing.Image); err != nil {
			s.logger.WithError(err).Warn("Failed to delete old actor image from storage")
		}
	}

	if err := s.repo.SetImage(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

type DirectorService interface {
	Create(ctx context.Context, in PersonInput) (*models.Director, error)
	Update(ctx context.Context, id uint, in PersonInput) (*models.Director, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Director, error)
	List(ctx context.Context, name string, page, pageSize int) ([]models.PersonListItem, int64, error)
	AttachImage(ctx context.Context, id uint, filename string, data []byte, contentType string) (string, error)
}

type directorService struct {
	repo    repository.DirectorRepository
	storage ObjectStorage
	logger  *logrus.Logger
}

func NewDirectorService(repo repository.DirectorRepository, storage ObjectStorage, logger *logrus.Logger) DirectorService {
	return &directorService{repo: repo, storage: storage, logger: logger}
}

func (s *directorService) Create(ctx context.Context, in PersonInput) (*models.Director, error) {
	director := &models.Director{
		Name:        in.Name,
		Age:         in.Age,
		Description: in.Description,
	}
	if err := s.repo.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *directorService) Update(ctx context.Context, id uint, in PersonInput) (*models.Director, error) {
	director, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	director.Name = in.Name
	director.Age = in.Age
	director.Description = in.Description

	if err := s.repo.Update(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func (s *directorService) Delete(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.Image != "" && s.storage != nil {
		if err := s.storage.Delete(ctx, existing.Image); err != nil {
			s.logger.WithError(err).Warn("Failed to delete director image from storage")
		}
	}

	return s.repo.Delete(ctx, id)
}

func (s *directorService) Get(ctx context.Context, id uint) (*models.Director, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *directorService) List(ctx context.Context, name string, page, pageSize int) ([]models.PersonListItem, int64, error) {
	directors, total, err := s.repo.FindAll(ctx, name, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.PersonListItem, 0, len(directors))
	for i := range directors {
		items = append(items, models.PersonListItem{
			ID:    directors[i].ID,
			Name:  directors[i].Name,
			Image: directors[i].Image,
		})
	}
	return items, total, nil
}

func (s *directorService) AttachImage(ctx context.Context, id uint, filename string, data []byte, contentType string) (string, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	objectPath := UploadPath("directors", id, filename)
	url, err := s.storage.Upload(ctx, objectPath, data, contentType)
	if err != nil {
		return "", err
	}

	if existing.Image != "" {
		if err := s.storage.Delete(ctx, existing.Image); err != nil {
			s.logger.WithError(err).Warn("Failed to delete old director image from storage")
		}
	}

	if err := s.repo.SetImage(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
