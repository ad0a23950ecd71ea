package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Upload carries a multipart file through the service layer.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UserUpdate carries optional self-service account changes.
type UserUpdate struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	IssueToken(ctx context.Context, email, password string) (string, time.Time, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	UpdateMe(ctx context.Context, user *models.User, update UserUpdate) (*models.User, error)

	CreateProfile(ctx context.Context, user *models.User, bio string, image *Upload) (*models.Profile, error)
	UpdateProfile(ctx context.Context, user *models.User, bio *string, image *Upload) (*models.Profile, error)
}

type userService struct {
	repo    repository.UserRepository
	storage ObjectStorage
	jwtCfg  config.JWTConfig
	logger  *logrus.Logger
}

func NewUserService(repo repository.UserRepository, storage ObjectStorage, jwtCfg config.JWTConfig, logger *logrus.Logger) UserService {
	return &userService{
		repo:    repo,
		storage: storage,
		jwtCfg:  jwtCfg,
		logger:  logger,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *userService) IssueToken(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.jwtCfg.TTL)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) UpdateMe(ctx context.Context, user *models.User, update UserUpdate) (*models.User, error) {
	if update.Email != nil && *update.Email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, *update.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		user.Email = *update.Email
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateProfile(ctx context.Context, user *models.User, bio string, image *Upload) (*models.Profile, error) {
	if _, err := s.repo.FindProfileByUserID(ctx, user.ID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	profile := &models.Profile{
		UserID: user.ID,
		Bio:    bio,
	}

	if image != nil {
		url, err := s.saveAvatar(ctx, user.ID, image)
		if err != nil {
			return nil, err
		}
		profile.Image = url
	}

	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", user.ID).Info("Profile created")
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, user *models.User, bio *string, image *Upload) (*models.Profile, error) {
	profile, err := s.repo.FindProfileByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if bio != nil {
		profile.Bio = *bio
	}
	if image != nil {
		url, err := s.saveAvatar(ctx, user.ID, image)
		if err != nil {
			return nil, err
		}
		if profile.Image != "" {
			if err := s.storage.Delete(ctx, profile.Image); err != nil {
				s.logger.WithError(err).Warn("Failed to delete old avatar from storage")
			}
		}
		profile.Image = url
	}

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// saveAvatar stores the raw upload first, then overwrites it in place with
// the 300x300-bounded thumbnail when the original exceeds the box.
func (s *userService) saveAvatar(ctx context.Context, userID uint, image *Upload) (string, error) {
	objectPath := UploadPath("profiles", userID, image.Filename)

	url, err := s.storage.Upload(ctx, objectPath, image.Data, image.ContentType)
	if err != nil {
		return "", err
	}

	normalized, resized, err := NormalizeAvatar(image.Data)
	if err != nil {
		return "", err
	}
	if resized {
		if _, err := s.storage.Upload(ctx, objectPath, normalized, image.ContentType); err != nil {
			return "", err
		}
		s.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"object":  objectPath,
		}).Info("Avatar downsampled to fit 300x300")
	}

	return url, nil
}
