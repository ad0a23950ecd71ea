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

type ActorRepository interface {
	Create(ctx context.Context, actor *models.Actor) error
	Update(ctx context.Context, actor *models.Actor) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Actor, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Actor, error)
	FindAll(ctx context.Context, name string, page, pageSize int) ([]models.Actor, int64, error)
	SetImage(ctx context.Context, id uint, image string) error
}

type actorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewActorRepository(db *database.Database) ActorRepository {
	return &actorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *actorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *actorRepository) Create(ctx context.Context, actor *models.Actor) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(actor).Error
}

func (r *actorRepository) Update(ctx context.Context, actor *models.Actor) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(actor).Error
}

func (r *actorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_actors WHERE actor_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Actor{}, id).Error
	})
}

func (r *actorRepository) FindByID(ctx context.Context, id uint) (*models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actor models.Actor
	err := r.db.WithContext(ctx).First(&actor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

func (r *actorRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Actor, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actors []models.Actor
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&actors).Error
	return actors, err
}

func (r *actorRepository) FindAll(ctx context.Context, name string, page, pageSize int) ([]models.Actor, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var actors []models.Actor
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Actor{})
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&actors).Error; err != nil {
		return nil, 0, err
	}

	return actors, total, nil
}

func (r *actorRepository) SetImage(ctx context.Context, id uint, image string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Actor{}).Where("id = ?", id).Update("image", image).Error
}

type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	Update(ctx context.Context, director *models.Director) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Director, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Director, error)
	FindAll(ctx context.Context, name string, page, pageSize int) ([]models.Director, int64, error)
	SetImage(ctx context.Context, id uint, image string) error
}

type directorRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewDirectorRepository(db *database.Database) DirectorRepository {
	return &directorRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *directorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(director).Error
}

func (r *directorRepository) Update(ctx context.Context, director *models.Director) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(director).Error
}

func (r *directorRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM movie_directors WHERE director_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Director{}, id).Error
	})
}

func (r *directorRepository) FindByID(ctx context.Context, id uint) (*models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var director models.Director
	err := r.db.WithContext(ctx).First(&director, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &director, nil
}

func (r *directorRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Director, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var directors []models.Director
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&directors).Error
	return directors, err
}

func (r *directorRepository) FindAll(ctx context.Context, name string, page, pageSize int) ([]models.Director, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var directors []models.Director
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Director{})
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&directors).Error; err != nil {
		return nil, 0, err
	}

	return directors, total, nil
}

func (r *directorRepository) SetImage(ctx context.Context, id uint, image string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(&models.Director{}).Where("id = ?", id).Update("image", image).Error
}
