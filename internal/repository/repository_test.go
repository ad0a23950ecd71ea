package repository

import (
	"context"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with migrations and the star
// scale applied, mirroring what Connect does against postgres.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	db, err := database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createUser(t *testing.T, db *database.Database, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createMovie(t *testing.T, db *database.Database, movie *models.Movie) *models.Movie {
	t.Helper()
	require.NoError(t, db.Create(movie).Error)
	return movie
}

func starID(t *testing.T, db *database.Database, value int) uint {
	t.Helper()
	var star models.RatingStar
	require.NoError(t, db.Where("value = ?", value).First(&star).Error)
	return star.ID
}

func rate(t *testing.T, db *database.Database, userID, movieID uint, value int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Rating{
		UserID:  userID,
		MovieID: movieID,
		StarID:  starID(t, db, value),
	}).Error)
}

func TestStarScaleSeededOnce(t *testing.T) {
	db := newTestDB(t)

	var count int64
	require.NoError(t, db.Model(&models.RatingStar{}).Count(&count).Error)
	require.EqualValues(t, database.StarScaleMax-database.StarScaleMin+1, count)

	// Rerunning migrations must not duplicate the scale.
	_, err := database.New(db.DB, config.DatabaseConfig{})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.RatingStar{}).Count(&count).Error)
	require.EqualValues(t, database.StarScaleMax-database.StarScaleMin+1, count)
}

func TestContextTimeoutRespected(t *testing.T) {
	db := newTestDB(t)
	repo := NewMovieRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.FindAll(ctx, MovieFilter{}, 1, 5)
	require.Error(t, err)
}
