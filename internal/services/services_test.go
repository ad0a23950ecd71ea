package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db, err := database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
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

// fakeStorage is an in-memory ObjectStorage that records every upload.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	uploads int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(_ context.Context, objectPath string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectPath] = data
	f.uploads++
	return "http://storage.test/" + objectPath, nil
}

func (f *fakeStorage) Download(_ context.Context, objectPath string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[objectPath]
	if !ok {
		return nil, fmt.Errorf("object %s not found", objectPath)
	}
	return data, nil
}

// Delete accepts a bare key or a public URL, like the MinIO implementation.
func (f *fakeStorage) Delete(_ context.Context, objectPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, strings.TrimPrefix(objectPath, "http://storage.test/"))
	return nil
}

// only returns the single stored object; it fails the test when the store
// does not hold exactly one.
func (f *fakeStorage) only(t *testing.T) (string, []byte) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.objects, 1)
	for path, data := range f.objects {
		return path, data
	}
	return "", nil
}
