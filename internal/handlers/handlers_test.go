package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testJWT = config.JWTConfig{Secret: "handler-test-secret", TTL: time.Hour}

type testEnv struct {
	app *fiber.App
	db  *database.Database
	svc services.UserService
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeStorage) Upload(_ context.Context, objectPath string, data []byte, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[objectPath] = data
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

func (f *fakeStorage) Delete(_ context.Context, objectPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, strings.TrimPrefix(objectPath, "http://storage.test/"))
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
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

	log := logrus.New()
	log.SetOutput(io.Discard)

	storage := &fakeStorage{objects: make(map[string][]byte)}

	movieRepo := repository.NewMovieRepository(db)
	userRepo := repository.NewUserRepository(db)

	reviewService := services.NewReviewService(repository.NewReviewRepository(db), movieRepo, log)
	movieService := services.NewMovieService(
		movieRepo,
		repository.NewCategoryRepository(db),
		repository.NewGenreRepository(db),
		repository.NewActorRepository(db),
		repository.NewDirectorRepository(db),
		reviewService,
		storage,
		log,
	)
	userService := services.NewUserService(userRepo, storage, testJWT, log)

	auth := middleware.NewAuth(userRepo, testJWT.Secret, log)

	h := routes.Handlers{
		Movies:    handlers.NewMovieHandler(movieService, log),
		Actors:    handlers.NewActorHandler(services.NewActorService(repository.NewActorRepository(db), storage, log), log),
		Directors: handlers.NewDirectorHandler(services.NewDirectorService(repository.NewDirectorRepository(db), storage, log), log),
		Taxonomy:  handlers.NewTaxonomyHandler(services.NewCategoryService(repository.NewCategoryRepository(db), log), services.NewGenreService(repository.NewGenreRepository(db), log), log),
		Reviews:   handlers.NewReviewHandler(reviewService, log),
		Ratings:   handlers.NewRatingHandler(services.NewRatingService(repository.NewRatingRepository(db), movieRepo, log), log),
		Users:     handlers.NewUserHandler(userService, log),
	}

	app := fiber.New()
	routes.Setup(app, h, auth)

	return &testEnv{app: app, db: db, svc: userService}
}

// token creates an account directly in the database and returns a bearer
// token for it.
func (e *testEnv) token(t *testing.T, email string, staff bool) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Email: email, Password: string(hash), IsStaff: staff}
	require.NoError(t, e.db.Create(user).Error)

	token, _, err := e.svc.IssueToken(context.Background(), email, "hunter22")
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
