package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// statusFromError maps service and repository sentinels onto HTTP statuses.
// Anything unrecognized is treated as an internal error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrUnknownRelation),
		errors.Is(err, services.ErrUnknownStar),
		errors.Is(err, services.ErrSelfReply),
		errors.Is(err, services.ErrParentMismatch),
		errors.Is(err, services.ErrProfileExists),
		errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// readFormFile pulls a multipart file field into memory.
func readFormFile(header *multipart.FileHeader) ([]byte, string, error) {
	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}
