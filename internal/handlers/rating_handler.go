package handlers

import (
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RatingRequest struct {
	MovieID uint `json:"movie" validate:"required"`
	Star    int  `json:"star" validate:"required"`
}

type RatingHandler struct {
	service services.RatingService
	logger  *logrus.Logger
}

func NewRatingHandler(service services.RatingService, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		logger:  logger,
	}
}

// CreateRating godoc
// @Summary Rate a movie
// @Description Record the caller's star rating for a movie, replacing any previous one
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body RatingRequest true "Rating request object"
// @Success 201 {object} utils.StandardResponse "Rating recorded successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /ratings [post]
func (h *RatingHandler) CreateRating(c *fiber.Ctx) error {
	ctx := c.Context()
	user := middleware.CurrentUser(c)

	var req RatingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	rating, err := h.service.Rate(ctx, user, req.MovieID, req.Star)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", req.MovieID).Warn("Failed to record rating")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Rating recorded successfully", rating)
}

// GetRatingStars godoc
// @Summary Get the rating scale
// @Description Get the available star values
// @Tags ratings
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Rating scale"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /ratings/stars [get]
func (h *RatingHandler) GetRatingStars(c *fiber.Ctx) error {
	ctx := c.Context()

	stars, err := h.service.Stars(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get rating stars")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve rating stars")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Rating stars retrieved successfully", stars)
}
