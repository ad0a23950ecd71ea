package handlers

import (
	"strconv"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewRequest struct {
	MovieID  uint   `json:"movie" validate:"required"`
	Text     string `json:"text" validate:"required"`
	ParentID *uint  `json:"parent"`
}

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReview godoc
// @Summary Create a review
// @Description Post a review for a movie, optionally replying to another review on the same movie
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review request object"
// @Success 201 {object} utils.StandardResponse "Review created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	ctx := c.Context()
	user := middleware.CurrentUser(c)

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(ctx, user, req.MovieID, req.Text, req.ParentID)
	if err != nil {
		h.logger.WithError(err).WithField("movie_id", req.MovieID).Warn("Failed to create review")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", review)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review; its direct replies become top-level
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.StandardResponse "Review deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid review ID"
// @Failure 404 {object} utils.StandardResponse "Review not found"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review ID")
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete review")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}
