package handlers

import (
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required"`
}

type TaxonomyHandler struct {
	categories services.CategoryService
	genres     services.GenreService
	logger     *logrus.Logger
}

func NewTaxonomyHandler(categories services.CategoryService, genres services.GenreService, logger *logrus.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{
		categories: categories,
		genres:     genres,
		logger:     logger,
	}
}

// GetAllCategories godoc
// @Summary Get all categories
// @Description Get the full category list
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of categories"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /categories [get]
func (h *TaxonomyHandler) GetAllCategories(c *fiber.Ctx) error {
	ctx := c.Context()

	categories, err := h.categories.List(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get categories")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory godoc
// @Summary Create a new category
// @Description Create a new category entry
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "Category request object"
// @Success 201 {object} utils.StandardResponse "Category created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /categories [post]
func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	category, err := h.categories.Create(ctx, req.Name, req.Description)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create category")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Category created successfully", category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category; movies in it keep existing without a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.StandardResponse "Category deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid category ID"
// @Failure 404 {object} utils.StandardResponse "Category not found"
// @Router /categories/{id} [delete]
func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := h.categories.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete category")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Category deleted successfully", nil)
}

// GetAllGenres godoc
// @Summary Get all genres
// @Description Get the full genre list
// @Tags genres
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "List of genres"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /genres [get]
func (h *TaxonomyHandler) GetAllGenres(c *fiber.Ctx) error {
	ctx := c.Context()

	genres, err := h.genres.List(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

// CreateGenre godoc
// @Summary Create a new genre
// @Description Create a new genre entry
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre request object"
// @Success 201 {object} utils.StandardResponse "Genre created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /genres [post]
func (h *TaxonomyHandler) CreateGenre(c *fiber.Ctx) error {
	ctx := c.Context()

	var req GenreRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	genre, err := h.genres.Create(ctx, req.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create genre")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Genre created successfully", genre)
}
