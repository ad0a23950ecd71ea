package handlers

import (
	"strconv"
	"strings"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get the published movie list with filters and pagination. Staff accounts also see drafts.
// @Tags movies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(5)
// @Param title query string false "Case-insensitive title substring"
// @Param category query string false "Case-insensitive category name substring"
// @Param year_of_release query int false "Exact release year"
// @Param genres query string false "Comma-separated genre names, any match"
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, pageSize := utils.ParsePageParams(c)
	year, _ := strconv.Atoi(c.Query("year_of_release", "0"))

	filter := repository.MovieFilter{
		Title:         c.Query("title", ""),
		Category:      c.Query("category", ""),
		YearOfRelease: year,
		IncludeDrafts: middleware.IsAdmin(c),
	}
	if genres := c.Query("genres", ""); genres != "" {
		for _, name := range strings.Split(genres, ",") {
			if name = strings.TrimSpace(name); name != "" {
				filter.Genres = append(filter.Genres, name)
			}
		}
	}

	movies, total, err := h.service.ListMovies(ctx, filter, page, pageSize)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, pageSize, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie with its category, genres, people, ratings, and threaded reviews
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovie(ctx, uint(id), middleware.IsAdmin(c))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Warn("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Create a new movie entry
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	in, err := req.toInput()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.CreateMovie(ctx, in)
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Replace an existing movie, including its relations
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie request object"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	in, err := req.toInput()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.UpdateMovie(ctx, uint(id), in)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// PatchMovie godoc
// @Summary Partially update a movie
// @Description Update only the provided movie fields
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MoviePatchRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [patch]
func (h *MovieHandler) PatchMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MoviePatchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	patch, err := req.toPatch()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	movie, err := h.service.PatchMovie(ctx, uint(id), patch)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to patch movie")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie and its frames, ratings, and reviews
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// UploadPoster godoc
// @Summary Upload a movie poster
// @Description Upload a poster image for a movie to object storage
// @Tags movies
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Movie ID"
// @Param poster formData file true "Poster image"
// @Success 200 {object} utils.StandardResponse "Poster uploaded successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id}/upload-poster [post]
func (h *MovieHandler) UploadPoster(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	header, err := c.FormFile("poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Poster file is required")
	}

	data, contentType, err := readFormFile(header)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read poster file")
	}

	url, err := h.service.AttachPoster(ctx, uint(id), header.Filename, data, contentType)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to upload poster")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Poster uploaded successfully", fiber.Map{"poster": url})
}

// CreateFrame godoc
// @Summary Create a movie frame
// @Description Create a frame entry attached to a movie
// @Tags frames
// @Accept json
// @Produce json
// @Param frame body MovieFrameRequest true "Frame request object"
// @Success 201 {object} utils.StandardResponse "Frame created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Router /movie-frames [post]
func (h *MovieHandler) CreateFrame(c *fiber.Ctx) error {
	ctx := c.Context()

	var req MovieFrameRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	frame, err := h.service.CreateFrame(ctx, services.FrameInput{
		Title:       req.Title,
		Description: req.Description,
		MovieID:     req.MovieID,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create movie frame")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Frame created successfully", frame)
}

// UploadFrameImage godoc
// @Summary Upload a frame image
// @Description Upload the still image for a movie frame to object storage
// @Tags frames
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Frame ID"
// @Param image formData file true "Frame image"
// @Success 200 {object} utils.StandardResponse "Image uploaded successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Frame not found"
// @Router /movie-frames/{id}/upload-image [post]
func (h *MovieHandler) UploadFrameImage(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid frame ID")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required")
	}

	data, contentType, err := readFormFile(header)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read image file")
	}

	url, err := h.service.AttachFrameImage(ctx, uint(id), header.Filename, data, contentType)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to upload frame image")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Image uploaded successfully", fiber.Map{"image": url})
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Get catalog totals, the overall average rating, and the top-rated movies
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Dashboard statistics"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve statistics"
// @Router /dashboard/stats [get]
func (h *MovieHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := h.service.GetDashboardStats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve dashboard statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Dashboard statistics retrieved successfully", stats)
}
