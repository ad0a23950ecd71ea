package handlers

import (
	"strconv"

	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PersonRequest struct {
	Name        string `json:"name" validate:"required"`
	Age         int    `json:"age" validate:"gte=0"`
	Description string `json:"description"`
}

type ActorHandler struct {
	service services.ActorService
	logger  *logrus.Logger
}

func NewActorHandler(service services.ActorService, logger *logrus.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllActors godoc
// @Summary Get all actors
// @Description Get the actor list with optional name filter and pagination
// @Tags actors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(5)
// @Param name query string false "Case-insensitive name substring"
// @Success 200 {object} utils.StandardResponse "List of actors"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /actors [get]
func (h *ActorHandler) GetAllActors(c *fiber.Ctx) error {
	ctx := c.Context()

	page, pageSize := utils.ParsePageParams(c)
	name := c.Query("name", "")

	actors, total, err := h.service.List(ctx, name, page, pageSize)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get actors")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve actors")
	}

	meta := utils.CreatePaginationMeta(page, pageSize, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Actors retrieved successfully", actors, meta)
}

// GetActorByID godoc
// @Summary Get actor by ID
// @Description Get a single actor by their ID
// @Tags actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} utils.StandardResponse "Actor details"
// @Failure 400 {object} utils.StandardResponse "Invalid actor ID"
// @Failure 404 {object} utils.StandardResponse "Actor not found"
// @Router /actors/{id} [get]
func (h *ActorHandler) GetActorByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	actor, err := h.service.Get(ctx, uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Warn("Failed to get actor")
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor retrieved successfully", actor)
}

// CreateActor godoc
// @Summary Create a new actor
// @Description Create a new actor entry
// @Tags actors
// @Accept json
// @Produce json
// @Param actor body PersonRequest true "Actor request object"
// @Success 201 {object} utils.StandardResponse "Actor created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /actors [post]
func (h *ActorHandler) CreateActor(c *fiber.Ctx) error {
	ctx := c.Context()

	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	actor, err := h.service.Create(ctx, services.PersonInput{
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create actor")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Actor created successfully", actor)
}

// UpdateActor godoc
// @Summary Update an actor
// @Description Update an existing actor
// @Tags actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Param actor body PersonRequest true "Actor request object"
// @Success 200 {object} utils.StandardResponse "Actor updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Actor not found"
// @Router /actors/{id} [put]
func (h *ActorHandler) UpdateActor(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	actor, err := h.service.Update(ctx, uint(id), services.PersonInput{
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update actor")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor updated successfully", actor)
}

// DeleteActor godoc
// @Summary Delete an actor
// @Description Delete an actor and detach them from movies
// @Tags actors
// @Accept json
// @Produce json
// @Param id path int true "Actor ID"
// @Success 200 {object} utils.StandardResponse "Actor deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid actor ID"
// @Failure 404 {object} utils.StandardResponse "Actor not found"
// @Router /actors/{id} [delete]
func (h *ActorHandler) DeleteActor(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete actor")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Actor deleted successfully", nil)
}

// UploadActorImage godoc
// @Summary Upload an actor image
// @Description Upload a portrait image for an actor to object storage
// @Tags actors
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Actor ID"
// @Param image formData file true "Actor image"
// @Success 200 {object} utils.StandardResponse "Image uploaded successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Actor not found"
// @Router /actors/{id}/upload-image [post]
func (h *ActorHandler) UploadActorImage(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required")
	}

	data, contentType, err := readFormFile(header)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read image file")
	}

	url, err := h.service.AttachImage(ctx, uint(id), header.Filename, data, contentType)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to upload actor image")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Image uploaded successfully", fiber.Map{"image": url})
}

type DirectorHandler struct {
	service services.DirectorService
	logger  *logrus.Logger
}

func NewDirectorHandler(service services.DirectorService, logger *logrus.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllDirectors godoc
// @Summary Get all directors
// @Description Get the director list with optional name filter and pagination
// @Tags directors
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page (max 100)" default(5)
// @Param name query string false "Case-insensitive name substring"
// @Success 200 {object} utils.StandardResponse "List of directors"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /directors [get]
func (h *DirectorHandler) GetAllDirectors(c *fiber.Ctx) error {
	ctx := c.Context()

	page, pageSize := utils.ParsePageParams(c)
	name := c.Query("name", "")

	directors, total, err := h.service.List(ctx, name, page, pageSize)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get directors")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve directors")
	}

	meta := utils.CreatePaginationMeta(page, pageSize, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Directors retrieved successfully", directors, meta)
}

// GetDirectorByID godoc
// @Summary Get director by ID
// @Description Get a single director by their ID
// @Tags directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} utils.StandardResponse "Director details"
// @Failure 400 {object} utils.StandardResponse "Invalid director ID"
// @Failure 404 {object} utils.StandardResponse "Director not found"
// @Router /directors/{id} [get]
func (h *DirectorHandler) GetDirectorByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	director, err := h.service.Get(ctx, uint(id))
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Warn("Failed to get director")
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Director not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Director retrieved successfully", director)
}

// CreateDirector godoc
// @Summary Create a new director
// @Description Create a new director entry
// @Tags directors
// @Accept json
// @Produce json
// @Param director body PersonRequest true "Director request object"
// @Success 201 {object} utils.StandardResponse "Director created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Router /directors [post]
func (h *DirectorHandler) CreateDirector(c *fiber.Ctx) error {
	ctx := c.Context()

	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	director, err := h.service.Create(ctx, services.PersonInput{
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WithError(err).Error("Failed to create director")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Director created successfully", director)
}

// UpdateDirector godoc
// @Summary Update a director
// @Description Update an existing director
// @Tags directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Param director body PersonRequest true "Director request object"
// @Success 200 {object} utils.StandardResponse "Director updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Director not found"
// @Router /directors/{id} [put]
func (h *DirectorHandler) UpdateDirector(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	var req PersonRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	director, err := h.service.Update(ctx, uint(id), services.PersonInput{
		Name:        req.Name,
		Age:         req.Age,
		Description: req.Description,
	})
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update director")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Director updated successfully", director)
}

// DeleteDirector godoc
// @Summary Delete a director
// @Description Delete a director and detach them from movies
// @Tags directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} utils.StandardResponse "Director deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid director ID"
// @Failure 404 {object} utils.StandardResponse "Director not found"
// @Router /directors/{id} [delete]
func (h *DirectorHandler) DeleteDirector(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	if err := h.service.Delete(ctx, uint(id)); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete director")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Director deleted successfully", nil)
}

// UploadDirectorImage godoc
// @Summary Upload a director image
// @Description Upload a portrait image for a director to object storage
// @Tags directors
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Director ID"
// @Param image formData file true "Director image"
// @Success 200 {object} utils.StandardResponse "Image uploaded successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Director not found"
// @Router /directors/{id}/upload-image [post]
func (h *DirectorHandler) UploadDirectorImage(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Image file is required")
	}

	data, contentType, err := readFormFile(header)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read image file")
	}

	url, err := h.service.AttachImage(ctx, uint(id), header.Filename, data, contentType)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to upload director image")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Image uploaded successfully", fiber.Map{"image": url})
}
