package handlers

import (
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdateRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account with email and password
// @Tags user
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request object"
// @Success 201 {object} utils.StandardResponse "Account created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request or email already registered"
// @Router /user/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(ctx, services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.WithError(err).Warn("Failed to register user")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Account created successfully", user)
}

// Token godoc
// @Summary Issue an access token
// @Description Exchange valid credentials for a bearer token
// @Tags user
// @Accept json
// @Produce json
// @Param credentials body TokenRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse "Token issued successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 401 {object} utils.StandardResponse "Invalid email or password"
// @Router /user/token [post]
func (h *UserHandler) Token(c *fiber.Ctx) error {
	ctx := c.Context()

	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	token, expiresAt, err := h.service.IssueToken(ctx, req.Email, req.Password)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to issue token")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Token issued successfully", fiber.Map{
		"token":      token,
		"expires_at": expiresAt,
	})
}

// GetMe godoc
// @Summary Get own account
// @Description Get the authenticated user's record with profile
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Account details"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /user/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	ctx := c.Context()
	user := middleware.CurrentUser(c)

	// Reload with profile preloaded.
	current, err := h.service.Get(ctx, user.ID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to get user")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Account retrieved successfully", current)
}

// UpdateMe godoc
// @Summary Update own account
// @Description Update the authenticated user's email, password, or name
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserUpdateRequest true "Fields to update"
// @Success 200 {object} utils.StandardResponse "Account updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /user/me [put]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	ctx := c.Context()
	user := middleware.CurrentUser(c)

	var req UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateMe(ctx, user, services.UserUpdate{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.WithError(err).WithField("user_id", user.ID).Error("Failed to update user")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Account updated successfully", updated)
}

// CreateProfile godoc
// @Summary Create own profile
// @Description Create the authenticated user's profile; an uploaded image is resized to fit 300x300
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param bio formData string false "Profile bio"
// @Param image formData file false "Avatar image"
// @Success 201 {object} utils.StandardResponse "Profile created successfully"
// @Failure 400 {object} utils.StandardResponse "Profile already exists"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Router /user/me/profile [post]
func (h *UserHandler) CreateProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	user := middleware.CurrentUser(c)

	bio := c.FormValue("bio", "")

	image, err := h.formImage(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read image file")
	}

	profile, err := h.service.CreateProfile(ctx, user, bio, image)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", user.ID).Warn("Failed to create profile")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Profile created successfully", profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Update the authenticated user's profile bio or avatar
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param bio formData string false "Profile bio"
// @Param image formData file false "Avatar image"
// @Success 200 {object} utils.StandardResponse "Profile updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Authentication required"
// @Failure 404 {object} utils.StandardResponse "Profile not found"
// @Router /user/me/profile [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	user := middleware.CurrentUser(c)

	var bio *string
	if form, err := c.MultipartForm(); err == nil {
		if values, ok := form.Value["bio"]; ok && len(values) > 0 {
			bio = &values[0]
		}
	}

	image, err := h.formImage(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read image file")
	}

	profile, err := h.service.UpdateProfile(ctx, user, bio, image)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", user.ID).Warn("Failed to update profile")
		return utils.ErrorResponse(c, statusFromError(err), err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Profile updated successfully", profile)
}

// formImage reads the optional image field; a missing field is not an error.
func (h *UserHandler) formImage(c *fiber.Ctx) (*services.Upload, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	data, contentType, err := readFormFile(header)
	if err != nil {
		return nil, err
	}

	return &services.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
