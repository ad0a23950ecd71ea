package middleware

import (
	"strconv"
	"strings"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const currentUserKey = "current_user"

// Auth validates bearer tokens and resolves them to accounts.
type Auth struct {
	userRepo repository.UserRepository
	secret   string
	logger   *logrus.Logger
}

func NewAuth(userRepo repository.UserRepository, secret string, logger *logrus.Logger) *Auth {
	return &Auth{
		userRepo: userRepo,
		secret:   secret,
		logger:   logger,
	}
}

// Optional resolves the current user when a valid token is present and
// continues anonymously otherwise.
func (a *Auth) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if user, err := a.resolve(c); err == nil && user != nil {
			c.Locals(currentUserKey, user)
		}
		return c.Next()
	}
}

// Required rejects the request unless a valid token resolves to a user.
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.resolve(c)
		if err != nil || user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// AdminOnly requires an authenticated staff account.
func (a *Auth) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.resolve(c)
		if err != nil || user == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		if !user.IsStaff {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Admin access required")
		}
		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

func (a *Auth) resolve(c *fiber.Ctx) (*models.User, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, nil
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		a.logger.WithError(err).Debug("Rejected bearer token")
		return nil, err
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.FindByID(c.Context(), uint(id))
	if err != nil {
		a.logger.WithError(err).WithField("user_id", id).Debug("Token subject not found")
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the authenticated user stored by the auth middleware,
// or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

// IsAdmin reports whether the request is made by a staff account.
func IsAdmin(c *fiber.Ctx) bool {
	user := CurrentUser(c)
	return user != nil && user.IsStaff
}
