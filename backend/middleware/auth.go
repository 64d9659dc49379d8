package middleware

import (
	"coursehub/backend/access"
	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// AuthMiddleware resolves the caller from the session token and loads a
// fresh user row, so a changed role or password takes effect on the very
// next request. Handlers read the caller via CurrentUser.
func AuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "authentication required")
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return utils.Unauthorized(c, "authentication required")
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// OptionalAuthMiddleware loads the caller when a valid token is present
// and continues anonymously otherwise. Used by public catalog routes
// that personalize their payload for logged-in users.
func OptionalAuthMiddleware(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err == nil {
			var user models.User
			if err := db.First(&user, userID).Error; err == nil {
				c.Locals(currentUserKey, &user)
			}
		}
		return c.Next()
	}
}

// AdminMiddleware gates administrative routes. Composed after
// AuthMiddleware on every admin route; it rejects before the handler
// runs, so no side effect can precede the check.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !access.IsAdmin(CurrentUser(c)) {
			return utils.Forbidden(c, "administrator access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the caller resolved by the auth middleware, or nil
// for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
