package controllers

import (
	"errors"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/utils"
	"coursehub/backend/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

// GetProfile returns the public profile of a user by username.
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	var user models.User
	if err := uc.DB.Where("username = ?", c.Params("username")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"bio":             user.Bio,
		"profile_picture": user.ProfilePicture,
		"is_admin":        user.IsAdmin,
		"created_at":      user.CreatedAt,
	})
}

// UpdateProfile edits the caller's username, email, bio and avatar. The
// avatar arrives as the multipart field "profile_picture"; the text
// fields as regular form values.
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := validation.ProfileInput{
		Username: c.FormValue("username", user.Username),
		Email:    c.FormValue("email", user.Email),
		Bio:      c.FormValue("bio", user.Bio),
	}

	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	// Uniqueness is only re-checked for values that actually change.
	if input.Username != user.Username {
		var count int64
		uc.DB.Model(&models.User{}).Where("username = ?", input.Username).Count(&count)
		if count > 0 {
			return utils.Conflict(c, "username is already in use")
		}
	}
	if input.Email != user.Email {
		var count int64
		uc.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count)
		if count > 0 {
			return utils.Conflict(c, "email is already in use")
		}
	}

	if file, err := c.FormFile("profile_picture"); err == nil {
		name, err := utils.SaveImage(c, file, uc.Cfg.UploadDir)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		user.ProfilePicture = name
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Bio = input.Bio

	if err := uc.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "username or email is already in use")
		}
		return utils.InternalServerError(c, "could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"username":        user.Username,
		"email":           user.Email,
		"bio":             user.Bio,
		"profile_picture": user.ProfilePicture,
	})
}

// ChangePassword verifies the current password before storing a new one.
func (uc *UserController) ChangePassword(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input validation.PasswordChangeInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}

	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return utils.BadRequest(c, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "could not hash password")
	}

	user.PasswordHash = string(hash)
	if err := uc.DB.Save(user).Error; err != nil {
		return utils.InternalServerError(c, "could not update password")
	}

	return utils.Message(c, fiber.StatusOK, "password changed")
}
