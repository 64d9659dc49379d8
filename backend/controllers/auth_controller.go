package controllers

import (
	"errors"
	"time"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/utils"
	"coursehub/backend/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body validation.RegisterInput true "User registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input validation.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}

	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	var count int64
	if err := ac.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}
	if count > 0 {
		return utils.Conflict(c, "username or email is already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "could not hash password")
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		// The unique columns are the source of truth; a lost race on the
		// pre-check surfaces here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "username or email is already in use")
		}
		return utils.InternalServerError(c, "could not create user")
	}

	return utils.Created(c, fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticates by email and password and starts a session
// @Tags auth
// @Accept json
// @Produce json
// @Param input body validation.LoginInput true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input validation.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}

	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	// A missing user and a wrong password answer identically.
	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Unauthorized(c, "invalid credentials")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, input.Remember, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "could not generate token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(utils.SessionTTL(input.Remember)),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
	})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return utils.Message(c, fiber.StatusOK, "logged out")
}

// ForgotPassword accepts an email and always answers the same way, never
// revealing whether an account exists. Mail delivery is not implemented.
func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}

	return utils.Message(c, fiber.StatusOK,
		"if the email exists in our records, you will receive reset instructions")
}
