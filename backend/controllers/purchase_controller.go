package controllers

import (
	"errors"
	"strconv"
	"time"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewPurchaseController(db *gorm.DB, cfg *config.Config) *PurchaseController {
	return &PurchaseController{DB: db, Cfg: cfg}
}

// PurchaseCourse grants the caller access to a course. No payment is
// modeled: the grant is unconditional, mirroring the simulated checkout.
// The existence pre-check gives the friendly duplicate answer; the
// unique index on (user_id, course_id) closes the check-then-insert race
// when two requests arrive at once.
func (pc *PurchaseController) PurchaseCourse(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid course ID")
	}

	var course models.Course
	if err := pc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "course not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var count int64
	if err := pc.DB.Model(&models.Purchase{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}
	if count > 0 {
		return utils.Conflict(c, "you already own this course")
	}

	purchase := models.Purchase{
		UserID:      user.ID,
		CourseID:    course.ID,
		Status:      models.PurchaseStatusActive,
		Progress:    0,
		PurchasedAt: time.Now(),
	}

	if err := pc.DB.Create(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflict(c, "you already own this course")
		}
		return utils.InternalServerError(c, "could not create purchase")
	}

	return utils.Created(c, purchase)
}
