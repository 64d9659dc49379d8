package controllers

import (
	"errors"
	"strconv"

	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/utils"
	"coursehub/backend/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MentorshipController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewMentorshipController(db *gorm.DB, cfg *config.Config) *MentorshipController {
	return &MentorshipController{DB: db, Cfg: cfg}
}

// RequestMentorship books a mentoring session for the caller. The
// requested date must be in the future and within the next 30 days.
func (mc *MentorshipController) RequestMentorship(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input validation.MentorshipInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}

	fields := validation.Check(input)
	scheduled, msg := validation.MentorshipDate(input.ScheduledDate)
	if msg != "" {
		fields["scheduled_date"] = msg
	}
	if len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	session := models.Mentorship{
		UserID:        user.ID,
		Subject:       input.Subject,
		Description:   input.Description,
		Status:        models.MentorshipStatusPending,
		ScheduledDate: scheduled,
		Notes:         input.Notes,
	}

	if err := mc.DB.Create(&session).Error; err != nil {
		return utils.InternalServerError(c, "could not create mentorship request")
	}

	return utils.Created(c, session)
}

// ListMentorships returns the caller's sessions, most recent first.
func (mc *MentorshipController) ListMentorships(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var sessions []models.Mentorship
	if err := mc.DB.Where("user_id = ?", user.ID).
		Order("scheduled_date DESC").
		Find(&sessions).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	return utils.Success(c, fiber.StatusOK, sessions)
}

// UpdateMentorshipStatus lets an administrator approve or reject a
// requested session.
func (mc *MentorshipController) UpdateMentorshipStatus(c *fiber.Ctx) error {
	mentorshipID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid mentorship ID")
	}

	var input validation.MentorshipStatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	var session models.Mentorship
	if err := mc.DB.First(&session, mentorshipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "mentorship not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	session.Status = input.Status
	if err := mc.DB.Save(&session).Error; err != nil {
		return utils.InternalServerError(c, "could not update mentorship")
	}

	return utils.Success(c, fiber.StatusOK, session)
}
