package controllers

import (
	"errors"
	"strconv"

	"coursehub/backend/access"
	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/utils"
	"coursehub/backend/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{DB: db, Cfg: cfg}
}

// Overview returns the admin dashboard payload: all courses, users and
// mentorship requests.
func (ac *AdminController) Overview(c *fiber.Ctx) error {
	var courses []models.Course
	var users []models.User
	var mentorships []models.Mentorship

	if err := ac.DB.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}
	if err := ac.DB.Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}
	if err := ac.DB.Find(&mentorships).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses":     courses,
		"users":       users,
		"mentorships": mentorships,
	})
}

// ToggleAdmin flips another user's admin flag. Changing one's own flag
// is rejected with no mutation.
func (ac *AdminController) ToggleAdmin(c *fiber.Ctx) error {
	caller := middleware.CurrentUser(c)

	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid user ID")
	}

	var target models.User
	if err := ac.DB.First(&target, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	if !access.CanToggleAdmin(caller, &target) {
		return utils.BadRequest(c, "you cannot change your own administrator status")
	}

	target.IsAdmin = !target.IsAdmin
	if err := ac.DB.Save(&target).Error; err != nil {
		return utils.InternalServerError(c, "could not update user")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":       target.ID,
		"is_admin": target.IsAdmin,
	})
}

// courseInputFromForm reads the multipart course form. The cover image,
// when present, travels as the "image" file field.
func courseInputFromForm(c *fiber.Ctx) (validation.CourseInput, map[string]string) {
	fields := map[string]string{}

	price, err := strconv.ParseFloat(c.FormValue("price", "0"), 64)
	if err != nil {
		fields["price"] = "must be a number"
	}
	duration, err := strconv.Atoi(c.FormValue("duration", "0"))
	if err != nil {
		fields["duration"] = "must be a number"
	}

	input := validation.CourseInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		Level:       c.FormValue("level"),
		Duration:    duration,
		IsFeatured:  c.FormValue("is_featured") == "true",
	}

	for field, msg := range validation.Check(input) {
		fields[field] = msg
	}
	return input, fields
}

func (ac *AdminController) CreateCourse(c *fiber.Ctx) error {
	input, fields := courseInputFromForm(c)
	if len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Level:       input.Level,
		Duration:    input.Duration,
		IsFeatured:  input.IsFeatured,
	}

	if file, err := c.FormFile("image"); err == nil {
		name, err := utils.SaveImage(c, file, ac.Cfg.UploadDir)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		course.Image = name
	}

	if err := ac.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "could not create course")
	}

	return utils.Created(c, course)
}

func (ac *AdminController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid course ID")
	}

	var course models.Course
	if err := ac.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "course not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	input, fields := courseInputFromForm(c)
	if len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Price = input.Price
	course.Level = input.Level
	course.Duration = input.Duration
	course.IsFeatured = input.IsFeatured

	if file, err := c.FormFile("image"); err == nil {
		name, err := utils.SaveImage(c, file, ac.Cfg.UploadDir)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		course.Image = name
	}

	if err := ac.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "could not update course")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

// DeleteCourse removes a course and everything it owns. The cascade is
// explicit: completion rows first, then lessons, then modules, then the
// course, in one transaction.
func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid course ID")
	}

	var course models.Course
	if err := ac.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "course not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []uint
		if err := tx.Model(&models.Module{}).
			Where("course_id = ?", course.ID).
			Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}
		if len(moduleIDs) > 0 {
			var lessonIDs []uint
			if err := tx.Model(&models.Lesson{}).
				Where("module_id IN ?", moduleIDs).
				Pluck("id", &lessonIDs).Error; err != nil {
				return err
			}
			if len(lessonIDs) > 0 {
				if err := tx.Where("lesson_id IN ?", lessonIDs).Delete(&models.LessonCompletion{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("module_id IN ?", moduleIDs).Delete(&models.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", moduleIDs).Delete(&models.Module{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "could not delete course")
	}

	return utils.Message(c, fiber.StatusOK, "course deleted")
}

func (ac *AdminController) CreateModule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid course ID")
	}

	var course models.Course
	if err := ac.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "course not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var input validation.ModuleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	// New modules append to the end unless an explicit position arrives.
	if input.Position == 0 {
		var count int64
		ac.DB.Model(&models.Module{}).Where("course_id = ?", course.ID).Count(&count)
		input.Position = int(count) + 1
	}

	module := models.Module{
		CourseID:    course.ID,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
	}

	if err := ac.DB.Create(&module).Error; err != nil {
		return utils.InternalServerError(c, "could not create module")
	}

	return utils.Created(c, module)
}

func (ac *AdminController) UpdateModule(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid module ID")
	}

	var module models.Module
	if err := ac.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "module not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var input validation.ModuleInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	module.Title = input.Title
	module.Description = input.Description
	if input.Position > 0 {
		module.Position = input.Position
	}

	if err := ac.DB.Save(&module).Error; err != nil {
		return utils.InternalServerError(c, "could not update module")
	}

	return utils.Success(c, fiber.StatusOK, module)
}

// DeleteModule removes a module and its lessons in one transaction.
func (ac *AdminController) DeleteModule(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid module ID")
	}

	var module models.Module
	if err := ac.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "module not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		var lessonIDs []uint
		if err := tx.Model(&models.Lesson{}).
			Where("module_id = ?", module.ID).
			Pluck("id", &lessonIDs).Error; err != nil {
			return err
		}
		if len(lessonIDs) > 0 {
			if err := tx.Where("lesson_id IN ?", lessonIDs).Delete(&models.LessonCompletion{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("module_id = ?", module.ID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&module).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "could not delete module")
	}

	return utils.Message(c, fiber.StatusOK, "module deleted")
}

func (ac *AdminController) CreateLesson(c *fiber.Ctx) error {
	moduleID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid module ID")
	}

	var module models.Module
	if err := ac.DB.First(&module, moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "module not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var input validation.LessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	if input.Position == 0 {
		var count int64
		ac.DB.Model(&models.Lesson{}).Where("module_id = ?", module.ID).Count(&count)
		input.Position = int(count) + 1
	}

	lesson := models.Lesson{
		ModuleID: module.ID,
		Title:    input.Title,
		Content:  input.Content,
		VideoURL: input.VideoURL,
		Position: input.Position,
		Duration: input.Duration,
	}

	if err := ac.DB.Create(&lesson).Error; err != nil {
		return utils.InternalServerError(c, "could not create lesson")
	}

	return utils.Created(c, lesson)
}

func (ac *AdminController) UpdateLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid lesson ID")
	}

	var lesson models.Lesson
	if err := ac.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "lesson not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var input validation.LessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "cannot parse JSON")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return utils.ValidationError(c, fields)
	}

	lesson.Title = input.Title
	lesson.Content = input.Content
	lesson.VideoURL = input.VideoURL
	lesson.Duration = input.Duration
	if input.Position > 0 {
		lesson.Position = input.Position
	}

	if err := ac.DB.Save(&lesson).Error; err != nil {
		return utils.InternalServerError(c, "could not update lesson")
	}

	return utils.Success(c, fiber.StatusOK, lesson)
}

func (ac *AdminController) DeleteLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid lesson ID")
	}

	var lesson models.Lesson
	if err := ac.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "lesson not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", lesson.ID).Delete(&models.LessonCompletion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&lesson).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "could not delete lesson")
	}

	return utils.Message(c, fiber.StatusOK, "lesson deleted")
}
