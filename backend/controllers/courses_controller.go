package controllers

import (
	"errors"
	"strconv"

	"coursehub/backend/access"
	"coursehub/backend/config"
	"coursehub/backend/middleware"
	"coursehub/backend/models"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CoursesController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg}
}

// purchasedCourseIDs returns the ids of courses the user owns, or nil
// for anonymous callers.
func (cc *CoursesController) purchasedCourseIDs(user *models.User) []uint {
	if user == nil {
		return nil
	}
	var ids []uint
	cc.DB.Model(&models.Purchase{}).Where("user_id = ?", user.ID).Pluck("course_id", &ids)
	return ids
}

// ListCourses returns the full catalog plus, for logged-in callers, the
// ids of the courses they already own.
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses":   courses,
		"purchased": cc.purchasedCourseIDs(middleware.CurrentUser(c)),
	})
}

// FeaturedCourses returns the courses highlighted on the home page.
func (cc *CoursesController) FeaturedCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.Where("is_featured = ?", true).Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"courses":   courses,
		"purchased": cc.purchasedCourseIDs(middleware.CurrentUser(c)),
	})
}

// GetCourse returns the sales page payload: the course, its module and
// lesson outline without lesson content, and the caller's purchase when
// one exists.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid course ID")
	}

	var course models.Course
	if err := utils.PreloadCourseContent(cc.DB).First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "course not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	modules := make([]fiber.Map, 0, len(course.Modules))
	for mi := range course.Modules {
		module := &course.Modules[mi]
		lessons := make([]fiber.Map, 0, len(module.Lessons))
		for li := range module.Lessons {
			lesson := &module.Lessons[li]
			// Content stays behind the entitlement gate.
			lessons = append(lessons, fiber.Map{
				"id":       lesson.ID,
				"title":    lesson.Title,
				"position": lesson.Position,
				"duration": lesson.Duration,
			})
		}
		modules = append(modules, fiber.Map{
			"id":          module.ID,
			"title":       module.Title,
			"description": module.Description,
			"position":    module.Position,
			"lessons":     lessons,
		})
	}

	payload := fiber.Map{
		"course": fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"price":       course.Price,
			"level":       course.Level,
			"duration":    course.Duration,
			"image":       course.Image,
			"is_featured": course.IsFeatured,
			"modules":     modules,
		},
	}

	if user := middleware.CurrentUser(c); user != nil {
		var purchase models.Purchase
		err := cc.DB.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&purchase).Error
		if err == nil {
			payload["purchase"] = purchase
		}
	}

	return utils.Success(c, fiber.StatusOK, payload)
}

// MyCourses lists the caller's purchases with their courses.
func (cc *CoursesController) MyCourses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var purchases []models.Purchase
	if err := cc.DB.Preload("Course").Where("user_id = ?", user.ID).Find(&purchases).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	return utils.Success(c, fiber.StatusOK, purchases)
}

// GetLesson serves lesson content. Entitlement is recomputed on every
// request from the current purchase state; there is no cached unlock
// set, so a new purchase or admin grant applies immediately.
func (cc *CoursesController) GetLesson(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "invalid course ID")
	}
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "invalid lesson ID")
	}

	var course models.Course
	if err := utils.PreloadCourseContent(cc.DB).First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "course not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	lesson, module := models.FindLesson(&course, uint(lessonID))
	if lesson == nil {
		return utils.NotFound(c, "lesson not found")
	}

	purchase := cc.findPurchase(user.ID, course.ID)
	if !access.CanViewLessons(user, purchase) {
		return utils.Error(c, fiber.StatusForbidden,
			errors.New("you need to purchase this course to access its lessons"),
			fiber.Map{"course_id": course.ID})
	}

	prev, next := models.NeighborLessons(&course, lesson.ID)

	var completed bool
	var count int64
	cc.DB.Model(&models.LessonCompletion{}).
		Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).
		Count(&count)
	completed = count > 0

	payload := fiber.Map{
		"course": fiber.Map{
			"id":    course.ID,
			"title": course.Title,
		},
		"module": fiber.Map{
			"id":    module.ID,
			"title": module.Title,
		},
		"lesson":    lesson,
		"completed": completed,
	}
	if prev != nil {
		payload["prev_lesson"] = fiber.Map{"id": prev.ID, "title": prev.Title}
	}
	if next != nil {
		payload["next_lesson"] = fiber.Map{"id": next.ID, "title": next.Title}
	}

	return utils.Success(c, fiber.StatusOK, payload)
}

// CompleteLesson marks a lesson finished for the caller and recomputes
// the purchase progress from the completion rows.
func (cc *CoursesController) CompleteLesson(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return utils.BadRequest(c, "invalid lesson ID")
	}

	var lesson models.Lesson
	if err := cc.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "lesson not found")
		}
		return utils.InternalServerError(c, "could not query database")
	}

	var module models.Module
	if err := cc.DB.First(&module, lesson.ModuleID).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	var course models.Course
	if err := utils.PreloadCourseContent(cc.DB).First(&course, module.CourseID).Error; err != nil {
		return utils.InternalServerError(c, "could not query database")
	}

	purchase := cc.findPurchase(user.ID, course.ID)
	if purchase == nil {
		return utils.Error(c, fiber.StatusForbidden, errors.New("course not purchased"))
	}

	// The completion row and the recomputed progress land together or
	// not at all.
	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		completion := models.LessonCompletion{UserID: user.ID, LessonID: lesson.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
			return err
		}

		total := models.LessonCount(&course)
		if total == 0 {
			return nil
		}

		lessonIDs := make([]uint, 0, total)
		for mi := range course.Modules {
			for li := range course.Modules[mi].Lessons {
				lessonIDs = append(lessonIDs, course.Modules[mi].Lessons[li].ID)
			}
		}

		var done int64
		if err := tx.Model(&models.LessonCompletion{}).
			Where("user_id = ? AND lesson_id IN ?", user.ID, lessonIDs).
			Count(&done).Error; err != nil {
			return err
		}

		purchase.Progress = int(done) * 100 / total
		if purchase.Progress >= 100 {
			purchase.Status = models.PurchaseStatusCompleted
		}
		return tx.Save(purchase).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "could not record completion")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lesson_id": lesson.ID,
		"progress":  purchase.Progress,
		"status":    purchase.Status,
	})
}

func (cc *CoursesController) findPurchase(userID, courseID uint) *models.Purchase {
	var purchase models.Purchase
	err := cc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&purchase).Error
	if err != nil {
		return nil
	}
	return &purchase
}
