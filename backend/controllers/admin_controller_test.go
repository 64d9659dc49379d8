package controllers_test

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"coursehub/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAdminRoutesForbiddenForNonAdmins(t *testing.T) {
	user := createUser(t, "lara", "lara@x.com", "secret123", false)
	target := createUser(t, "mario", "mario@x.com", "secret123", false)
	token := tokenFor(t, user)

	resp := doJSON(t, "GET", "/api/admin/overview", token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, "POST", fmt.Sprintf("/api/admin/users/%d/toggle", target.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// No mutation happened.
	var reloaded models.User
	require.NoError(t, db.First(&reloaded, target.ID).Error)
	assert.False(t, reloaded.IsAdmin)
}

func TestToggleAdmin(t *testing.T) {
	admin := createUser(t, "nina", "nina@x.com", "secret123", true)
	target := createUser(t, "otto", "otto@x.com", "secret123", false)
	token := tokenFor(t, admin)

	resp := doJSON(t, "POST", fmt.Sprintf("/api/admin/users/%d/toggle", target.ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, target.ID).Error)
	assert.True(t, reloaded.IsAdmin)
}

func TestToggleOwnAdminFlagRejected(t *testing.T) {
	admin := createUser(t, "paula", "paula@x.com", "secret123", true)

	resp := doJSON(t, "POST", fmt.Sprintf("/api/admin/users/%d/toggle", admin.ID), tokenFor(t, admin), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, admin.ID).Error)
	assert.True(t, reloaded.IsAdmin, "flag must stay untouched")
}

func TestDeleteCourseCascades(t *testing.T) {
	admin := createUser(t, "rita", "rita@x.com", "secret123", true)
	student := createUser(t, "ivo", "ivo@x.com", "secret123", false)
	course := seedCourse(t, "Doomed Course")
	moduleID := course.Modules[0].ID
	lessonID := course.Modules[0].Lessons[0].ID

	require.NoError(t, db.Create(&models.LessonCompletion{UserID: student.ID, LessonID: lessonID}).Error)

	resp := doJSON(t, "DELETE", fmt.Sprintf("/api/admin/courses/%d", course.ID), tokenFor(t, admin), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.True(t, errors.Is(db.First(&models.Course{}, course.ID).Error, gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(db.First(&models.Module{}, moduleID).Error, gorm.ErrRecordNotFound))
	assert.True(t, errors.Is(db.First(&models.Lesson{}, lessonID).Error, gorm.ErrRecordNotFound))

	// Completion rows for the deleted lessons go with them.
	var completions int64
	db.Model(&models.LessonCompletion{}).Where("lesson_id = ?", lessonID).Count(&completions)
	assert.EqualValues(t, 0, completions)
}

func TestDeleteLessonClearsCompletions(t *testing.T) {
	admin := createUser(t, "zeno", "zeno@x.com", "secret123", true)
	student := createUser(t, "amara", "amara@x.com", "secret123", false)
	course := seedCourse(t, "Trimmed Course")
	lessonID := course.Modules[0].Lessons[0].ID

	require.NoError(t, db.Create(&models.LessonCompletion{UserID: student.ID, LessonID: lessonID}).Error)

	resp := doJSON(t, "DELETE", fmt.Sprintf("/api/admin/lessons/%d", lessonID), tokenFor(t, admin), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.True(t, errors.Is(db.First(&models.Lesson{}, lessonID).Error, gorm.ErrRecordNotFound))

	var completions int64
	db.Model(&models.LessonCompletion{}).Where("lesson_id = ?", lessonID).Count(&completions)
	assert.EqualValues(t, 0, completions)
}

func TestCreateCourseFromForm(t *testing.T) {
	admin := createUser(t, "sonia", "sonia@x.com", "secret123", true)

	form := "title=Novo+Curso&description=Descricao&price=99.90&level=iniciante&duration=12&is_featured=true"
	req := httptest.NewRequest("POST", "/api/admin/courses", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", tokenFor(t, admin))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var course models.Course
	require.NoError(t, db.Where("title = ?", "Novo Curso").First(&course).Error)
	assert.Equal(t, models.LevelBeginner, course.Level)
	assert.True(t, course.IsFeatured)
}

func TestCreateCourseValidation(t *testing.T) {
	admin := createUser(t, "tania", "tania@x.com", "secret123", true)

	form := "title=&description=&price=abc&level=expert&duration=0"
	req := httptest.NewRequest("POST", "/api/admin/courses", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", tokenFor(t, admin))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	result := decode(t, resp)
	details, _ := result["details"].(map[string]interface{})
	require.NotNil(t, details)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "price")
	assert.Contains(t, details, "level")
}

func TestModuleAndLessonCRUD(t *testing.T) {
	admin := createUser(t, "ursula", "ursula@x.com", "secret123", true)
	token := tokenFor(t, admin)

	course := seedCourse(t, "CRUD Course")

	resp := doJSON(t, "POST", fmt.Sprintf("/api/admin/courses/%d/modules", course.ID), token, map[string]interface{}{
		"title": "Extra Module",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	moduleData := dataOf(t, resp)
	// Three seeded modules exist: the new one appends as position 4.
	assert.EqualValues(t, 4, moduleData["position"])
	moduleID := uint(moduleData["id"].(float64))

	resp = doJSON(t, "POST", fmt.Sprintf("/api/admin/modules/%d/lessons", moduleID), token, map[string]interface{}{
		"title":   "Extra Lesson",
		"content": "body",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	lessonData := dataOf(t, resp)
	lessonID := uint(lessonData["id"].(float64))

	resp = doJSON(t, "PUT", fmt.Sprintf("/api/admin/lessons/%d", lessonID), token, map[string]interface{}{
		"title":   "Renamed Lesson",
		"content": "body",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lesson models.Lesson
	require.NoError(t, db.First(&lesson, lessonID).Error)
	assert.Equal(t, "Renamed Lesson", lesson.Title)

	require.NoError(t, db.Create(&models.LessonCompletion{UserID: admin.ID, LessonID: lessonID}).Error)

	resp = doJSON(t, "DELETE", fmt.Sprintf("/api/admin/modules/%d", moduleID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, errors.Is(db.First(&models.Lesson{}, lessonID).Error, gorm.ErrRecordNotFound),
		"module delete takes its lessons with it")

	var completions int64
	db.Model(&models.LessonCompletion{}).Where("lesson_id = ?", lessonID).Count(&completions)
	assert.EqualValues(t, 0, completions)
}
