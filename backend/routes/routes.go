package routes

import (
	"coursehub/backend/config"
	"coursehub/backend/controllers"
	"coursehub/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)
	app.Post("/api/auth/forgot-password", authController.ForgotPassword)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(db, cfg)
	optionalAuth := middleware.OptionalAuthMiddleware(db, cfg)
	adminMiddleware := middleware.AdminMiddleware()

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/users/:username", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)
	app.Put("/api/user/password", authMiddleware, userController.ChangePassword)

	// Catalog routes: public, personalized when a session is present
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", optionalAuth, coursesController.ListCourses)
	app.Get("/api/courses/featured", optionalAuth, coursesController.FeaturedCourses)
	app.Get("/api/courses/:id", optionalAuth, coursesController.GetCourse)

	// Content routes: authentication plus the entitlement gate inside
	app.Get("/api/my-courses", authMiddleware, coursesController.MyCourses)
	app.Get("/api/courses/:id/lessons/:lessonId", authMiddleware, coursesController.GetLesson)
	app.Post("/api/lessons/:lessonId/complete", authMiddleware, coursesController.CompleteLesson)

	// Purchase
	purchaseController := controllers.NewPurchaseController(db, cfg)
	app.Post("/api/courses/:id/purchase", authMiddleware, purchaseController.PurchaseCourse)

	// Mentorship
	mentorshipController := controllers.NewMentorshipController(db, cfg)
	app.Get("/api/mentorships", authMiddleware, mentorshipController.ListMentorships)
	app.Post("/api/mentorships", authMiddleware, mentorshipController.RequestMentorship)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/overview", adminController.Overview)
	admin.Post("/users/:id/toggle", adminController.ToggleAdmin)

	admin.Post("/courses", adminController.CreateCourse)
	admin.Put("/courses/:id", adminController.UpdateCourse)
	admin.Delete("/courses/:id", adminController.DeleteCourse)

	admin.Post("/courses/:id/modules", adminController.CreateModule)
	admin.Put("/modules/:id", adminController.UpdateModule)
	admin.Delete("/modules/:id", adminController.DeleteModule)

	admin.Post("/modules/:id/lessons", adminController.CreateLesson)
	admin.Put("/lessons/:id", adminController.UpdateLesson)
	admin.Delete("/lessons/:id", adminController.DeleteLesson)

	admin.Put("/mentorships/:id/status", mentorshipController.UpdateMentorshipStatus)
}
