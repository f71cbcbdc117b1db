package adminRoutes

import (
	adminControllers "campusconnect/controllers/admin"
	"campusconnect/middleware"
	"campusconnect/models"
	adminValidators "campusconnect/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up course moderation and user management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	// Course moderation
	adminGroup.Get("/course/list", adminControllers.GetAllCourses)
	adminGroup.Put("/course/:id/review", adminValidators.ReviewCourse(), adminControllers.ReviewCourse)

	// User management
	adminGroup.Get("/user/list", adminControllers.GetUsers)
	adminGroup.Post("/user/create", adminValidators.AddUser(), adminControllers.AddUser)
	adminGroup.Delete("/user/:id", adminValidators.UserID(), adminControllers.DeleteUser)
	adminGroup.Patch("/user/:id/block", adminValidators.UserID(), adminControllers.BlockUser)

	// Dashboard and feedback
	adminGroup.Get("/dashboard/stats", adminControllers.GetDashboard)
	adminGroup.Get("/feedback", adminControllers.GetFeedbackOverview)
}
