package courseRoutes

import (
	assistantControllers "campusconnect/controllers/assistant"
	controllers "campusconnect/controllers/course"
	"campusconnect/middleware"
	validators "campusconnect/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all student-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog (approved courses only)
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Content completion and progress
	courseGroup.Post("/:course_id/content/:content_id/complete", middleware.JWTMiddleware, validators.MarkContentComplete(), controllers.MarkContentComplete)
	courseGroup.Get("/:id/completions", middleware.JWTMiddleware, validators.CourseID(), controllers.GetContentCompletions)
	courseGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.GetCourseProgress(), controllers.GetUserProgress)

	// Quiz submission
	courseGroup.Post("/:course_id/content/:content_id/quiz/submit", middleware.JWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuizAnswer)

	// Assignment submission (multipart, optional file)
	courseGroup.Post("/:id/assignment/:assignment_id/submit", middleware.JWTMiddleware, validators.SubmitAssignment(), controllers.SubmitAssignment)

	// Feedback
	courseGroup.Post("/:id/feedback", middleware.JWTMiddleware, validators.SubmitFeedback(), controllers.SubmitFeedback)
	courseGroup.Get("/:id/feedback", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseFeedback)

	// Certificates
	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), controllers.IssueCertificate)

	// Assistant
	courseGroup.Get("/:id/recommendations", middleware.JWTMiddleware, validators.CourseID(), assistantControllers.GetRecommendations)

	// Per-user listings
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollments)
	userGroup.Get("/submissions", middleware.JWTMiddleware, controllers.GetMySubmissions)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Assistant chat
	assistantGroup := app.Group("/assistant")
	assistantGroup.Post("/chat", middleware.JWTMiddleware, assistantControllers.Chat)
}
