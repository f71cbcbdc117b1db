package teacherRoutes

import (
	teacherControllers "campusconnect/controllers/teacher"
	"campusconnect/middleware"
	"campusconnect/models"
	teacherValidators "campusconnect/validators/teacher"

	"github.com/gofiber/fiber/v2"
)

// SetupTeacherRoutes sets up all course authoring and grading routes
func SetupTeacherRoutes(app *fiber.App) {
	teacherGroup := app.Group("/teacher", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher))

	// Course CRUD
	teacherGroup.Post("/course/create", teacherValidators.CreateCourse(), teacherControllers.CreateCourse)
	teacherGroup.Get("/course/list", teacherControllers.GetMyCourses)
	teacherGroup.Put("/course/:id", teacherValidators.UpdateCourse(), teacherControllers.UpdateCourse)
	teacherGroup.Delete("/course/:id", teacherValidators.CourseID(), teacherControllers.DeleteCourse)

	// Module management
	teacherGroup.Post("/course/:id/module", teacherValidators.CreateModule(), teacherControllers.CreateModule)
	teacherGroup.Get("/course/:id/modules", teacherValidators.CourseID(), teacherControllers.ListModules)
	teacherGroup.Put("/course/:course_id/module/:module_id", teacherValidators.UpdateModule(), teacherControllers.UpdateModule)
	teacherGroup.Delete("/course/:course_id/module/:module_id", teacherValidators.ModuleID(), teacherControllers.DeleteModule)

	// Content management
	teacherGroup.Post("/course/:course_id/module/:module_id/content", teacherValidators.CreateContent(), teacherControllers.CreateContent)
	teacherGroup.Put("/course/:course_id/content/:content_id", teacherValidators.UpdateContent(), teacherControllers.UpdateContent)
	teacherGroup.Delete("/course/:course_id/content/:content_id", teacherValidators.ContentID(), teacherControllers.DeleteContent)

	// Quiz questions
	teacherGroup.Post("/course/:course_id/content/:content_id/question", teacherValidators.AddQuizQuestion(), teacherControllers.AddQuizQuestion)
	teacherGroup.Put("/course/:course_id/question/:question_id", teacherValidators.UpdateQuizQuestion(), teacherControllers.UpdateQuizQuestion)
	teacherGroup.Delete("/course/:course_id/question/:question_id", teacherValidators.QuestionID(), teacherControllers.DeleteQuizQuestion)

	// Grading
	teacherGroup.Get("/submissions", teacherControllers.GetSubmissions)
	teacherGroup.Put("/submission/:id/grade", teacherValidators.GradeSubmission(), teacherControllers.GradeSubmission)

	// Performance and feedback
	teacherGroup.Get("/course/:id/performance", teacherValidators.CourseID(), teacherControllers.GetCoursePerformance)
	teacherGroup.Get("/course/:id/feedback", teacherValidators.CourseID(), teacherControllers.GetCourseFeedback)
}
