package teacherController

import (
	"log"
	"time"

	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmissionWithStudent is a submission joined with the student and
// assignment it belongs to, for the grading inbox.
type SubmissionWithStudent struct {
	courseModels.Submission
	StudentName     string `json:"student_name"`
	StudentEmail    string `json:"student_email"`
	AssignmentTitle string `json:"assignment_title"`
	CourseTitle     string `json:"course_title"`
}

// GetSubmissions lists submissions for the calling teacher's courses.
// An optional graded=true|false query filters by grading state.
func GetSubmissions(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	query := database.Database.Db.Model(&courseModels.Submission{}).
		Select("submissions.*, users.name as student_name, users.email as student_email, content_items.title as assignment_title, courses.title as course_title").
		Joins("JOIN users ON users.id = submissions.user_id").
		Joins("JOIN content_items ON content_items.id = submissions.assignment_id").
		Joins("JOIN courses ON courses.id = submissions.course_id").
		Where("submissions.teacher_id = ? AND submissions.is_deleted = ?", userId, false)

	switch c.Query("graded") {
	case "true":
		query = query.Where("submissions.grade IS NOT NULL")
	case "false":
		query = query.Where("submissions.grade IS NULL")
	}

	var submissions []SubmissionWithStudent
	if err := query.Order("submissions.submitted_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"submissions": submissions,
	})
}

// GradeSubmission records a grade on a submission belonging to one of
// the calling teacher's courses and emails the student.
func GradeSubmission(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	submissionID := c.Locals("submissionID").(int)

	reqData, ok := c.Locals("validatedGrade").(*struct {
		Grade *int `json:"grade"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var submission courseModels.Submission
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", submissionID, false).First(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Submission not found!", nil)
	}

	if submission.TeacherID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only grade submissions for your own courses!", nil)
	}

	now := time.Now()
	submission.Grade = reqData.Grade
	submission.GradedAt = &now

	tx := database.Database.Db.Begin()
	if err := tx.Save(&submission).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to grade submission!", nil)
	}
	tx.Commit()

	// Notify the student without blocking the response
	go func() {
		var student models.User
		if err := database.Database.Db.Where("id = ?", submission.UserID).First(&student).Error; err != nil {
			log.Println("Failed to load student for grade email:", err)
			return
		}

		var course courseModels.Course
		database.Database.Db.Where("id = ?", submission.CourseID).First(&course)

		var assignment courseModels.ContentItem
		database.Database.Db.Where("id = ?", submission.AssignmentID).First(&assignment)

		if err := utils.SendGradeEmail(student.Email, student.Name, course.Title, assignment.Title, *reqData.Grade); err != nil {
			log.Println("Failed to send grade email:", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}
