package teacherController

import (
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
)

// StudentProgress is one row of the per-course performance table
type StudentProgress struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Progress     int    `json:"progress"`
	Completed    bool   `json:"completed"`
	EnrolledAt   string `json:"enrolled_at"`
	AverageGrade *int   `json:"average_grade"` // nil until at least one submission is graded
}

// GetCoursePerformance returns enrollment and progress for every
// student of an owned course, with the average grade over their graded
// submissions.
func GetCoursePerformance(c *fiber.Ctx) error {
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

	courseID := c.Locals("courseID").(int)

	course, err := ownedCourse(database.Database.Db, courseID, userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	students := make([]StudentProgress, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var student models.User
		if err := database.Database.Db.Where("id = ?", enrollment.UserID).First(&student).Error; err != nil {
			continue
		}

		row := StudentProgress{
			UserID:     student.ID,
			Name:       student.Name,
			Email:      student.Email,
			Progress:   enrollment.Progress,
			Completed:  enrollment.Completed,
			EnrolledAt: enrollment.CreatedAt.Format("2006-01-02"),
		}

		var gradedCount int64
		database.Database.Db.Model(&courseModels.Submission{}).
			Where("user_id = ? AND course_id = ? AND grade IS NOT NULL AND is_deleted = ?", student.ID, courseID, false).
			Count(&gradedCount)

		if gradedCount > 0 {
			var avg float64
			database.Database.Db.Model(&courseModels.Submission{}).
				Where("user_id = ? AND course_id = ? AND grade IS NOT NULL AND is_deleted = ?", student.ID, courseID, false).
				Select("AVG(grade)").Scan(&avg)
			rounded := int(avg + 0.5)
			row.AverageGrade = &rounded
		}

		students = append(students, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course performance fetched successfully!", fiber.Map{
		"course":   course,
		"students": students,
	})
}

// GetCourseFeedback lists feedback left on an owned course
func GetCourseFeedback(c *fiber.Ctx) error {
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

	courseID := c.Locals("courseID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type feedbackRow struct {
		courseModels.Feedback
		StudentName string `json:"student_name"`
	}

	var feedback []feedbackRow
	if err := database.Database.Db.Model(&courseModels.Feedback{}).
		Select("feedbacks.*, users.name as student_name").
		Joins("JOIN users ON users.id = feedbacks.user_id").
		Where("feedbacks.course_id = ? AND feedbacks.is_deleted = ?", courseID, false).
		Order("feedbacks.created_at desc").
		Find(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	var avgRating float64
	database.Database.Db.Model(&courseModels.Feedback{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Select("COALESCE(AVG(rating), 0)").Scan(&avgRating)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", fiber.Map{
		"feedback":       feedback,
		"average_rating": avgRating,
	})
}
