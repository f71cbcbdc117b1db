package adminController

import (
	"time"

	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// GetDashboard returns platform-wide counts plus this month's signup,
// enrollment and completion activity.
func GetDashboard(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	db := database.Database.Db

	var totalStudents, totalTeachers int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&totalStudents)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleTeacher, false).Count(&totalTeachers)

	var totalCourses, pendingCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&courseModels.Course{}).Where("status = ? AND is_deleted = ?", courseModels.StatusPending, false).Count(&pendingCourses)

	var totalEnrollments, completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Enrollment{}).Where("completed = ? AND is_deleted = ?", true, false).Count(&completedEnrollments)

	var certificatesIssued int64
	db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&certificatesIssued)

	var ungradedSubmissions int64
	db.Model(&courseModels.Submission{}).Where("grade IS NULL AND is_deleted = ?", false).Count(&ungradedSubmissions)

	monthStart := now.BeginningOfMonth()
	monthEnd := now.EndOfMonth()

	var newUsersThisMonth, enrollmentsThisMonth, completionsThisMonth int64
	db.Model(&models.User{}).
		Where("created_at BETWEEN ? AND ? AND is_deleted = ?", monthStart, monthEnd, false).
		Count(&newUsersThisMonth)
	db.Model(&courseModels.Enrollment{}).
		Where("created_at BETWEEN ? AND ? AND is_deleted = ?", monthStart, monthEnd, false).
		Count(&enrollmentsThisMonth)
	db.Model(&courseModels.Enrollment{}).
		Where("completed_at BETWEEN ? AND ? AND is_deleted = ?", monthStart, monthEnd, false).
		Count(&completionsThisMonth)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"totals": fiber.Map{
			"students":              totalStudents,
			"teachers":              totalTeachers,
			"courses":               totalCourses,
			"pending_courses":       pendingCourses,
			"enrollments":           totalEnrollments,
			"completed_enrollments": completedEnrollments,
			"certificates_issued":   certificatesIssued,
			"ungraded_submissions":  ungradedSubmissions,
		},
		"this_month": fiber.Map{
			"from":        monthStart.Format(time.RFC3339),
			"to":          monthEnd.Format(time.RFC3339),
			"new_users":   newUsersThisMonth,
			"enrollments": enrollmentsThisMonth,
			"completions": completionsThisMonth,
		},
	})
}
