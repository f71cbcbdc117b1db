package adminController

import (
	"log"
	"strconv"

	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"

	"github.com/gofiber/fiber/v2"
)

// CourseWithTeacher is a course joined with its owner for moderation views
type CourseWithTeacher struct {
	courseModels.Course
	TeacherName  string `json:"teacher_name"`
	TeacherEmail string `json:"teacher_email"`
}

// GetAllCourses lists every course regardless of status. An optional
// status query filters the list (PENDING is the moderation queue).
func GetAllCourses(c *fiber.Ctx) error {
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

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&courseModels.Course{}).
		Select("courses.*, users.name as teacher_name, users.email as teacher_email").
		Joins("JOIN users ON users.id = courses.teacher_id").
		Where("courses.is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		query = query.Where("courses.status = ?", status)
	}

	var total int64
	query.Count(&total)

	var courses []CourseWithTeacher
	if err := query.Order("courses.created_at desc").Limit(limit).Offset(offset).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// ReviewCourse approves or rejects a pending course and emails the
// owning teacher with the decision.
func ReviewCourse(c *fiber.Ctx) error {
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

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedReview").(*struct {
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Status = reqData.Status

	tx := database.Database.Db.Begin()
	if err := tx.Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course status!", nil)
	}
	tx.Commit()

	go func() {
		var teacher models.User
		if err := database.Database.Db.Where("id = ?", course.TeacherID).First(&teacher).Error; err != nil {
			log.Println("Failed to load teacher for status email:", err)
			return
		}

		if err := utils.SendCourseStatusEmail(teacher.Email, teacher.Name, course.Title, course.Status); err != nil {
			log.Println("Failed to send course status email:", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course reviewed successfully!", course)
}
