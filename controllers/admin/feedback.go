package adminController

import (
	"strconv"

	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
)

// FeedbackOverviewRow is one feedback entry joined with its course and author
type FeedbackOverviewRow struct {
	courseModels.Feedback
	CourseTitle string `json:"course_title"`
	StudentName string `json:"student_name"`
}

// GetFeedbackOverview lists recent feedback across all courses with
// per-course average ratings.
func GetFeedbackOverview(c *fiber.Ctx) error {
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

	var total int64
	database.Database.Db.Model(&courseModels.Feedback{}).Where("is_deleted = ?", false).Count(&total)

	var feedback []FeedbackOverviewRow
	if err := database.Database.Db.Model(&courseModels.Feedback{}).
		Select("feedbacks.*, courses.title as course_title, users.name as student_name").
		Joins("JOIN courses ON courses.id = feedbacks.course_id").
		Joins("JOIN users ON users.id = feedbacks.user_id").
		Where("feedbacks.is_deleted = ?", false).
		Order("feedbacks.created_at desc").
		Limit(limit).Offset(offset).
		Find(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	type courseRating struct {
		CourseID      uint    `json:"course_id"`
		CourseTitle   string  `json:"course_title"`
		AverageRating float64 `json:"average_rating"`
		Count         int64   `json:"count"`
	}

	var ratings []courseRating
	database.Database.Db.Model(&courseModels.Feedback{}).
		Select("feedbacks.course_id, courses.title as course_title, AVG(feedbacks.rating) as average_rating, COUNT(*) as count").
		Joins("JOIN courses ON courses.id = feedbacks.course_id").
		Where("feedbacks.is_deleted = ?", false).
		Group("feedbacks.course_id, courses.title").
		Order("average_rating desc").
		Find(&ratings)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback overview fetched successfully!", fiber.Map{
		"feedback":       feedback,
		"course_ratings": ratings,
		"total":          total,
		"page":           page,
		"limit":          limit,
	})
}
