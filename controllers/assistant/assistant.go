package assistantController

import (
	"strings"

	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRecommendations asks the model service for learning material
// recommendations based on the caller's progress in a course.
func GetRecommendations(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userId, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	var moduleTitles []string
	database.Database.Db.Model(&courseModels.Module{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").
		Pluck("title", &moduleTitles)

	input := utils.RecommendationInput{
		CourseName:        course.Title,
		StudentProgress:   utils.FormatStudentProgress(enrollment.Progress),
		LearningMaterials: strings.Join(moduleTitles, ", "),
	}

	recommendations, err := utils.GetRecommendations(input)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Assistant is unavailable right now. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations fetched successfully!", fiber.Map{
		"course_id":       course.ID,
		"progress":        enrollment.Progress,
		"recommendations": recommendations,
	})
}

// Chat relays a free-text question from the student to the assistant
func Chat(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := new(struct {
		Message string `json:"message"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Message) == "" {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"message": "Message is required!",
		})
	}

	reply, err := utils.Chat(user.Name, reqData.Message)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Assistant is unavailable right now. Please try again later.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assistant replied successfully!", fiber.Map{
		"reply": reply,
	})
}
