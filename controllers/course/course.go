package controllers

import (
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the student catalog. Only APPROVED courses are
// visible here; pending and rejected courses never reach students.
func GetAllCourses(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated pagination request
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		// If no pagination validator is set, proceed without pagination
		var courses []courseModels.Course
		if err := database.Database.Db.Where("is_deleted = ? AND status = ?", false, courseModels.StatusApproved).Find(&courses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": courses,
		})
	}

	// Set default pagination
	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ? AND status = ?", false, courseModels.StatusApproved)

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// Prepare response
	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// ContentWithQuestions is a content item enriched with its quiz
// questions and the caller's completion state
type ContentWithQuestions struct {
	courseModels.ContentItem
	Questions   []courseModels.QuizQuestion `json:"questions,omitempty"`
	IsCompleted bool                        `json:"is_completed"`
}

// ModuleWithContent is a module with its ordered content items
type ModuleWithContent struct {
	courseModels.Module
	Content []ContentWithQuestions `json:"content"`
}

// GetCourseDetails returns the full content tree of an approved course
// together with the caller's enrollment state
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.StatusApproved).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Get modules in order
	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	// Check if user is enrolled
	var enrollment courseModels.Enrollment
	isEnrolled := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error == nil

	// Collect the caller's completions once
	completedSet := make(map[uint]bool)
	if isEnrolled {
		var completions []courseModels.ContentCompletion
		database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&completions)
		for _, cc := range completions {
			completedSet[cc.ContentID] = true
		}
	}

	result := make([]ModuleWithContent, len(modules))
	for i, mod := range modules {
		var contents []courseModels.ContentItem
		database.Database.Db.Where("module_id = ? AND is_deleted = ?", mod.ID, false).Order("order_index asc").Find(&contents)

		items := make([]ContentWithQuestions, len(contents))
		for j, content := range contents {
			items[j] = ContentWithQuestions{
				ContentItem: content,
				IsCompleted: completedSet[content.ID],
			}

			// Attach questions for quiz content, hiding the answer key
			if content.ContentType == courseModels.ContentQuiz {
				var questions []courseModels.QuizQuestion
				database.Database.Db.Where("content_id = ? AND is_deleted = ?", content.ID, false).Order("order_index asc").Find(&questions)
				for k := range questions {
					questions[k].CorrectAnswer = -1
				}
				items[j].Questions = questions
			}
		}

		result[i] = ModuleWithContent{
			Module:  mod,
			Content: items,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"modules":     result,
		"is_enrolled": isEnrolled,
		"enrollment":  enrollment,
	})
}
