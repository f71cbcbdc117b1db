package controllers

import (
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetUserProgress returns the caller's enrollment with a per-module
// progress breakdown
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Get completed content IDs (live content only)
	var completedIDs []uint
	database.Database.Db.Model(&courseModels.ContentCompletion{}).
		Joins("JOIN content_items ON content_items.id = content_completions.content_id AND content_items.is_deleted = ?", false).
		Where("content_completions.user_id = ? AND content_completions.course_id = ? AND content_completions.is_deleted = ?", userID, courseID, false).
		Pluck("content_completions.content_id", &completedIDs)

	// Get module-wise progress
	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&modules)

	type ModuleProgress struct {
		ModuleID          uint   `json:"module_id"`
		ModuleName        string `json:"module_name"`
		TotalContents     int64  `json:"total_contents"`
		CompletedContents int64  `json:"completed_contents"`
		Progress          int    `json:"progress"`
	}

	moduleProgress := make([]ModuleProgress, len(modules))
	for i, mod := range modules {
		var totalContent int64
		var completedContent int64

		database.Database.Db.Model(&courseModels.ContentItem{}).Where("module_id = ? AND is_deleted = ?", mod.ID, false).Count(&totalContent)
		database.Database.Db.Model(&courseModels.ContentCompletion{}).
			Joins("JOIN content_items ON content_items.id = content_completions.content_id AND content_items.is_deleted = ?", false).
			Where("content_completions.user_id = ? AND content_items.module_id = ? AND content_completions.is_deleted = ?", userID, mod.ID, false).
			Count(&completedContent)

		progress := 0
		if totalContent > 0 {
			progress = int(float64(completedContent) / float64(totalContent) * 100)
		}

		moduleProgress[i] = ModuleProgress{
			ModuleID:          mod.ID,
			ModuleName:        mod.Title,
			TotalContents:     totalContent,
			CompletedContents: completedContent,
			Progress:          progress,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":      enrollment,
		"completed_ids":   completedIDs,
		"module_progress": moduleProgress,
	})
}
