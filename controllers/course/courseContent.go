package controllers

import (
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// MarkContentComplete records a completed content item for the
// enrolled student and recomputes the enrollment's progress. Marking
// the same item twice is a no-op: the stored completion set has union
// semantics and progress does not move.
func MarkContentComplete(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Retrieve validated IDs
	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	// Check if course exists and is approved
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.StatusApproved).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not approved!", nil)
	}

	// Check if content exists within this course
	var content courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course content not found!", nil)
	}

	// Check if user is enrolled in the course
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Re-marking an already completed item leaves everything unchanged
	var existingCompletion courseModels.ContentCompletion
	if err := database.Database.Db.Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, contentID, false).First(&existingCompletion).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content already marked as completed.", fiber.Map{
			"completion": existingCompletion,
			"enrollment": enrollment,
		})
	}

	// Create completion record
	completion := courseModels.ContentCompletion{
		UserID:    userID,
		CourseID:  uint(courseID),
		ContentID: uint(contentID),
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&completion).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark content as completed!", nil)
	}
	tx.Commit()

	// Update enrollment progress
	if _, err := utils.RecomputeProgress(database.Database.Db, userID, uint(courseID)); err != nil {
		log.Printf("Failed to recompute progress for user %d course %d: %v", userID, courseID, err)
	}

	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content marked as completed successfully!", fiber.Map{
		"completion": completion,
		"enrollment": enrollment,
	})
}

// GetContentCompletions lists the caller's completions for a course
func GetContentCompletions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	// Check if user is enrolled
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var completions []courseModels.ContentCompletion
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Order("created_at desc").Find(&completions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completions fetched successfully!", fiber.Map{
		"completions": completions,
		"enrollment":  enrollment,
	})
}
