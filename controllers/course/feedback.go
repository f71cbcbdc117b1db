package controllers

import (
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback allows an enrolled student to rate a course once
func SubmitFeedback(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if course exists
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Only enrolled students can rate
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	// Check if user has already given feedback for this course
	var existingFeedback courseModels.Feedback
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existingFeedback).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already given feedback for this course!", nil)
	}

	feedback := courseModels.Feedback{
		UserID:   userID,
		CourseID: uint(courseID),
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback submitted successfully!", feedback)
}

// GetCourseFeedback returns all feedback for a course with reviewer names
func GetCourseFeedback(c *fiber.Ctx) error {
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
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type FeedbackWithUser struct {
		courseModels.Feedback
		UserName string `json:"user_name"`
	}

	var feedbacks []courseModels.Feedback
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("created_at desc").Find(&feedbacks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	result := make([]FeedbackWithUser, len(feedbacks))
	for i, f := range feedbacks {
		var reviewer models.User
		database.Database.Db.Where("id = ?", f.UserID).First(&reviewer)
		result[i] = FeedbackWithUser{
			Feedback: f,
			UserName: reviewer.Name,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", fiber.Map{
		"feedback": result,
	})
}
