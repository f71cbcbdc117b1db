package controllers

import (
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuizAnswer scores a student's quiz attempt against the stored
// answer key. A fully correct attempt marks the quiz content item
// complete, which in turn moves the enrollment's progress.
func SubmitQuizAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	// Check content exists and is a quiz
	var content courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if content.ContentType != courseModels.ContentQuiz {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content is not a quiz!", nil)
	}

	reqData := new(struct {
		Answers []int `json:"answers"` // selected option index per question, in question order
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Load the questions in order
	var questions []courseModels.QuizQuestion
	database.Database.Db.Where("content_id = ? AND is_deleted = ?", contentID, false).Order("order_index asc").Find(&questions)

	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions!", nil)
	}

	if len(reqData.Answers) != len(questions) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer every question!", nil)
	}

	// Score the attempt
	correctCount := 0
	for i, q := range questions {
		if reqData.Answers[i] == q.CorrectAnswer {
			correctCount++
		}
	}

	isCorrect := correctCount == len(questions)

	// Get attempt number
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, contentID, false).Count(&attemptCount)

	// Store selected answers as JSON
	selectedJSON, _ := json.Marshal(reqData.Answers)

	attempt := courseModels.QuizAttempt{
		UserID:          userID,
		ContentID:       uint(contentID),
		SelectedAnswers: string(selectedJSON),
		Score:           correctCount,
		MaxScore:        len(questions),
		IsCorrect:       isCorrect,
		AttemptNumber:   int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answer!", nil)
	}

	// A fully correct attempt completes the quiz content
	if isCorrect {
		var existingCompletion courseModels.ContentCompletion
		if err := database.Database.Db.Where("user_id = ? AND content_id = ? AND is_deleted = ?", userID, contentID, false).First(&existingCompletion).Error; err != nil {
			completion := courseModels.ContentCompletion{
				UserID:    userID,
				CourseID:  uint(courseID),
				ContentID: uint(contentID),
			}
			database.Database.Db.Create(&completion)

			// Update enrollment progress
			if _, err := utils.RecomputeProgress(database.Database.Db, userID, uint(courseID)); err != nil {
				log.Printf("Failed to recompute progress for user %d course %d: %v", userID, courseID, err)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", fiber.Map{
		"attempt":    attempt,
		"is_correct": isCorrect,
		"score":      correctCount,
		"max_score":  len(questions),
	})
}
