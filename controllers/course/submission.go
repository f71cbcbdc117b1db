package controllers

import (
	"campusconnect/config"
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SubmitAssignment creates a submission for an ASSIGNMENT content item.
// The body is multipart: a comment field plus an optional file. Every
// call creates a new submission row; resubmission does not overwrite
// earlier attempts.
func SubmitAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	assignmentID := c.Locals("assignmentID").(int)

	// Check if course exists and is approved
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND status = ?", courseID, false, courseModels.StatusApproved).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not approved!", nil)
	}

	// Check assignment exists within this course and is the graded kind
	var assignment courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", assignmentID, courseID, false).First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	if assignment.ContentType != courseModels.ContentAssignment {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Content is not an assignment!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	comment := c.FormValue("comment")

	// Optional file attachment
	fileURL := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		savedPath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Failed to save submission file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		fileURL = utils.GetFileURL(savedPath)
	}

	submission := courseModels.Submission{
		UserID:       userID,
		CourseID:     uint(courseID),
		AssignmentID: uint(assignmentID),
		TeacherID:    course.TeacherID,
		Comment:      comment,
		FileURL:      fileURL,
		Grade:        nil,
		SubmittedAt:  time.Now(),
	}

	if err := database.Database.Db.Create(&submission).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", submission)
}

// GetMySubmissions lists the caller's submissions with course and
// assignment titles (the student's grades view)
func GetMySubmissions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	type SubmissionWithDetails struct {
		courseModels.Submission
		CourseTitle     string `json:"course_title"`
		AssignmentTitle string `json:"assignment_title"`
	}

	var submissions []courseModels.Submission
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("submitted_at desc").Find(&submissions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch submissions!", nil)
	}

	result := make([]SubmissionWithDetails, len(submissions))
	for i, s := range submissions {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", s.CourseID).First(&course)

		var assignment courseModels.ContentItem
		database.Database.Db.Where("id = ?", s.AssignmentID).First(&assignment)

		result[i] = SubmissionWithDetails{
			Submission:      s,
			CourseTitle:     course.Title,
			AssignmentTitle: assignment.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", fiber.Map{
		"submissions": result,
	})
}
