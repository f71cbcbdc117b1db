package teacherController

import (
	"encoding/json"
	"log"

	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// reconcileCourseEnrollments recomputes progress for every enrollment of
// a course after its content set changed.
func reconcileCourseEnrollments(courseID uint) {
	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Find(&enrollments).Error; err != nil {
		log.Println("Failed to load enrollments for reconciliation:", err)
		return
	}

	for _, enrollment := range enrollments {
		if _, err := utils.RecomputeProgress(database.Database.Db, enrollment.UserID, courseID); err != nil {
			log.Println("Failed to recompute progress for user", enrollment.UserID, "course", courseID, ":", err)
		}
	}
}

// ownedCourse loads a non-deleted course owned by the given teacher.
func ownedCourse(db *gorm.DB, courseID int, teacherID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND teacher_id = ? AND is_deleted = ?", courseID, teacherID, false).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateContent adds a content item to a module in an owned course
func CreateContent(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, courseID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ContentType string `json:"content_type"`
		VideoURL    string `json:"video_url"`
		Body        string `json:"body"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.ContentItem{}).Where("module_id = ? AND is_deleted = ?", moduleID, false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	content := courseModels.ContentItem{
		CourseID:    uint(courseID),
		ModuleID:    uint(moduleID),
		Title:       reqData.Title,
		Description: reqData.Description,
		ContentType: reqData.ContentType,
		VideoURL:    reqData.VideoURL,
		Body:        reqData.Body,
		OrderIndex:  orderIndex,
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	// New content lowers every enrolled student's percentage
	go reconcileCourseEnrollments(uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// UpdateContent updates a content item in an owned course
func UpdateContent(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var content courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	reqData, ok := c.Locals("validatedContentUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		VideoURL    string `json:"video_url"`
		Body        string `json:"body"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		content.Title = reqData.Title
	}
	if reqData.Description != "" {
		content.Description = reqData.Description
	}
	if reqData.VideoURL != "" {
		content.VideoURL = reqData.VideoURL
	}
	if reqData.Body != "" {
		content.Body = reqData.Body
	}
	if reqData.OrderIndex > 0 {
		content.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// DeleteContent soft deletes a content item from an owned course
func DeleteContent(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var content courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.IsDeleted = true
	if err := database.Database.Db.Save(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	go reconcileCourseEnrollments(uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// AddQuizQuestion adds a question to a quiz content item in an owned course
func AddQuizQuestion(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	contentID := c.Locals("contentID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var content courseModels.ContentItem
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", contentID, courseID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	if content.ContentType != courseModels.ContentQuiz {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Questions can only be added to quiz content!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		Text          string   `json:"text"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		OrderIndex    int      `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	options, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question options!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.QuizQuestion{}).Where("content_id = ? AND is_deleted = ?", contentID, false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	question := courseModels.QuizQuestion{
		ContentID:     uint(contentID),
		Text:          reqData.Text,
		Options:       datatypes.JSON(options),
		CorrectAnswer: reqData.CorrectAnswer,
		OrderIndex:    orderIndex,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

// UpdateQuizQuestion updates a quiz question in an owned course
func UpdateQuizQuestion(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	questionID := c.Locals("questionID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var question courseModels.QuizQuestion
	if err := database.Database.Db.
		Joins("JOIN content_items ON content_items.id = quiz_questions.content_id").
		Where("quiz_questions.id = ? AND content_items.course_id = ? AND quiz_questions.is_deleted = ?", questionID, courseID, false).
		First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestionUpdate").(*struct {
		Text          string   `json:"text"`
		Options       []string `json:"options"`
		CorrectAnswer *int     `json:"correct_answer"`
		OrderIndex    int      `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Text != "" {
		question.Text = reqData.Text
	}
	if len(reqData.Options) > 0 {
		options, err := json.Marshal(reqData.Options)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question options!", nil)
		}
		question.Options = datatypes.JSON(options)
		question.CorrectAnswer = *reqData.CorrectAnswer
	}
	if reqData.OrderIndex > 0 {
		question.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuizQuestion soft deletes a quiz question from an owned course
func DeleteQuizQuestion(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleTeacher {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Teacher only.", nil)
	}

	courseID := c.Locals("courseID").(int)
	questionID := c.Locals("questionID").(int)

	if _, err := ownedCourse(database.Database.Db, courseID, userId); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var question courseModels.QuizQuestion
	if err := database.Database.Db.
		Joins("JOIN content_items ON content_items.id = quiz_questions.content_id").
		Where("quiz_questions.id = ? AND content_items.course_id = ? AND quiz_questions.is_deleted = ?", questionID, courseID, false).
		First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
