package teacherValidator

import (
	"campusconnect/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parsePositiveParam(c *fiber.Ctx, name string) (int, bool) {
	raw := strings.TrimSpace(c.Params(name))
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return 0, false
	}
	return val, true
}

// CreateCourse validates the course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates :id and the partial course update body
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateModule validates :id and the module creation body
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates :course_id, :module_id and the module update body
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parsePositiveParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ModuleID validates :course_id and :module_id route parameters
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parsePositiveParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// CreateContent validates :course_id, :module_id and the content body.
// The kind-specific payload must match the declared content type.
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		moduleID, ok := parsePositiveParam(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			ContentType string `json:"content_type"`
			VideoURL    string `json:"video_url"`
			Body        string `json:"body"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		switch reqData.ContentType {
		case "VIDEO":
			if strings.TrimSpace(reqData.VideoURL) == "" {
				errors["video_url"] = "Video URL is required for VIDEO content!"
			}
		case "READING":
			if strings.TrimSpace(reqData.Body) == "" {
				errors["body"] = "Body text is required for READING content!"
			}
		case "QUIZ", "ASSIGNMENT":
			// Quiz questions are added separately; assignments need no payload
		default:
			errors["content_type"] = "Content type must be VIDEO, READING, QUIZ or ASSIGNMENT!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// UpdateContent validates :course_id, :content_id and the partial
// content update body
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		contentID, ok := parsePositiveParam(c, "content_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			VideoURL    string `json:"video_url"`
			Body        string `json:"body"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}

// ContentID validates :course_id and :content_id route parameters
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		contentID, ok := parsePositiveParam(c, "content_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		return c.Next()
	}
}

// QuestionID validates :course_id and :question_id route parameters
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		questionID, ok := parsePositiveParam(c, "question_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("questionID", questionID)
		return c.Next()
	}
}

// AddQuizQuestion validates :course_id, :content_id and the question body
func AddQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		contentID, ok := parsePositiveParam(c, "content_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		reqData := new(struct {
			Text          string   `json:"text"`
			Options       []string `json:"options"`
			CorrectAnswer int      `json:"correct_answer"`
			OrderIndex    int      `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Text) == "" {
			errors["text"] = "Question text is required!"
		}

		if len(reqData.Options) < 2 {
			errors["options"] = "At least two options are required!"
		}

		if reqData.CorrectAnswer < 0 || reqData.CorrectAnswer >= len(reqData.Options) {
			errors["correct_answer"] = "Correct answer must be a valid option index!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("contentID", contentID)
		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuizQuestion validates :course_id, :question_id and the partial
// question update body
func UpdateQuizQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		questionID, ok := parsePositiveParam(c, "question_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(struct {
			Text          string   `json:"text"`
			Options       []string `json:"options"`
			CorrectAnswer *int     `json:"correct_answer"`
			OrderIndex    int      `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Options) > 0 {
			if len(reqData.Options) < 2 {
				errors["options"] = "At least two options are required!"
			}
			if reqData.CorrectAnswer == nil {
				errors["correct_answer"] = "Correct answer is required when options change!"
			} else if *reqData.CorrectAnswer < 0 || *reqData.CorrectAnswer >= len(reqData.Options) {
				errors["correct_answer"] = "Correct answer must be a valid option index!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("questionID", questionID)
		c.Locals("validatedQuestionUpdate", reqData)
		return c.Next()
	}
}

// GradeSubmission validates :id (submission) and the grade body. The
// grade must be an integer in [0, 100]; anything else is rejected
// before any write happens.
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		submissionID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Submission ID!", nil)
		}

		reqData := new(struct {
			Grade *int `json:"grade"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Grade == nil {
			errors["grade"] = "Grade is required!"
		} else if *reqData.Grade < 0 || *reqData.Grade > 100 {
			errors["grade"] = "Grade must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("submissionID", submissionID)
		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
