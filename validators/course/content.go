package courseValidator

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

// MarkContentComplete validates :course_id and :content_id route params
func MarkContentComplete() fiber.Handler {
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

// SubmitQuiz validates the quiz attempt route params
func SubmitQuiz() fiber.Handler {
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

// GetCourseProgress validates the :course_id route param
func GetCourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
