package courseValidator

import (
	"campusconnect/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitAssignment validates :id (course) and :assignment_id route
// params. The multipart body (comment + optional file) is handled by
// the controller.
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		assignmentID, ok := parsePositiveParam(c, "assignment_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Assignment ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("assignmentID", assignmentID)
		return c.Next()
	}
}
