package courseValidator

import (
	"campusconnect/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback validates the :id route param and the rating/comment body
func SubmitFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(struct {
			Rating  int    `json:"rating"`
			Comment string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Rating
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		// Validate Comment
		if strings.TrimSpace(reqData.Comment) == "" {
			errors["comment"] = "Comment is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}
