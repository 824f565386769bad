package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	controllers "lms/controllers/course"
	"lms/middleware"
)

func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.ProgressBody)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate completed lessons
		if reqData.CompletedLessons == nil {
			errors["completedLessons"] = "Completed lessons are required!"
		} else {
			for _, idx := range reqData.CompletedLessons {
				if idx < 0 {
					errors["completedLessons"] = "Lesson indices must not be negative!"
					break
				}
			}
		}

		// Validate percentage hint if provided; it is advisory, the server
		// recomputes the real value
		if reqData.ProgressPercentage != nil && (*reqData.ProgressPercentage < 0 || *reqData.ProgressPercentage > 100) {
			errors["progressPercentage"] = "Progress percentage must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
