package instructorRoutes

import (
	"github.com/gofiber/fiber/v2"

	instructorControllers "lms/controllers/instructor"
	"lms/middleware"
)

func SetupInstructorRoutes(app *fiber.App) {
	instructorGroup := app.Group("/instructor", middleware.JWTMiddleware, middleware.RequireRole("instructor"))

	instructorGroup.Get("/courses", instructorControllers.GetMyCourses)
}
