package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminControllers "lms/controllers/admin"
	"lms/middleware"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("admin"))

	adminGroup.Get("/users", adminControllers.GetUsers)
	adminGroup.Post("/instructors", adminControllers.CreateInstructor)
	adminGroup.Put("/instructors/:id", adminControllers.UpdateInstructor)
	adminGroup.Delete("/users/:id", adminControllers.DeleteUser)
	adminGroup.Get("/courses/:id/enrollments", adminControllers.GetCourseEnrollments)
}
