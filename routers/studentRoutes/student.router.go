package studentRoutes

import (
	"github.com/gofiber/fiber/v2"

	studentControllers "lms/controllers/student"
	"lms/middleware"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/student", middleware.JWTMiddleware, middleware.RequireRole("student"))

	studentGroup.Get("/courses/available", studentControllers.GetAvailableCourses)
	studentGroup.Get("/courses/registered", studentControllers.GetRegisteredCourses)
	studentGroup.Get("/profile", studentControllers.GetProfile)
	studentGroup.Put("/profile", studentControllers.UpdateProfile)
	studentGroup.Get("/certificates", studentControllers.GetCertificates)
}
