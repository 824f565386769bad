package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseControllers "lms/controllers/course"
	"lms/middleware"
	courseValidators "lms/validators/course"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Static paths before the :id routes so fiber does not swallow them.
	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/categories/list", courseControllers.GetCategories)
	courseGroup.Get("/stats/overview", courseControllers.GetStatsOverview)

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole("instructor"), courseValidators.CreateCourse(), courseControllers.CreateCourse)

	courseGroup.Get("/:id", courseValidators.CourseID(), courseControllers.GetCourseByID)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("instructor"), courseValidators.CourseID(), courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("instructor"), courseValidators.CourseID(), courseControllers.DeleteCourse)

	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.EnrollInCourse)
	courseGroup.Post("/:id/unenroll", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.UnenrollFromCourse)
	courseGroup.Get("/:id/enrollment-status", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.GetEnrollmentStatus)

	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, courseValidators.CourseID(), courseValidators.SaveProgress(), courseControllers.SaveProgress)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.GetProgress)

	courseGroup.Post("/:id/certificate", middleware.JWTMiddleware, courseValidators.CourseID(), courseControllers.IssueCertificate)
}
