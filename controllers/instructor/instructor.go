package instructorController

import (
	"github.com/gofiber/fiber/v2"

	"lms/database"
	"lms/middleware"
	"lms/models"
)

// GetMyCourses lists the courses owned by the requesting instructor
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("instructor_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructor courses!", nil)
	}

	type courseWithCount struct {
		models.Course
		EnrolledCount int64 `json:"enrolledCount"`
	}

	result := make([]courseWithCount, len(courses))
	for i, course := range courses {
		var count int64
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
		result[i] = courseWithCount{Course: course, EnrolledCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}
