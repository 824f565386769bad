package courseController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
)

// IssueCertificate issues a completion certificate for a fully completed,
// certificate-bearing course
func IssueCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !course.Certificate {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course does not offer a certificate!", nil)
	}

	// Check enrollment
	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	// Completion is derived from the stored set, not the cached percentage
	var progress models.Progress
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}
	if len(course.Syllabus) == 0 || models.CompletionPercent(len(progress.CompletedLessons), len(course.Syllabus)) < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	// Check if certificate already exists
	var existing models.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate already issued!", fiber.Map{
			"certificate": existing,
		})
	}

	certificate := models.Certificate{
		UserID:            userID,
		CourseID:          course.ID,
		CertificateNumber: uuid.NewString(),
		IssuedAt:          time.Now(),
	}

	if err := db.Create(&certificate).Error; err != nil {
		log.Printf("Error issuing certificate for user %d in course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	// Best-effort notifications
	if email, ok := c.Locals("userEmail").(string); ok {
		name, _ := c.Locals("userName").(string)
		utils.SendCertificateEmail(email, name, course.Title, certificate.CertificateNumber)
	}
	utils.NotifyEvent(utils.EventCertificateIssued, userID, course.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", fiber.Map{
		"certificate": certificate,
	})
}
