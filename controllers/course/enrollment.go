package courseController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
)

// EnrollInCourse adds the requesting student to a course's enrolled-set.
// The enrollment row's composite unique key makes the insert atomic: under
// a race, exactly one of two concurrent enrolls lands and the other gets
// the duplicate-key error. No read-then-write window exists.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.Status != models.StatusPublished {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course is not available for enrollment!", nil)
	}

	// Friendly fast path; the unique constraint below is the real guard
	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course!", nil)
		}
		log.Printf("Error enrolling user %d in course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Best-effort notifications
	if email, ok := c.Locals("userEmail").(string); ok {
		name, _ := c.Locals("userName").(string)
		utils.SendEnrollmentEmail(email, name, course.Title)
	}
	utils.NotifyEvent(utils.EventEnrolled, userID, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled in course!", fiber.Map{
		"course": withStats(db, course),
	})
}

// UnenrollFromCourse removes the student from the enrolled-set and discards
// their progress record for the course; re-enrolling starts from zero
func UnenrollFromCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not enrolled in this course!", nil)
	}

	// Remove membership and progress together
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Enrollment{}, enrollment.ID).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND course_id = ?", userID, course.ID).Delete(&models.Progress{}).Error
	})
	if err != nil {
		log.Printf("Error unenrolling user %d from course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unenroll from course!", nil)
	}

	utils.NotifyEvent(utils.EventUnenrolled, userID, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully unenrolled from course!", fiber.Map{
		"course": withStats(db, course),
	})
}

// GetEnrollmentStatus reports membership and the enrolled count for a course
func GetEnrollmentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment models.Enrollment
	isEnrolled := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"isEnrolled":    isEnrolled,
		"courseId":      course.ID,
		"enrolledCount": enrolledCount(db, course.ID),
	})
}
