package courseController

import (
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/database"
	"lms/middleware"
	"lms/models"
)

// SaveProgress overwrites the completed-lesson set for the requesting
// student in a course. The server record is authoritative; a write whose
// lastUpdated stamp is older than the stored record is acknowledged with
// the stored state instead of clobbering it (last writer wins).
func SaveProgress(c *fiber.Ctx) error {
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

	// Lesson completion may only be toggled while enrolled
	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*ProgressBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Completed indices must fall inside the syllabus
	completed := dedupeIndices(reqData.CompletedLessons)
	for _, idx := range completed {
		if idx < 0 || idx >= len(course.Syllabus) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"completedLessons": "Lesson indices must be within the course syllabus!",
			})
		}
	}

	stamp := time.Now()
	if reqData.LastUpdated != nil {
		stamp = *reqData.LastUpdated
	}

	var progress models.Progress
	err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&progress).Error
	if err == nil {
		// Last-writer-wins: keep the newer of the two copies
		if stamp.Before(progress.LastUpdated) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "A newer progress record already exists.", fiber.Map{
				"progress": progressResponse(progress, len(course.Syllabus)),
			})
		}

		progress.CompletedLessons = datatypes.NewJSONSlice(completed)
		progress.ProgressPercentage = models.CompletionPercent(len(completed), len(course.Syllabus))
		progress.LastUpdated = stamp

		if err := db.Save(&progress).Error; err != nil {
			log.Printf("Error saving progress for user %d in course %d: %v", userID, course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	} else if err == gorm.ErrRecordNotFound {
		progress = models.Progress{
			UserID:             userID,
			CourseID:           course.ID,
			CompletedLessons:   datatypes.NewJSONSlice(completed),
			ProgressPercentage: models.CompletionPercent(len(completed), len(course.Syllabus)),
			LastUpdated:        stamp,
		}
		if err := db.Create(&progress).Error; err != nil {
			log.Printf("Error creating progress for user %d in course %d: %v", userID, course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
	} else {
		log.Printf("Error fetching progress for user %d in course %d: %v", userID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully!", fiber.Map{
		"progress": progressResponse(progress, len(course.Syllabus)),
	})
}

// GetProgress returns the authoritative progress record. Absence is a valid
// default state: an empty set and 0%, never a not-found error.
func GetProgress(c *fiber.Ctx) error {
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

	var progress models.Progress
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&progress).Error; err != nil {
		// Empty default state
		progress = models.Progress{
			UserID:           userID,
			CourseID:         course.ID,
			CompletedLessons: datatypes.NewJSONSlice([]int{}),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"courseId": course.ID,
		"userId":   userID,
		"progress": progressResponse(progress, len(course.Syllabus)),
	})
}

// progressResponse derives the percentage from the stored set; the cached
// column is advisory only
func progressResponse(progress models.Progress, syllabusLen int) fiber.Map {
	completed := []int(progress.CompletedLessons)
	if completed == nil {
		completed = []int{}
	}
	return fiber.Map{
		"completedLessons":   completed,
		"progressPercentage": models.CompletionPercent(len(completed), syllabusLen),
		"lastUpdated":        progress.LastUpdated,
	}
}

func dedupeIndices(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	out := make([]int, 0, len(indices))
	for _, idx := range indices {
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}
