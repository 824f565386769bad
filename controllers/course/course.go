package courseController

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lms/database"
	"lms/middleware"
	"lms/models"
)

// CourseWithStats decorates a course with derived enrollment figures
type CourseWithStats struct {
	models.Course
	EnrolledCount int64 `json:"enrolledCount"`
	IsPopular     bool  `json:"isPopular"`
}

func enrolledCount(db *gorm.DB, courseID uint) int64 {
	var count int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count)
	return count
}

func withStats(db *gorm.DB, course models.Course) CourseWithStats {
	count := enrolledCount(db, course.ID)
	course.Instructor.Password = ""
	return CourseWithStats{
		Course:        course,
		EnrolledCount: count,
		IsPopular:     count > 10,
	}
}

// GetAllCourses lists published courses with optional filters
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = ?", models.StatusPublished, false).
		Preload("Instructor")

	// Optional filters
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}
	if instructor := c.Query("instructor"); instructor != "" {
		query = query.Where("instructor_id = ?", instructor)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
	}

	var courses []models.Course
	if err := query.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]CourseWithStats, len(courses))
	for i, course := range courses {
		result[i] = withStats(db, course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// GetCourseByID fetches a single course with full details
func GetCourseByID(c *fiber.Ctx) error {
	db := database.Database.Db

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).Preload("Instructor").First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course": withStats(db, course),
	})
}

// CreateCourse creates a new course owned by the requesting instructor
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CourseBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		InstructorID:     userID,
		Category:         reqData.Category,
		Level:            models.LevelBeginner,
		Duration:         "8 weeks",
		Price:            "$99",
		Rating:           4.5,
		Syllabus:         datatypes.NewJSONSlice(reqData.Syllabus),
		Prerequisites:    datatypes.NewJSONSlice(reqData.Prerequisites),
		LearningOutcomes: datatypes.NewJSONSlice(reqData.LearningOutcomes),
		TotalLessons:     len(reqData.Syllabus),
		EstimatedHours:   40,
		Language:         "English",
		Certificate:      true,
		Thumbnail:        reqData.Thumbnail,
		VideoIntro:       reqData.VideoIntro,
		Status:           models.StatusPublished,
	}

	// Apply optional overrides
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Duration != "" {
		course.Duration = reqData.Duration
	}
	if reqData.Price != "" {
		course.Price = reqData.Price
	}
	if reqData.EstimatedHours != nil {
		course.EstimatedHours = *reqData.EstimatedHours
	}
	if reqData.Language != "" {
		course.Language = reqData.Language
	}
	if reqData.Certificate != nil {
		course.Certificate = *reqData.Certificate
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}
	if reqData.TotalLessons != nil {
		course.TotalLessons = *reqData.TotalLessons
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	database.Database.Db.Preload("Instructor").First(&course, course.ID)
	course.Instructor.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", fiber.Map{
		"course": course,
	})
}

// UpdateCourse updates a course; only the owning instructor may do so
func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to update this course!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*CourseUpdateBody)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Apply provided fields only
	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Category != nil {
		course.Category = *reqData.Category
	}
	if reqData.Level != nil {
		course.Level = *reqData.Level
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Syllabus != nil {
		course.Syllabus = datatypes.NewJSONSlice(*reqData.Syllabus)
		course.TotalLessons = len(*reqData.Syllabus)
	}
	if reqData.Prerequisites != nil {
		course.Prerequisites = datatypes.NewJSONSlice(*reqData.Prerequisites)
	}
	if reqData.LearningOutcomes != nil {
		course.LearningOutcomes = datatypes.NewJSONSlice(*reqData.LearningOutcomes)
	}
	if reqData.EstimatedHours != nil {
		course.EstimatedHours = *reqData.EstimatedHours
	}
	if reqData.Language != nil {
		course.Language = *reqData.Language
	}
	if reqData.Certificate != nil {
		course.Certificate = *reqData.Certificate
	}
	if reqData.Status != nil {
		course.Status = *reqData.Status
	}
	if reqData.Thumbnail != nil {
		course.Thumbnail = *reqData.Thumbnail
	}
	if reqData.VideoIntro != nil {
		course.VideoIntro = *reqData.VideoIntro
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", fiber.Map{
		"course": course,
	})
}

// DeleteCourse deletes a course and cascades its enrollments and progress;
// only the owning instructor may do so
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.InstructorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to delete this course!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		return tx.Model(&course).Update("is_deleted", true).Error
	})
	if err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetCategories lists the distinct categories of published courses
func GetCategories(c *fiber.Ctx) error {
	var categories []string
	if err := database.Database.Db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = ?", models.StatusPublished, false).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

type groupCount struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// GetStatsOverview reports catalog-wide enrollment statistics
func GetStatsOverview(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	db.Model(&models.Course{}).Where("status = ? AND is_deleted = ?", models.StatusPublished, false).Count(&totalCourses)

	var totalEnrollments int64
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)

	var enrollmentsToday int64
	db.Model(&models.Enrollment{}).Where("created_at >= ?", now.BeginningOfDay()).Count(&enrollmentsToday)

	var categoriesStats []groupCount
	db.Model(&models.Course{}).
		Select("category as key, count(*) as count").
		Where("status = ? AND is_deleted = ?", models.StatusPublished, false).
		Group("category").
		Order("count desc").
		Scan(&categoriesStats)

	var levelStats []groupCount
	db.Model(&models.Course{}).
		Select("level as key, count(*) as count").
		Where("status = ? AND is_deleted = ?", models.StatusPublished, false).
		Group("level").
		Scan(&levelStats)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course statistics fetched successfully!", fiber.Map{
		"totalCourses":     totalCourses,
		"totalStudents":    totalEnrollments,
		"enrollmentsToday": enrollmentsToday,
		"categoriesStats":  categoriesStats,
		"levelStats":       levelStats,
	})
}
