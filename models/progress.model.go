package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

// Progress is the authoritative per-(student, course) record of completed
// lesson indices. ProgressPercentage is an advisory cache; the derived
// value from CompletedLessons and the course syllabus always wins.
type Progress struct {
	ID                 uint                     `json:"id" gorm:"primaryKey"`
	UserID             uint                     `json:"userId" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CourseID           uint                     `json:"courseId" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CompletedLessons   datatypes.JSONSlice[int] `json:"completedLessons"` // 0-based syllabus indices
	ProgressPercentage int                      `json:"progressPercentage"`
	LastUpdated        time.Time                `json:"lastUpdated"`
	CreatedAt          time.Time                `json:"-"`
	UpdatedAt          time.Time                `json:"-"`
}

// CompletionPercent derives the completion percentage of completed lessons
// over totalLessons. An empty syllabus always reports 0, never an error.
func CompletionPercent(completed, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(totalLessons) * 100))
}
