package courseController

import (
	"time"
)

// CourseBody is the validated payload for course creation
type CourseBody struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Level            string   `json:"level"`
	Duration         string   `json:"duration"`
	Price            string   `json:"price"`
	Syllabus         []string `json:"syllabus"`
	Prerequisites    []string `json:"prerequisites"`
	LearningOutcomes []string `json:"learningOutcomes"`
	TotalLessons     *int     `json:"totalLessons"`
	EstimatedHours   *int     `json:"estimatedHours"`
	Language         string   `json:"language"`
	Certificate      *bool    `json:"certificate"`
	Thumbnail        string   `json:"thumbnail"`
	VideoIntro       string   `json:"videoIntro"`
	Status           string   `json:"status"`
}

// CourseUpdateBody is the validated payload for course updates; nil fields
// are left untouched
type CourseUpdateBody struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Category         *string   `json:"category"`
	Level            *string   `json:"level"`
	Duration         *string   `json:"duration"`
	Price            *string   `json:"price"`
	Syllabus         *[]string `json:"syllabus"`
	Prerequisites    *[]string `json:"prerequisites"`
	LearningOutcomes *[]string `json:"learningOutcomes"`
	EstimatedHours   *int      `json:"estimatedHours"`
	Language         *string   `json:"language"`
	Certificate      *bool     `json:"certificate"`
	Thumbnail        *string   `json:"thumbnail"`
	VideoIntro       *string   `json:"videoIntro"`
	Status           *string   `json:"status"`
}

// ProgressBody is the validated payload for progress writes. LastUpdated
// carries the client cache's timestamp for last-writer-wins reconciliation.
type ProgressBody struct {
	CompletedLessons   []int      `json:"completedLessons"`
	ProgressPercentage *int       `json:"progressPercentage"`
	LastUpdated        *time.Time `json:"lastUpdated"`
}
