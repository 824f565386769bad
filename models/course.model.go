package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course lifecycle status
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Course represents a learning course owned by one instructor
type Course struct {
	gorm.Model
	Title            string                      `json:"title" gorm:"not null"`
	Description      string                      `json:"description" gorm:"not null"`
	InstructorID     uint                        `json:"instructorId" gorm:"index;not null"`
	Instructor       User                        `json:"instructor" gorm:"foreignKey:InstructorID"`
	Category         string                      `json:"category" gorm:"index;not null"`
	Level            string                      `json:"level" gorm:"index;default:'Beginner'"` // Beginner, Intermediate, Advanced
	Duration         string                      `json:"duration" gorm:"default:'8 weeks'"`
	Price            string                      `json:"price" gorm:"default:'$99'"`
	Rating           float64                     `json:"rating" gorm:"default:4.5"`
	Syllabus         datatypes.JSONSlice[string] `json:"syllabus"` // ordered lesson titles
	Prerequisites    datatypes.JSONSlice[string] `json:"prerequisites"`
	LearningOutcomes datatypes.JSONSlice[string] `json:"learningOutcomes"`
	TotalLessons     int                         `json:"totalLessons" gorm:"default:0"`
	EstimatedHours   int                         `json:"estimatedHours" gorm:"default:40"`
	Language         string                      `json:"language" gorm:"default:'English'"`
	Certificate      bool                        `json:"certificate" gorm:"default:true"`
	Thumbnail        string                      `json:"thumbnail"`
	VideoIntro       string                      `json:"videoIntro"`
	Status           string                      `json:"status" gorm:"index;default:'published'"` // draft, published, archived
	IsDeleted        bool                        `json:"-" gorm:"default:false"`
}

// IsValidLevel reports whether level is one of the known course levels
func IsValidLevel(level string) bool {
	return level == LevelBeginner || level == LevelIntermediate || level == LevelAdvanced
}

// IsValidStatus reports whether status is one of the known lifecycle states
func IsValidStatus(status string) bool {
	return status == StatusDraft || status == StatusPublished || status == StatusArchived
}
