package models

import (
	"time"
)

// Enrollment is one student's membership in a course's enrolled-set.
// The composite unique index makes the insert itself the membership check:
// two concurrent enrolls for the same pair serialize at the storage layer
// and the loser surfaces a duplicate-key error. Rows are hard-deleted so
// re-enrollment never collides with the index.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	CourseID  uint      `json:"courseId" gorm:"uniqueIndex:idx_enrollments_user_course;not null"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Course    Course    `json:"-" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time `json:"createdAt"`
}
