package models

import (
	"time"
)

// Certificate is issued once per (student, course) on full completion of a
// certificate-bearing course
type Certificate struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"userId" gorm:"uniqueIndex:idx_certificates_user_course;not null"`
	CourseID          uint      `json:"courseId" gorm:"uniqueIndex:idx_certificates_user_course;not null"`
	Course            Course    `json:"course" gorm:"foreignKey:CourseID"`
	CertificateNumber string    `json:"certificateNumber" gorm:"unique;not null"`
	IssuedAt          time.Time `json:"issuedAt"`
}
