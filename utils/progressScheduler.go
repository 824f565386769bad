package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"lms/database"
	"lms/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeProgressScheduler sets up the nightly progress maintenance job
func InitializeProgressScheduler() {
	logScheduler("Initializing progress scheduler...")

	c := cron.New()

	// Run daily at 3 AM
	c.AddFunc("0 3 * * *", func() {
		logScheduler("Running nightly progress reconciliation...")
		ReconcileProgress()
	})

	c.Start()
	logScheduler("Progress scheduler started - runs daily at 3 AM")
}

// ReconcileProgress re-derives every cached progress percentage from the
// stored completed-lesson set and the course syllabus, and prunes progress
// rows orphaned by a deleted course or a discarded enrollment. The cached
// percentage stays advisory; the derived value is the truth.
func ReconcileProgress() {
	db := database.Database.Db

	var records []models.Progress
	if err := db.Find(&records).Error; err != nil {
		logScheduler("Error fetching progress records: " + err.Error())
		return
	}

	reconciled := 0
	pruned := 0

	for _, record := range records {
		// Orphan check: the enrollment must still exist
		var count int64
		db.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", record.UserID, record.CourseID).
			Count(&count)
		if count == 0 {
			if err := db.Delete(&models.Progress{}, record.ID).Error; err != nil {
				logScheduler("Error pruning orphaned progress record: " + err.Error())
				continue
			}
			pruned++
			continue
		}

		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", record.CourseID, false).First(&course).Error; err != nil {
			// Course gone; the enrollment cleanup above should have caught
			// this, treat the record as orphaned next run
			continue
		}

		derived := models.CompletionPercent(len(record.CompletedLessons), len(course.Syllabus))
		if record.ProgressPercentage != derived {
			if err := db.Model(&models.Progress{}).Where("id = ?", record.ID).
				Update("progress_percentage", derived).Error; err != nil {
				logScheduler("Error updating progress percentage: " + err.Error())
				continue
			}
			reconciled++
		}
	}

	logScheduler(fmt.Sprintf("Reconciliation finished: %d records scanned, %d percentages corrected, %d orphans pruned",
		len(records), reconciled, pruned))
}
