package utils

import (
	"campusconnect/database"
	courseModels "campusconnect/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeProgressScheduler sets up the nightly progress reconciliation job
func InitializeProgressScheduler() {
	log.Println("[PROGRESS-SCHEDULER] Initializing progress scheduler...")

	c := cron.New()

	// Run daily at 3 AM to heal enrollments whose course content changed
	c.AddFunc("0 3 * * *", func() {
		log.Println("[PROGRESS-SCHEDULER] Running daily progress reconciliation...")
		ReconcileAllEnrollments()
	})

	c.Start()
	log.Println("[PROGRESS-SCHEDULER] Progress scheduler started - runs daily at 3 AM")
}

// ReconcileAllEnrollments recomputes progress for every active
// enrollment. Content created or deleted while a student was idle moves
// their stored percentage; this brings it back in line with the live
// content tree.
func ReconcileAllEnrollments() {
	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("is_deleted = ?", false).Find(&enrollments).Error; err != nil {
		log.Printf("[PROGRESS-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}

	updated := 0
	for _, e := range enrollments {
		changed, err := RecomputeProgress(db, e.UserID, e.CourseID)
		if err != nil {
			log.Printf("[PROGRESS-SCHEDULER] Error reconciling enrollment %d: %v", e.ID, err)
			continue
		}
		if changed {
			updated++
		}
	}

	log.Printf("[PROGRESS-SCHEDULER] Reconciliation done: %d of %d enrollments updated", updated, len(enrollments))
}

// RecomputeProgress recalculates one enrollment's progress from live
// content counts and persists it. Completions referencing deleted
// content do not count. Returns whether the stored row changed.
func RecomputeProgress(db *gorm.DB, userID uint, courseID uint) (bool, error) {
	var totalContent int64
	db.Model(&courseModels.ContentItem{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&totalContent)

	// Count only completions whose content item still exists
	var completedIDs []uint
	db.Model(&courseModels.ContentCompletion{}).
		Joins("JOIN content_items ON content_items.id = content_completions.content_id AND content_items.is_deleted = ?", false).
		Where("content_completions.user_id = ? AND content_completions.course_id = ? AND content_completions.is_deleted = ?", userID, courseID, false).
		Pluck("content_completions.content_id", &completedIDs)

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return false, err
	}

	percent, completed := courseModels.ComputeProgress(int(totalContent), completedIDs)
	if percent == enrollment.Progress && completed == enrollment.Completed {
		return false, nil
	}

	enrollment.Progress = percent
	if completed && !enrollment.Completed {
		now := time.Now()
		enrollment.CompletedAt = &now
	}
	if !completed {
		enrollment.CompletedAt = nil
	}
	enrollment.Completed = completed

	if err := db.Save(&enrollment).Error; err != nil {
		return false, err
	}
	return true, nil
}
