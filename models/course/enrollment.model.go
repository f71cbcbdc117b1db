package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment tracks a student's relationship to one course. Progress is
// always recomputed from live content counts; Completed must equal
// Progress == 100. TeacherID is denormalized from the course for query
// efficiency. The unique index rules out duplicate enrollment rows for
// the same (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	TeacherID   uint       `json:"teacher_id" gorm:"index;not null"`
	Progress    int        `json:"progress" gorm:"default:0"` // Completion percentage (0-100)
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}

// IsEligibleForCertificate reports whether the enrollment qualifies for a
// course certificate. Completion of all content items is sufficient and
// necessary; no grade threshold applies.
func (e *Enrollment) IsEligibleForCertificate() bool {
	return e.Completed
}
