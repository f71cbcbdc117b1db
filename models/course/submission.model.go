package course

import (
	"time"

	"gorm.io/gorm"
)

// Submission represents one student attempt at an ASSIGNMENT content
// item. Grade is nil until the owning teacher grades it; a graded value
// is always in [0, 100]. Every submit creates a new row, so a student
// can resubmit and the teacher sees all attempts.
type Submission struct {
	gorm.Model
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	CourseID     uint       `json:"course_id" gorm:"index;not null"`
	AssignmentID uint       `json:"assignment_id" gorm:"index;not null"` // ContentItem of type ASSIGNMENT
	TeacherID    uint       `json:"teacher_id" gorm:"index;not null"`    // Denormalized from the course
	Comment      string     `json:"comment" gorm:"type:text"`
	FileURL      string     `json:"file_url"`
	Grade        *int       `json:"grade" gorm:"check:grade >= 0 AND grade <= 100"`
	GradedAt     *time.Time `json:"graded_at"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	IsDeleted    bool       `gorm:"default:false"`
}
