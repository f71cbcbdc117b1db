package course

import "gorm.io/gorm"

// Feedback is a student's rating and comment on a course
type Feedback struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Rating    int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment   string `json:"comment" gorm:"type:text;default:''"`
	IsDeleted bool   `gorm:"default:false"`
}
