package course

import "gorm.io/gorm"

// Course statuses. A course enters the student catalog only once an
// admin moves it to APPROVED.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Course represents a learning course owned by one teacher
type Course struct {
	gorm.Model
	TeacherID   uint   `json:"teacher_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	ImageURL    string `json:"image_url"`
	IsDeleted   bool   `gorm:"default:false"`
}
