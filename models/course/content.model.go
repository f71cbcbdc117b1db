package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Content kinds. VIDEO and READING are passive material, QUIZ is
// auto-scored self-study, ASSIGNMENT is graded by the teacher through
// submissions.
const (
	ContentVideo      = "VIDEO"
	ContentReading    = "READING"
	ContentQuiz       = "QUIZ"
	ContentAssignment = "ASSIGNMENT"
)

// ContentItem represents one learning unit within a module
type ContentItem struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type" gorm:"default:'READING'"` // VIDEO, READING, QUIZ, ASSIGNMENT
	VideoURL    string `json:"video_url"`                             // For VIDEO type
	Body        string `json:"body" gorm:"type:text"`                 // For READING type
	OrderIndex  int    `json:"order_index" gorm:"default:0"`          // Order within module
	IsDeleted   bool   `gorm:"default:false"`
}

// QuizQuestion represents one question of a QUIZ content item
type QuizQuestion struct {
	gorm.Model
	ContentID     uint           `json:"content_id" gorm:"index;not null"`
	Text          string         `json:"text"`
	Options       datatypes.JSON `json:"options"`        // JSON array of option strings
	CorrectAnswer int            `json:"correct_answer"` // index into Options
	OrderIndex    int            `json:"order_index" gorm:"default:0"`
	IsDeleted     bool           `gorm:"default:false"`
}

// QuizAttempt represents a student's attempt at a quiz content item
type QuizAttempt struct {
	gorm.Model
	UserID          uint   `json:"user_id" gorm:"index;not null"`
	ContentID       uint   `json:"content_id" gorm:"index;not null"`
	SelectedAnswers string `json:"selected_answers"` // JSON array of selected option indexes
	Score           int    `json:"score"`            // Questions answered correctly
	MaxScore        int    `json:"max_score"`        // Total questions
	IsCorrect       bool   `json:"is_correct" gorm:"default:false"`
	AttemptNumber   int    `json:"attempt_number" gorm:"default:1"`
	IsDeleted       bool   `gorm:"default:false"`
}

// ContentCompletion tracks a student's completion of one content item.
// The unique index makes repeat completion a no-op instead of a
// duplicate row.
type ContentCompletion struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_user_content;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	ContentID uint `json:"content_id" gorm:"uniqueIndex:idx_user_content;not null"`
	IsDeleted bool `gorm:"default:false"`
}
