package controllers_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"campusconnect/database"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func seedQuizQuestions(t *testing.T, contentID uint, correct ...int) {
	t.Helper()

	for i, answer := range correct {
		options, err := json.Marshal([]string{"option a", "option b", "option c"})
		require.NoError(t, err)

		question := courseModels.QuizQuestion{
			ContentID:     contentID,
			Text:          fmt.Sprintf("Question %d", i+1),
			Options:       datatypes.JSON(options),
			CorrectAnswer: answer,
			OrderIndex:    i + 1,
		}
		require.NoError(t, database.Database.Db.Create(&question).Error)
	}
}

func TestSubmitQuizFullyCorrectCompletesContent(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentQuiz)
	seedQuizQuestions(t, items[0].ID, 1, 2)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/quiz/submit", course.ID, items[0].ID), studentToken, fiber.Map{
		"answers": []int{1, 2},
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	// A perfect score marks the content complete
	var count int64
	database.Database.Db.Model(&courseModels.ContentCompletion{}).
		Where("user_id = ? AND content_id = ?", student.ID, items[0].ID).
		Count(&count)
	assert.EqualValues(t, 1, count)

	enrollment := loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 100, enrollment.Progress)
	assert.True(t, enrollment.Completed)
}

func TestSubmitQuizPartialScoreDoesNotComplete(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentQuiz)
	seedQuizQuestions(t, items[0].ID, 1, 2)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/quiz/submit", course.ID, items[0].ID), studentToken, fiber.Map{
		"answers": []int{1, 0},
	})
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	database.Database.Db.Model(&courseModels.ContentCompletion{}).
		Where("user_id = ? AND content_id = ?", student.ID, items[0].ID).
		Count(&count)
	assert.EqualValues(t, 0, count)

	enrollment := loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 0, enrollment.Progress)

	// The attempt itself is recorded with its score
	var attempt courseModels.QuizAttempt
	require.NoError(t, database.Database.Db.Where("user_id = ? AND content_id = ?", student.ID, items[0].ID).First(&attempt).Error)
	assert.Equal(t, 1, attempt.Score)
	assert.Equal(t, 2, attempt.MaxScore)
	assert.False(t, attempt.IsCorrect)
}

func TestSubmitQuizRequiresEveryAnswer(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentQuiz)
	seedQuizQuestions(t, items[0].ID, 1, 2)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/quiz/submit", course.ID, items[0].ID), studentToken, fiber.Map{
		"answers": []int{1},
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, resp.Status)
}
