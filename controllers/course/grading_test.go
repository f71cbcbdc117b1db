package controllers_test

import (
	"fmt"
	"testing"

	"campusconnect/database"
	"campusconnect/models"
	courseModels "campusconnect/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitAssignment(t *testing.T, app *fiber.App, token string, courseID, assignmentID uint) courseModels.Submission {
	t.Helper()

	code, _ := doMultipart(t, app, "POST", fmt.Sprintf("/course/%d/assignment/%d/submit", courseID, assignmentID), token, map[string]string{
		"comment": "my solution",
	})
	require.Equal(t, fiber.StatusCreated, code)

	var submission courseModels.Submission
	require.NoError(t, database.Database.Db.Where("assignment_id = ?", assignmentID).Order("id desc").First(&submission).Error)
	return submission
}

func TestGradeSubmission(t *testing.T) {
	app := setupTestApp(t)

	teacher, teacherToken := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentAssignment)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	submission := submitAssignment(t, app, studentToken, course.ID, items[0].ID)
	assert.Nil(t, submission.Grade)

	code, resp := doJSON(t, app, "PUT", fmt.Sprintf("/teacher/submission/%d/grade", submission.ID), teacherToken, fiber.Map{
		"grade": 85,
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	var graded courseModels.Submission
	require.NoError(t, database.Database.Db.First(&graded, submission.ID).Error)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 85, *graded.Grade)
	assert.NotNil(t, graded.GradedAt)
}

func TestGradeOutOfRangeIsRejected(t *testing.T) {
	app := setupTestApp(t)

	teacher, teacherToken := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentAssignment)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	submission := submitAssignment(t, app, studentToken, course.ID, items[0].ID)

	for _, bad := range []int{-1, 101, 105} {
		code, resp := doJSON(t, app, "PUT", fmt.Sprintf("/teacher/submission/%d/grade", submission.ID), teacherToken, fiber.Map{
			"grade": bad,
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, code)
		assert.False(t, resp.Status)
	}

	// Missing grade is also rejected
	code, _ := doJSON(t, app, "PUT", fmt.Sprintf("/teacher/submission/%d/grade", submission.ID), teacherToken, fiber.Map{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	// No write happened
	var unchanged courseModels.Submission
	require.NoError(t, database.Database.Db.First(&unchanged, submission.ID).Error)
	assert.Nil(t, unchanged.Grade)
	assert.Nil(t, unchanged.GradedAt)
}

func TestBoundaryGradesAccepted(t *testing.T) {
	app := setupTestApp(t)

	teacher, teacherToken := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentAssignment)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	for _, grade := range []int{0, 100} {
		submission := submitAssignment(t, app, studentToken, course.ID, items[0].ID)

		code, _ := doJSON(t, app, "PUT", fmt.Sprintf("/teacher/submission/%d/grade", submission.ID), teacherToken, fiber.Map{
			"grade": grade,
		})
		assert.Equal(t, fiber.StatusOK, code)

		var graded courseModels.Submission
		require.NoError(t, database.Database.Db.First(&graded, submission.ID).Error)
		require.NotNil(t, graded.Grade)
		assert.Equal(t, grade, *graded.Grade)
	}
}

func TestGradeRequiresOwnership(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, otherToken := createUser(t, "Prof Iyer", "iyer@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentAssignment)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	submission := submitAssignment(t, app, studentToken, course.ID, items[0].ID)

	code, resp := doJSON(t, app, "PUT", fmt.Sprintf("/teacher/submission/%d/grade", submission.ID), otherToken, fiber.Map{
		"grade": 50,
	})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.False(t, resp.Status)
}

func TestResubmissionKeepsEveryAttempt(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentAssignment)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	submitAssignment(t, app, studentToken, course.ID, items[0].ID)
	submitAssignment(t, app, studentToken, course.ID, items[0].ID)

	var count int64
	database.Database.Db.Model(&courseModels.Submission{}).
		Where("user_id = ? AND assignment_id = ?", student.ID, items[0].ID).
		Count(&count)
	assert.EqualValues(t, 2, count)
}
