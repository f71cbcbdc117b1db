package controllers_test

import (
	"fmt"
	"testing"

	"campusconnect/database"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	"campusconnect/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestMarkContentCompleteUpdatesProgress(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentReading, courseModels.ContentVideo)

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, items[0].ID), studentToken, nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	enrollment := loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 50, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)

	code, _ = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, items[1].ID), studentToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	enrollment = loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 100, enrollment.Progress)
	assert.True(t, enrollment.Completed)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestMarkContentCompleteIsIdempotent(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentReading, courseModels.ContentVideo)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	for i := 0; i < 3; i++ {
		code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, items[0].ID), studentToken, nil)
		assert.Equal(t, fiber.StatusOK, code)
		assert.True(t, resp.Status)
	}

	// One completion row, progress unchanged by the repeats
	var count int64
	database.Database.Db.Model(&courseModels.ContentCompletion{}).
		Where("user_id = ? AND content_id = ?", student.ID, items[0].ID).
		Count(&count)
	assert.EqualValues(t, 1, count)

	enrollment := loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 50, enrollment.Progress)
}

func TestMarkContentCompleteRequiresEnrollment(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentReading)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, items[0].ID), studentToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.False(t, resp.Status)
}

func TestCertificateIssuedOnlyAfterCompletion(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentReading)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)

	// Not completed yet
	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/certificate", course.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.False(t, resp.Status)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, items[0].ID), studentToken, nil)

	code, resp = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/certificate", course.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, resp.Status)

	// Asking again returns the existing certificate instead of minting
	// a second one
	code, _ = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/certificate", course.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var count int64
	database.Database.Db.Model(&courseModels.Certificate{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestStaleCompletionsIgnoredAfterContentRemoval(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	student, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, items := createApprovedCourse(t, teacher.ID, courseModels.ContentReading, courseModels.ContentVideo)

	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	doJSON(t, app, "POST", fmt.Sprintf("/course/%d/content/%d/complete", course.ID, items[1].ID), studentToken, nil)

	enrollment := loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 50, enrollment.Progress)

	// The only completed item disappears; its completion row must not
	// count against the remaining content
	database.Database.Db.Model(&courseModels.ContentItem{}).
		Where("id = ?", items[1].ID).
		Update("is_deleted", true)

	changed, err := utils.RecomputeProgress(database.Database.Db, student.ID, course.ID)
	assert.NoError(t, err)
	assert.True(t, changed)

	enrollment = loadEnrollment(t, student.ID, course.ID)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.Nil(t, enrollment.CompletedAt)
}
