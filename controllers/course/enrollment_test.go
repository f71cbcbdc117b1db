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

func TestEnrollInCourse(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)
	course, _ := createApprovedCourse(t, teacher.ID, courseModels.ContentReading, courseModels.ContentReading)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, resp.Status)

	// Enrolling twice is a conflict
	code, resp = doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.False(t, resp.Status)

	// Still exactly one enrollment row
	var count int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestEnrollRejectsUnapprovedCourse(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	_, studentToken := createUser(t, "Asha Rao", "asha@campus.test", models.RoleStudent)

	pending := courseModels.Course{
		TeacherID:   teacher.ID,
		Title:       "Draft Course",
		Description: "Not reviewed yet",
		Status:      courseModels.StatusPending,
	}
	require.NoError(t, database.Database.Db.Create(&pending).Error)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", pending.ID), studentToken, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.False(t, resp.Status)
}

func TestEnrollRequiresStudentRole(t *testing.T) {
	app := setupTestApp(t)

	teacher, teacherToken := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	course, _ := createApprovedCourse(t, teacher.ID, courseModels.ContentReading)

	code, resp := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), teacherToken, nil)
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.False(t, resp.Status)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	teacher, _ := createUser(t, "Prof Khan", "khan@campus.test", models.RoleTeacher)
	course, _ := createApprovedCourse(t, teacher.ID, courseModels.ContentReading)

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
