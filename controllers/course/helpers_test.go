package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"campusconnect/config"
	"campusconnect/database"
	"campusconnect/middleware"
	"campusconnect/models"
	courseModels "campusconnect/models/course"
	adminRoutes "campusconnect/routers/adminRoutes"
	courseRoutes "campusconnect/routers/courseRoutes"
	teacherRoutes "campusconnect/routers/teacherRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp builds a fiber app with all routes against a fresh
// in-memory database. t.Name() keeps each test's database isolated.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	return app
}

func createUser(t *testing.T, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     name,
		Email:    email,
		Role:     role,
		Password: string(hashed),
	}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

// createApprovedCourse seeds a course with one module and the given
// content items, owned by teacherID.
func createApprovedCourse(t *testing.T, teacherID uint, contentTypes ...string) (courseModels.Course, []courseModels.ContentItem) {
	t.Helper()

	course := courseModels.Course{
		TeacherID:   teacherID,
		Title:       "Intro to Databases",
		Description: "Relational fundamentals",
		Status:      courseModels.StatusApproved,
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)

	module := courseModels.Module{
		CourseID:   course.ID,
		Title:      "Week 1",
		OrderIndex: 1,
	}
	require.NoError(t, database.Database.Db.Create(&module).Error)

	items := make([]courseModels.ContentItem, 0, len(contentTypes))
	for i, kind := range contentTypes {
		item := courseModels.ContentItem{
			CourseID:    course.ID,
			ModuleID:    module.ID,
			Title:       fmt.Sprintf("Lesson %d", i+1),
			ContentType: kind,
			Body:        "some reading material",
			OrderIndex:  i + 1,
		}
		require.NoError(t, database.Database.Db.Create(&item).Error)
		items = append(items, item)
	}

	return course, items
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp.StatusCode, parsed
}

func doMultipart(t *testing.T, app *fiber.App, method, path, token string, fields map[string]string) (int, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return resp.StatusCode, parsed
}

func loadEnrollment(t *testing.T, userID, courseID uint) courseModels.Enrollment {
	t.Helper()

	var enrollment courseModels.Enrollment
	require.NoError(t, database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error)
	return enrollment
}
