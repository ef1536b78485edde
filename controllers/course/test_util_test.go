package controllers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	authRoutes "elearn/routers/authRoutes"
	courseRoutes "elearn/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestApp wires the real routes against a fresh in-memory database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // shared-cache in-memory db lives on one connection

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)

	return app, db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Username: email, Email: email, Password: string(hashed)}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	return user, token
}

// seedCourse creates a course with the given number of chapters, ordered 1..n.
func seedCourse(t *testing.T, db *gorm.DB, title string, chapterCount int) courseModels.Course {
	t.Helper()

	course := courseModels.Course{Title: title, Description: "desc of " + title, Category: "general"}
	require.NoError(t, db.Create(&course).Error)

	for i := 1; i <= chapterCount; i++ {
		chapter := courseModels.Chapter{
			CourseID: course.ID,
			Title:    fmt.Sprintf("%s chapter %d", title, i),
			Order:    uint(i),
		}
		require.NoError(t, db.Create(&chapter).Error)
	}
	return course
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body io.Reader) (*http.Response, map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	payload := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload), "body: %s", raw)
	}
	return resp, payload
}

func courseURL(courseID uint) string {
	return fmt.Sprintf("/courses/%d/", courseID)
}

func parseTime(t *testing.T, value interface{}) time.Time {
	t.Helper()

	s, ok := value.(string)
	require.True(t, ok, "expected timestamp string, got %v", value)
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}
