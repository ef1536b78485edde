package controllers

import (
	"errors"
	"log"
	"time"

	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ChapterProgressView is the payload of the chapter-by-order endpoint
type ChapterProgressView struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CourseTitle string     `json:"course_title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// findChapterByOrder is the single place where the legacy order-in-URL
// addressing is translated to a chapter row. Everything else keys chapters by
// their id.
func findChapterByOrder(db *gorm.DB, courseID, chapterOrder int) (*courseModels.Chapter, error) {
	var chapter courseModels.Chapter
	if err := db.Where("course_id = ? AND \"order\" = ?", courseID, chapterOrder).First(&chapter).Error; err != nil {
		return nil, err
	}
	return &chapter, nil
}

// getOrCreateProgress returns the (user, chapter) progress row, creating the
// NOT_STARTED row on first access. A concurrent create losing to the unique
// index falls back to reading the winner's row.
func getOrCreateProgress(db *gorm.DB, userID, chapterID uint) (*courseModels.Progress, error) {
	var progress courseModels.Progress
	err := db.Where("user_id = ? AND chapter_id = ?", userID, chapterID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = courseModels.Progress{UserID: userID, ChapterID: chapterID, Completed: false}
	if err := db.Create(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = db.Where("user_id = ? AND chapter_id = ?", userID, chapterID).First(&progress).Error
		}
		if err != nil {
			return nil, err
		}
	}
	return &progress, nil
}

func isEnrolled(db *gorm.DB, userID uint, courseID uint) bool {
	var enrollment courseModels.Enrollment
	return db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error == nil
}

// GetChapterByOrder serves GET/POST /courses/:course_id/chapters/:chapter_order/.
// A POST carrying a completion flag toggles the progress row before it is
// returned.
func GetChapterByOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
	}

	courseID := c.Locals("courseID").(int)
	chapterOrder := c.Locals("chapterOrder").(int)

	// Enrollment gates access regardless of chapter existence
	if !isEnrolled(database.Database.Db, userID, uint(courseID)) {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You are not enrolled in this course.")
	}

	chapter, err := findChapterByOrder(database.Database.Db, courseID, chapterOrder)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Chapter not found.")
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", chapter.CourseID).First(&course).Error; err != nil {
		log.Printf("Error fetching course %d: %v", chapter.CourseID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch chapter!")
	}

	progress, err := getOrCreateProgress(database.Database.Db, userID, chapter.ID)
	if err != nil {
		log.Printf("Error loading progress for user %d chapter %d: %v", userID, chapter.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load progress!")
	}

	if completed, ok := c.Locals("completedFlag").(bool); ok && c.Method() == fiber.MethodPost {
		progress.Completed = completed
		if completed {
			now := time.Now()
			progress.CompletedAt = &now
		} else {
			progress.CompletedAt = nil
		}
		if err := database.Database.Db.Save(progress).Error; err != nil {
			log.Printf("Error saving progress %d: %v", progress.ID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save progress!")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"chapter": ChapterProgressView{
			ID:          chapter.ID,
			Title:       chapter.Title,
			Description: chapter.Description,
			CourseTitle: course.Title,
			Completed:   progress.Completed,
			CompletedAt: progress.CompletedAt,
		},
	})
}

// GetChapterProgress serves GET /courses/:course_id/chapters/:chapter_id/progress/.
// The chapter is keyed by id here; a missing progress row renders as the
// not-started state instead of erroring.
func GetChapterProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
	}

	chapterID := c.Locals("chapterID").(int)

	var chapter courseModels.Chapter
	if err := database.Database.Db.Where("id = ?", chapterID).First(&chapter).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Chapter not found.")
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", chapter.CourseID).First(&course).Error; err != nil {
		log.Printf("Error fetching course %d: %v", chapter.CourseID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress!")
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, chapter.CourseID).First(&enrollment).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You are not enrolled in this course.")
	}

	// Read-only path: no row means the chapter was added after enrollment and
	// never opened, which is simply the not-started state.
	completed := false
	var completedAt *time.Time
	var progress courseModels.Progress
	if err := database.Database.Db.Where("user_id = ? AND chapter_id = ?", userID, chapterID).First(&progress).Error; err == nil {
		completed = progress.Completed
		completedAt = progress.CompletedAt
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"progress": fiber.Map{
			"enrollment_id":   enrollment.ID,
			"chapter_id":      chapter.ID,
			"chapter_title":   chapter.Title,
			"completed":       completed,
			"completed_at":    completedAt,
			"course_category": course.Category,
		},
	})
}
