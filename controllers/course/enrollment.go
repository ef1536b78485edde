package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseModels "elearn/models/course"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
	}

	// Retrieve validated course ID
	courseID := c.Locals("courseID").(int)

	// Check if course exists
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
	}

	enrollment := courseModels.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
	}

	// The enrollment insert and the per-chapter progress fan-out must land
	// together. The unique index on (user_id, course_id) decides duplicate
	// races, not a pre-check.
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		var chapters []courseModels.Chapter
		if err := tx.Where("course_id = ?", courseID).Find(&chapters).Error; err != nil {
			return err
		}

		// Snapshot of chapters at enroll time; chapters added later are
		// covered by the lazy get-or-create on first access.
		for _, chapter := range chapters {
			progress := courseModels.Progress{
				UserID:    userID,
				ChapterID: chapter.ID,
				Completed: false,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "You are already enrolled in this course.")
		}
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "An unexpected error occurred.")
	}

	go utils.NotifyEnrollment(user.Email, course.Title, enrollment.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       fmt.Sprintf("You have successfully enrolled in %q.", course.Title),
		"enrollment_id": enrollment.ID,
	})
}

// GetEnrollments lists the caller's enrollments with their course summaries.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found!")
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Course").Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	type EnrollmentView struct {
		ID          uint      `json:"id"`
		CourseID    uint      `json:"course_id"`
		CourseTitle string    `json:"course_title"`
		EnrolledAt  time.Time `json:"enrolled_at"`
	}

	enrollmentData := make([]EnrollmentView, len(enrollments))
	for i, enrollment := range enrollments {
		enrollmentData[i] = EnrollmentView{
			ID:          enrollment.ID,
			CourseID:    enrollment.CourseID,
			CourseTitle: enrollment.Course.Title,
			EnrolledAt:  enrollment.EnrolledAt,
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"enrollments": enrollmentData,
	})
}
