package controllers

import (
	"elearn/database"
	"elearn/middleware"
	courseModels "elearn/models/course"

	"github.com/gofiber/fiber/v2"
)

// CourseSummary is the course list projection
type CourseSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// ChapterView is a chapter joined with the requester's completion state
type ChapterView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       uint   `json:"order"`
	Completed   bool   `json:"completed"`
}

func GetAllCourses(c *fiber.Ctx) error {
	var courses []CourseSummary
	if err := database.Database.Db.Model(&courseModels.Course{}).Select("id", "title").Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"courses": courses,
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
	}

	var chapters []courseModels.Chapter
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("\"order\" asc").Find(&chapters).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch chapters!")
	}

	// Completion flags are personalized for authenticated requesters and
	// default to false for anonymous ones.
	completedByChapter := map[uint]bool{}
	if userID, ok := c.Locals("userId").(uint); ok {
		var progresses []courseModels.Progress
		if err := database.Database.Db.
			Joins("JOIN chapters ON chapters.id = progresses.chapter_id").
			Where("progresses.user_id = ? AND chapters.course_id = ?", userID, courseID).
			Find(&progresses).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch chapters!")
		}
		for _, p := range progresses {
			completedByChapter[p.ChapterID] = p.Completed
		}
	}

	chapterData := make([]ChapterView, len(chapters))
	for i, chapter := range chapters {
		chapterData[i] = ChapterView{
			ID:          chapter.ID,
			Title:       chapter.Title,
			Description: chapter.Description,
			Order:       chapter.Order,
			Completed:   completedByChapter[chapter.ID],
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"chapters":    chapterData,
	})
}

func GetCourseArticles(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found!")
	}

	var articles []courseModels.Article
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("\"order\" asc").Find(&articles).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch articles!")
	}

	type ArticleView struct {
		ID      uint   `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
		Order   uint   `json:"order"`
	}

	articleData := make([]ArticleView, len(articles))
	for i, article := range articles {
		articleData[i] = ArticleView{
			ID:      article.ID,
			Title:   article.Title,
			Content: article.Content,
			Order:   article.Order,
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"course": fiber.Map{
			"id":       course.ID,
			"title":    course.Title,
			"articles": articleData,
		},
	})
}
