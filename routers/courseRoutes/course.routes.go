package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Catalog reads; course detail personalizes completion flags when a
	// valid token is presented
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:course_id/", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:course_id/articles/", validators.CourseID(), controllers.GetCourseArticles)

	// Enrollment
	courseGroup.Post("/:course_id/enroll/", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Progress; the by-order route is kept for compatibility with the
	// original API (chapters addressed as 1, 2, 3 in the URL)
	courseGroup.Get("/:course_id/chapters/:chapter_id/progress/", middleware.JWTMiddleware, validators.ChapterProgress(), controllers.GetChapterProgress)
	courseGroup.Get("/:course_id/chapters/:chapter_order/", middleware.JWTMiddleware, validators.ChapterByOrder(), controllers.GetChapterByOrder)
	courseGroup.Post("/:course_id/chapters/:chapter_order/", middleware.JWTMiddleware, validators.ChapterByOrder(), controllers.GetChapterByOrder)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments/", middleware.JWTMiddleware, controllers.GetEnrollments)
}
