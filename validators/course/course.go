package courseValidator

import (
	"strconv"
	"strings"

	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func parsePositiveInt(c *fiber.Ctx, param string) (int, bool) {
	raw := strings.TrimSpace(c.Params(param))
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

// parseNonNegativeInt also admits 0, the default chapter order.
func parseNonNegativeInt(c *fiber.Ctx, param string) (int, bool) {
	raw := strings.TrimSpace(c.Params(param))
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}

// CourseID validates the :course_id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveInt(c, "course_id")
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// ChapterByOrder validates the :chapter_order path parameter and, on POST, the
// optional completion flag. The original API sends the flag as the form value
// completed=true|false; JSON bodies with a boolean are accepted too.
func ChapterByOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveInt(c, "course_id")
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}
		chapterOrder, ok := parseNonNegativeInt(c, "chapter_order")
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Chapter order!")
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterOrder", chapterOrder)

		if c.Method() == fiber.MethodPost {
			completed, err := parseCompletedFlag(c)
			if err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid completed flag!")
			}
			if completed != nil {
				c.Locals("completedFlag", *completed)
			}
		}

		return c.Next()
	}
}

func parseCompletedFlag(c *fiber.Ctx) (*bool, error) {
	// Form or query encoded flag
	if raw := c.FormValue("completed"); raw != "" {
		value := raw == "true"
		return &value, nil
	}

	if len(c.Body()) == 0 {
		return nil, nil
	}

	reqData := new(struct {
		Completed *bool `json:"completed"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return nil, err
	}
	return reqData.Completed, nil
}

// ChapterProgress validates the parameters of the progress-by-id endpoint.
func ChapterProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parsePositiveInt(c, "course_id")
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}
		chapterID, ok := parsePositiveInt(c, "chapter_id")
		if !ok {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Chapter ID!")
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}
