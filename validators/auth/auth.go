package authValidator

import (
	"elearn/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email     string `json:"email" form:"email" validate:"required,email"`
			Password1 string `json:"password1" form:"password1" validate:"required"`
			Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password1"`
		})

		// BodyParser handles JSON and form bodies alike
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, signupErrorMessage(err))
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func signupErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			switch fe.Tag() {
			case "required":
				return "All fields (email, password1, password2) are required"
			case "eqfield":
				return "Passwords do not match"
			case "email":
				return "Enter a valid email address"
			}
		}
	}
	return "Invalid request body!"
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email" form:"email" validate:"required"`
			Password string `json:"password" form:"password" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
