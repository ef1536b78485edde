package authRoutes

import (
	controllers "elearn/controllers/auth"
	validators "elearn/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and the csrf compatibility endpoint
func SetupAuthRoutes(app *fiber.App) {
	app.Post("/signup/", validators.Signup(), controllers.Signup)
	app.Post("/login/", validators.Login(), controllers.Login)
	app.Get("/csrf-token/", controllers.CsrfToken)
}
