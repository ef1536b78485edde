package authController

import (
	"errors"
	"log"
	"time"

	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Signup(c *fiber.Ctx) error {
	// Retrieve validated signup request
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Email     string `json:"email" form:"email" validate:"required,email"`
		Password1 string `json:"password1" form:"password1" validate:"required"`
		Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password1"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password1), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	// The email doubles as the username; the unique constraint on it is the
	// duplicate-signup check.
	newUser := models.User{
		Username: reqData.Email,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered!")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to Signup user!")
	}

	go utils.SendWelcomeEmail(newUser.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": "Account created successfully!",
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email" form:"email" validate:"required"`
		Password string `json:"password" form:"password" validate:"required"`
	})
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": "Logged in successfully!",
		"token":   token,
	})
}

// CsrfToken exists for compatibility with clients of the original API. Auth
// rides on the Authorization header, so the token is only a nonce to echo.
func CsrfToken(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"csrfToken": uuid.NewString(),
	})
}
