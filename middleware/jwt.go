package middleware

import (
	"fmt"
	"strings"
	"time"

	"elearn/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user. The token is the session
// value clients thread through authenticated calls.
func GenerateJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// parseUserID extracts and validates the user id from a Bearer token.
func parseUserID(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	// JWT claims decode numbers as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid token payload")
	}
	return uint(userID), nil
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return authHeader[len("Bearer "):], true
}

// JWTMiddleware rejects requests that do not carry a valid Bearer token and
// stores the authenticated user id in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString, ok := bearerToken(c)
	if !ok {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}

	userID, err := parseUserID(tokenString)
	if err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals("userId", userID)
	return c.Next()
}

// OptionalJWTMiddleware authenticates the request when a valid Bearer token is
// present and lets anonymous requests through. Used by read endpoints that
// only personalize their payload for logged-in users.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	if tokenString, ok := bearerToken(c); ok {
		if userID, err := parseUserID(tokenString); err == nil {
			c.Locals("userId", userID)
		}
	}
	return c.Next()
}

// ErrorResponse writes the shared error payload shape.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}
