package utils

import (
	"log"
	"time"

	"elearn/config"

	"github.com/go-resty/resty/v2"
)

// NotifyEnrollment posts a new enrollment to the configured webhook URL.
// Fire-and-forget: called from a goroutine after the enrollment transaction
// committed, so delivery failures never affect the API response.
func NotifyEnrollment(userEmail string, courseTitle string, enrollmentID uint) {
	url := config.AppConfig.EnrollmentWebhookURL
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetBody(map[string]interface{}{
			"event":         "enrollment.created",
			"enrollment_id": enrollmentID,
			"user_email":    userEmail,
			"course_title":  courseTitle,
		}).
		Post(url)
	if err != nil {
		log.Printf("Error calling enrollment webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Enrollment webhook failed: %s", resp.String())
	}
}
