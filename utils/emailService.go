package utils

import (
	"fmt"
	"log"
	"net/http"

	"elearn/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. A missing API key disables
// delivery (local development, tests).
func SendEmail(to string, subject string, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email to %s (%s)", to, subject)
		return nil
	}

	from := mail.NewEmail("eLearn", config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a freshly signed-up user. Called from a goroutine;
// failures are logged and never surface to the signup response.
func SendWelcomeEmail(to string) {
	body := fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; line-height: 1.6;">
		<h2>Welcome to eLearn!</h2>
		<p>Your account <b>%s</b> is ready. Browse the catalog and enroll in your first course.</p>
	</div>`, to)

	if err := SendEmail(to, "Welcome to eLearn", body); err != nil {
		log.Printf("Error sending welcome email to %s: %v", to, err)
	}
}
