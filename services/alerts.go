package services

import (
	"fmt"
	"os"
	"time"

	"cronwatch/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendErrorEmail mails an alert for a job whose verdict is error.
// Skipped silently when SendGrid is not configured; webhook delivery
// remains the primary channel.
func SendErrorEmail(result models.JobResult) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Email alert panic recovered: %v\n", r)
		}
	}()

	apiKey := os.Getenv("SENDGRID_API_KEY")
	alertEmail := os.Getenv("ALERT_EMAIL")

	if apiKey == "" || alertEmail == "" {
		return
	}

	subject := fmt.Sprintf("[CRITICAL] %s failed health check", result.Name)

	plainTextContent := fmt.Sprintf(`Job: %s
Status: %s
Time: %s

WHAT WENT WRONG:
%s

This usually means:
- The job logged a failure line
- The job started but never completed within its window
- Its log file is missing or unreadable

Please investigate immediately.`,
		result.Name,
		result.Status,
		time.Now().Format(time.RFC3339),
		result.Message,
	)

	from := mail.NewEmail("CronWatch", alertEmail)
	to := mail.NewEmail("Admin", alertEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, plainTextContent)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		fmt.Printf("Error sending alert email: %v\n", err)
	} else {
		fmt.Printf("Alert email sent. Status Code: %d\n", response.StatusCode)
	}
}
