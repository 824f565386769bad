package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"lms/config"
)

// Event names posted to the webhook
const (
	EventEnrolled          = "course.enrolled"
	EventUnenrolled        = "course.unenrolled"
	EventCertificateIssued = "certificate.issued"
)

type webhookEvent struct {
	Event    string    `json:"event"`
	UserID   uint      `json:"userId"`
	CourseID uint      `json:"courseId"`
	At       time.Time `json:"at"`
}

// NotifyEvent posts an event to the configured webhook on a goroutine.
// Delivery is best effort: failures are logged and never surfaced to the
// caller or the user.
func NotifyEvent(event string, userID, courseID uint) {
	url := config.AppConfig.EventWebhookURL
	if url == "" {
		return
	}

	go func() {
		client := resty.New().SetTimeout(10 * time.Second)

		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(webhookEvent{
				Event:    event,
				UserID:   userID,
				CourseID: courseID,
				At:       time.Now(),
			}).
			Post(url)
		if err != nil {
			log.Printf("Error posting %s event to webhook: %v", event, err)
			return
		}

		if resp.IsError() {
			log.Printf("Webhook rejected %s event: %s", event, resp.Status())
		}
	}()
}
