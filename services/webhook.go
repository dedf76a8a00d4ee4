package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cronwatch/models"
)

var webhookClient = &http.Client{Timeout: 10 * time.Second}

// DeliverReport POSTs a report payload to the callback URL. Delivery
// is best effort: failures are logged, never propagated.
func DeliverReport(webhookURL string, payload models.WebhookPayload) {
	// Safety: Recover from any panic to avoid crashing the worker
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Webhook panic recovered: %v\n", r)
		}
	}()

	if webhookURL == "" {
		fmt.Println("Webhook skipped: no callback URL configured")
		return
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error marshaling webhook payload: %v\n", err)
		return
	}

	resp, err := webhookClient.Post(webhookURL, "application/json", bytes.NewBuffer(jsonPayload))
	if err != nil {
		fmt.Printf("Error sending webhook request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		fmt.Printf("Webhook API error: Status %d\n", resp.StatusCode)
	} else {
		fmt.Println("Webhook report delivered")
	}
}
