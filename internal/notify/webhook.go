package notify

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// WebhookNotifier POSTs events as JSON to an arbitrary URL.
type WebhookNotifier struct {
	name   string
	url    string
	secret string
	events []string
	client *http.Client
}

// NewWebhookNotifier creates a webhook notifier. The secret, when set, is
// sent as the X-TaskHero-Secret header so receivers can authenticate the
// source.
func NewWebhookNotifier(name, url, secret string, events []string) *WebhookNotifier {
	return &WebhookNotifier{
		name:   name,
		url:    url,
		secret: secret,
		events: events,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Event   string    `json:"event"`
	TaskID  string    `json:"task_id,omitempty"`
	Title   string    `json:"title,omitempty"`
	Message string    `json:"message,omitempty"`
	Level   int       `json:"level,omitempty"`
	Points  int       `json:"points,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}

// Notify delivers the event. Failures are logged only.
func (n *WebhookNotifier) Notify(event Event) {
	if !wants(n.events, event.Type) {
		return
	}

	payload, err := json.Marshal(webhookPayload{
		Event:   event.Type,
		TaskID:  event.TaskID,
		Title:   event.Title,
		Message: event.Message,
		Level:   event.Level,
		Points:  event.Points,
		SentAt:  time.Now().UTC(),
	})
	if err != nil {
		slog.Error("webhook payload encode failed", "webhook", n.name, "error", err)
		return
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		slog.Error("webhook request build failed", "webhook", n.name, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if n.secret != "" {
		req.Header.Set("X-TaskHero-Secret", n.secret)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Warn("webhook delivery failed", "webhook", n.name, "event", event.Type, "error", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		slog.Warn("webhook delivery rejected", "webhook", n.name, "event", event.Type, "status", resp.StatusCode)
	}
}
