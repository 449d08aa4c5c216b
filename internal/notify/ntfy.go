package notify

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// NtfyNotifier publishes events to an ntfy.sh-compatible server.
type NtfyNotifier struct {
	server string
	topic  string
	token  string
	events []string
	client *http.Client
}

// NewNtfyNotifier creates a notifier posting to server/topic. An empty
// events list subscribes to everything.
func NewNtfyNotifier(server, topic, token string, events []string) *NtfyNotifier {
	return &NtfyNotifier{
		server: strings.TrimRight(server, "/"),
		topic:  topic,
		token:  token,
		events: events,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify publishes the event as an ntfy message. Failures are logged only.
func (n *NtfyNotifier) Notify(event Event) {
	if !wants(n.events, event.Type) {
		return
	}

	url := n.server + "/" + n.topic
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body(event)))
	if err != nil {
		slog.Error("ntfy request build failed", "error", err)
		return
	}
	req.Header.Set("Title", title(event))
	req.Header.Set("Tags", tag(event.Type))
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		slog.Warn("ntfy publish failed", "event", event.Type, "error", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		slog.Warn("ntfy publish rejected", "event", event.Type, "status", resp.StatusCode)
	}
}

func title(event Event) string {
	switch event.Type {
	case EventTaskCompleted:
		return "Mission complete"
	case EventLevelUp:
		return fmt.Sprintf("Level %d reached", event.Level)
	case EventAchievementUnlocked:
		return "Achievement unlocked"
	default:
		return "TaskHero"
	}
}

func body(event Event) string {
	if event.Message != "" {
		return event.Message
	}
	return event.Title
}

func tag(eventType string) string {
	switch eventType {
	case EventTaskCompleted:
		return "white_check_mark"
	case EventLevelUp:
		return "arrow_up"
	case EventAchievementUnlocked:
		return "trophy"
	case EventTaskReopened:
		return "leftwards_arrow_with_hook"
	default:
		return "memo"
	}
}
