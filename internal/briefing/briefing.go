// Package briefing talks to the generative-text API behind the daily mission
// and the per-task motivational messages. Every call degrades to a fixed
// fallback: callers never see an error from this package.
package briefing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"

	"github.com/kolapsis/taskhero/internal/mission"
)

// DefaultBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// DefaultModel is used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 30 * time.Second

// FallbackMission is returned whenever the briefing call cannot be made or
// its response cannot be parsed.
var FallbackMission = mission.DailyMission{
	Quote:     "Success is not final, failure is not fatal: it is the courage to continue that counts.",
	Goal:      "Today, focus on discipline and consistency.",
	Challenge: "Drink 2L of water and finish 3 missions before noon.",
}

// FallbackMessage is the deterministic motivational message used when the
// API is unavailable or errors.
func FallbackMessage(title string) string {
	return fmt.Sprintf("Time to take on: %s! 💪", title)
}

// Config configures the Gemini client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the generative-text API. A Client built without an API key is
// disabled: it short-circuits to fallbacks without any network call.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
	enabled bool
}

// New creates a Client from cfg, filling in defaults for base URL, model and
// timeout.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		model:   cfg.Model,
		timeout: cfg.Timeout,
		enabled: cfg.APIKey != "",
	}
	if !c.enabled {
		slog.Warn("briefing API key missing, using fallback content only")
		return c
	}

	c.api = openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)
	return c
}

const briefingPrompt = "Generate a morning briefing for a productivity app. " +
	"Reply with exactly one JSON object with three string fields: " +
	`"quote" (a motivational quote), "goal" (a focus goal for the day) and ` +
	`"challenge" (one small unique challenge). No other text.`

// DailyBriefing fetches today's mission. On any failure (missing key,
// network error, unparseable reply) it returns FallbackMission.
func (c *Client) DailyBriefing(ctx context.Context) mission.DailyMission {
	if !c.enabled {
		return FallbackMission
	}

	text, err := c.generate(ctx, briefingPrompt, 0.7)
	if err != nil {
		slog.Error("daily briefing call failed", "error", err)
		return FallbackMission
	}

	m, ok := parseMission(text)
	if !ok {
		slog.Error("daily briefing reply unparseable", "reply_len", len(text))
		return FallbackMission
	}
	return m
}

// MotivationalMessage fetches a short battle-cry for a task. Called once at
// task creation; the result is frozen onto the task. On any failure it
// returns FallbackMessage(title).
func (c *Client) MotivationalMessage(ctx context.Context, title, timeOfDay string) string {
	if !c.enabled {
		return FallbackMessage(title)
	}

	prompt := fmt.Sprintf("Transform this mundane task into a short, punchy, "+
		"battle-cry style motivational reminder with an emoji. "+
		"Task: %q at %s. Keep it under 10 words. "+
		"Make it sound like a coach or a hero's mentor.", title, timeOfDay)

	text, err := c.generate(ctx, prompt, 0.9)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			slog.Error("motivational message call failed", "error", err, "title", title)
		}
		return FallbackMessage(title)
	}
	return strings.TrimSpace(text)
}

func (c *Client) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseMission extracts the three briefing fields from a model reply,
// tolerating markdown code fences around the JSON. All three fields must be
// present and non-empty.
func parseMission(text string) (mission.DailyMission, bool) {
	raw := stripFences(text)
	if !gjson.Valid(raw) {
		return mission.DailyMission{}, false
	}

	m := mission.DailyMission{
		Quote:     strings.TrimSpace(gjson.Get(raw, "quote").String()),
		Goal:      strings.TrimSpace(gjson.Get(raw, "goal").String()),
		Challenge: strings.TrimSpace(gjson.Get(raw, "challenge").String()),
	}
	if m.Quote == "" || m.Goal == "" || m.Challenge == "" {
		return mission.DailyMission{}, false
	}
	return m, true
}

// stripFences removes a surrounding markdown code fence (``` or ```json)
// that models sometimes wrap JSON replies in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.HasPrefix(s, "{") {
		s = s[i+1:] // drop the language tag line, e.g. "json"
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
