package notify

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// capture records a single delivered request for inspection.
type capture struct {
	mu      sync.Mutex
	headers http.Header
	body    string
	path    string
	count   int
}

func captureServer(t *testing.T) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.headers = r.Header.Clone()
		c.body = string(raw)
		c.path = r.URL.Path
		c.count++
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func (c *capture) snapshot() capture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return capture{headers: c.headers, body: c.body, path: c.path, count: c.count}
}

func TestWants(t *testing.T) {
	t.Parallel()

	assert.True(t, wants(nil, EventTaskCompleted), "empty filter passes everything")
	assert.True(t, wants([]string{EventTaskCompleted, EventLevelUp}, EventLevelUp))
	assert.False(t, wants([]string{EventTaskCompleted}, EventTaskRemoved))
}

func TestWebhookNotifier_DeliversPayload(t *testing.T) {
	t.Parallel()
	srv, c := captureServer(t)

	n := NewWebhookNotifier("test-hook", srv.URL+"/hook", "s3cret", nil)
	n.Notify(Event{
		Type:   EventTaskCompleted,
		TaskID: "task-11111111",
		Title:  "Write report",
		Points: 10,
	})

	got := c.snapshot()
	require.Equal(t, 1, got.count)
	assert.Equal(t, "/hook", got.path)
	assert.Equal(t, "application/json", got.headers.Get("Content-Type"))
	assert.Equal(t, "s3cret", got.headers.Get("X-TaskHero-Secret"))

	assert.Equal(t, "task.completed", gjson.Get(got.body, "event").String())
	assert.Equal(t, "task-11111111", gjson.Get(got.body, "task_id").String())
	assert.Equal(t, "Write report", gjson.Get(got.body, "title").String())
	assert.Equal(t, int64(10), gjson.Get(got.body, "points").Int())
	assert.NotEmpty(t, gjson.Get(got.body, "sent_at").String())
}

func TestWebhookNotifier_OmitsSecretHeaderWhenUnset(t *testing.T) {
	t.Parallel()
	srv, c := captureServer(t)

	n := NewWebhookNotifier("test-hook", srv.URL, "", nil)
	n.Notify(Event{Type: EventTaskCreated, Title: "a"})

	got := c.snapshot()
	require.Equal(t, 1, got.count)
	_, present := got.headers["X-Taskhero-Secret"]
	assert.False(t, present)
}

func TestWebhookNotifier_FiltersEvents(t *testing.T) {
	t.Parallel()
	srv, c := captureServer(t)

	n := NewWebhookNotifier("test-hook", srv.URL, "", []string{EventLevelUp})
	n.Notify(Event{Type: EventTaskCompleted, Title: "ignored"})
	n.Notify(Event{Type: EventLevelUp, Level: 2})

	got := c.snapshot()
	require.Equal(t, 1, got.count)
	assert.Equal(t, "level.up", gjson.Get(got.body, "event").String())
}

func TestNtfyNotifier_PublishesToTopic(t *testing.T) {
	t.Parallel()
	srv, c := captureServer(t)

	n := NewNtfyNotifier(srv.URL+"/", "hero-topic", "tok123", nil)
	n.Notify(Event{Type: EventLevelUp, Level: 2, Message: "You reached level 2 with 100 points."})

	got := c.snapshot()
	require.Equal(t, 1, got.count)
	assert.Equal(t, "/hero-topic", got.path, "trailing server slash is trimmed")
	assert.Equal(t, "Level 2 reached", got.headers.Get("Title"))
	assert.Equal(t, "arrow_up", got.headers.Get("Tags"))
	assert.Equal(t, "Bearer tok123", got.headers.Get("Authorization"))
	assert.Equal(t, "You reached level 2 with 100 points.", got.body)
}

func TestNtfyNotifier_BodyFallsBackToTaskTitle(t *testing.T) {
	t.Parallel()
	srv, c := captureServer(t)

	n := NewNtfyNotifier(srv.URL, "hero-topic", "", nil)
	n.Notify(Event{Type: EventTaskCompleted, Title: "Morning run"})

	got := c.snapshot()
	require.Equal(t, 1, got.count)
	assert.Equal(t, "Mission complete", got.headers.Get("Title"))
	assert.Equal(t, "white_check_mark", got.headers.Get("Tags"))
	assert.Empty(t, got.headers.Get("Authorization"))
	assert.Equal(t, "Morning run", got.body)
}

// countingNotifier counts deliveries for hub fan-out tests.
type countingNotifier struct {
	mu    sync.Mutex
	count int
	done  chan struct{}
}

func (n *countingNotifier) Notify(_ Event) {
	n.mu.Lock()
	n.count++
	n.mu.Unlock()
	n.done <- struct{}{}
}

func TestHub_FansOutToAllNotifiers(t *testing.T) {
	t.Parallel()

	a := &countingNotifier{done: make(chan struct{}, 1)}
	b := &countingNotifier{done: make(chan struct{}, 1)}
	hub := NewHub(a, b)

	hub.Notify(Event{Type: EventTaskCreated})

	for _, n := range []*countingNotifier{a, b} {
		select {
		case <-n.done:
		case <-time.After(2 * time.Second):
			t.Fatal("notifier was not called")
		}
		n.mu.Lock()
		assert.Equal(t, 1, n.count)
		n.mu.Unlock()
	}
}
