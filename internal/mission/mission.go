// Package mission caches the daily briefing and decides, by calendar day,
// when the provider has to be asked for a fresh one.
package mission

import (
	"context"
	"sync"
	"time"
)

// DailyMission is the motivational bundle generated once per calendar day.
type DailyMission struct {
	Quote     string `json:"quote"`
	Goal      string `json:"goal"`
	Challenge string `json:"challenge"`
}

// Provider supplies the daily briefing. Implementations must never fail:
// on any internal error they return a usable fallback mission.
type Provider interface {
	DailyBriefing(ctx context.Context) DailyMission
}

// DayKey reduces a timestamp to its local calendar-day identity
// ("2006-01-02"). Year/month/day only: two instants on the same local day
// always compare equal regardless of clock time. Behavior across timezone
// changes or multi-device sync is out of scope.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Cache holds at most one mission together with the day it was generated.
// Get refreshes it at most once per calendar day.
type Cache struct {
	provider Provider

	mu      sync.Mutex
	mission DailyMission
	day     string // DayKey of the cached mission, "" when absent
}

// NewCache creates an empty Cache backed by the given provider.
func NewCache(p Provider) *Cache {
	return &Cache{provider: p}
}

// Prime seeds the cache from persisted state. An empty day or a mission with
// any blank field is ignored, leaving the cache absent.
func (c *Cache) Prime(m DailyMission, day string) {
	if day == "" || m.Quote == "" || m.Goal == "" || m.Challenge == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mission = m
	c.day = day
}

// Get returns the mission for the calendar day of now. If the cached mission
// was generated on that same day it is returned verbatim without a provider
// call; otherwise the provider is called exactly once and the result stored
// under today's day stamp. refreshed reports whether a provider call was
// made, so the caller knows to persist the new mission.
func (c *Cache) Get(ctx context.Context, now time.Time) (m DailyMission, day string, refreshed bool) {
	today := DayKey(now)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.day == today {
		return c.mission, c.day, false
	}

	c.mission = c.provider.DailyBriefing(ctx)
	c.day = today
	return c.mission, c.day, true
}
