// Package server exposes the JSON HTTP API consumed by the web views.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kolapsis/taskhero/internal/task"
	"github.com/kolapsis/taskhero/internal/tracker"
)

// API serves the tracker over JSON HTTP.
type API struct {
	tracker *tracker.Tracker
	now     func() time.Time
}

// New creates an API around the given tracker.
func New(t *tracker.Tracker) *API {
	return &API{tracker: t, now: time.Now}
}

// Routes returns the /api router.
func (a *API) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/dashboard", a.handleDashboard)
	r.Get("/mission", a.handleMission)
	r.Get("/stats", a.handleStats)
	r.Get("/categories", a.handleCategories)

	r.Get("/tasks", a.handleListTasks)
	r.Post("/tasks", a.handleCreateTask)
	r.Post("/tasks/{id}/toggle", a.handleToggleTask)
	r.Delete("/tasks/{id}", a.handleDeleteTask)

	return r
}

func (a *API) handleDashboard(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, a.tracker.Dashboard(r.Context(), a.now(), category))
}

func (a *API) handleMission(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.tracker.Mission(r.Context(), a.now()))
}

func (a *API) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.tracker.StatsView())
}

func (a *API) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"suggested": task.SuggestedCategories,
		"present":   a.tracker.Categories(),
	})
}

func (a *API) handleListTasks(w http.ResponseWriter, _ *http.Request) {
	tasks := a.tracker.Tasks()
	if tasks == nil {
		tasks = []task.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Title    string `json:"title"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

func (a *API) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := a.tracker.AddTask(r.Context(), tracker.NewTaskInput{
		Title:           req.Title,
		Time:            req.Time,
		DurationMinutes: req.Duration,
		Priority:        task.Priority(req.Priority),
		Category:        req.Category,
	})
	switch {
	case errors.Is(err, task.ErrEmptyTitle), errors.Is(err, task.ErrBadTime):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrDuplicateID):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, "creating task failed")
	default:
		writeJSON(w, http.StatusCreated, created)
	}
}

func (a *API) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	toggled, stats, err := a.tracker.Toggle(r.Context(), id)
	if errors.Is(err, task.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "toggling task failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"task":  toggled,
		"stats": stats,
	})
}

func (a *API) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := a.tracker.Remove(id)
	if errors.Is(err, task.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "removing task failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
