package task

import (
	"iter"
	"slices"
	"strings"
	"sync"
)

// AllCategories is the synthetic sentinel prepended by Categories for
// "no filter" in category pickers.
const AllCategories = "All"

// Store is an insertion-ordered, mutex-guarded collection of tasks. It owns
// the task list exclusively: all mutations go through Add, Toggle and Remove.
type Store struct {
	mu    sync.RWMutex
	tasks []Task
	index map[string]int // id → position in tasks
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Add appends a fully-formed task to the collection.
// Returns ErrDuplicateID if a task with the same id already exists.
func (s *Store) Add(t Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[t.ID]; ok {
		return ErrDuplicateID
	}
	s.index[t.ID] = len(s.tasks)
	s.tasks = append(s.tasks, t)
	return nil
}

// Toggle flips the completion state of the task with the given id.
// The returned delta is +1 for a false→true transition and -1 for true→false,
// matching the score adjustment the caller must apply exactly once.
// Returns ErrNotFound if the id is absent.
func (s *Store) Toggle(id string) (delta int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return 0, ErrNotFound
	}
	s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
	if s.tasks[i].IsCompleted {
		return 1, nil
	}
	return -1, nil
}

// Remove deletes the task with the given id, preserving the order of the
// remaining tasks. Removal is a pure list operation: it never adjusts the
// score, even when the removed task was completed.
// Returns ErrNotFound if the id is absent.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ErrNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	delete(s.index, id)
	for j := i; j < len(s.tasks); j++ {
		s.index[s.tasks[j].ID] = j
	}
	return nil
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// CompletedCount returns the number of completed tasks.
func (s *Store) CompletedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tasks {
		if t.IsCompleted {
			n++
		}
	}
	return n
}

// Pending returns a lazy, restartable sequence of incomplete tasks in
// insertion order. A non-empty category other than AllCategories filters by
// exact match. Each iteration works on a snapshot, so mutating the store
// mid-iteration is safe.
func (s *Store) Pending(category string) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range s.Snapshot() {
			if t.IsCompleted {
				continue
			}
			if category != "" && category != AllCategories && t.Category != category {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// SortedByTime returns all tasks ordered by scheduled time. Comparison is
// lexicographic on the fixed-width "HH:MM" strings; equal times keep
// insertion order.
func (s *Store) SortedByTime() []Task {
	out := s.Snapshot()
	slices.SortStableFunc(out, func(a, b Task) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

// Categories returns the distinct category labels present in the collection,
// in first-seen order, with the AllCategories sentinel prepended.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []string{AllCategories}
	seen := make(map[string]bool)
	for _, t := range s.tasks {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Snapshot returns a copy of all tasks in insertion order.
func (s *Store) Snapshot() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

// Replace swaps the entire collection, deduplicating on id (first wins).
// Used when restoring persisted state at startup.
func (s *Store) Replace(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = s.tasks[:0]
	s.index = make(map[string]int, len(tasks))
	for _, t := range tasks {
		if _, ok := s.index[t.ID]; ok {
			continue
		}
		s.index[t.ID] = len(s.tasks)
		s.tasks = append(s.tasks, t)
	}
}
