// Package audit maintains the append-only admin action log. Every
// mutating service call records exactly one entry.
package audit

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gamevault/internal/collection"
	"gamevault/internal/models"
	"gamevault/internal/storage"
)

// Actor identifies who performed a mutation, as seen at the HTTP
// boundary. IP is the real client address, not a placeholder.
type Actor struct {
	Username  string
	IP        string
	UserAgent string
}

// System is the actor recorded for mutations not tied to a request,
// such as startup bootstrap.
var System = Actor{Username: "system", IP: "-", UserAgent: "-"}

type Sink struct {
	store *collection.Store[models.LogEntry]
	now   func() time.Time
}

func NewSink(port storage.Port, notifier collection.Notifier) *Sink {
	return &Sink{
		store: collection.NewStore(port, models.KeyAdminLogs, models.SeedLogEntries, notifier),
		now:   time.Now,
	}
}

func (s *Sink) Bootstrap() error {
	return s.store.Bootstrap()
}

// Record appends one entry. Failures are logged and swallowed; an
// unwritable audit trail must not fail the mutation it describes.
func (s *Sink) Record(actor Actor, action, details string) {
	entry := models.LogEntry{
		Action:    action,
		Username:  actor.Username,
		Timestamp: s.now().UTC(),
		Details:   details,
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
	}

	err := s.store.Mutate(func(entries []models.LogEntry) ([]models.LogEntry, error) {
		return append(entries, entry), nil
	})
	if err != nil {
		log.Printf("[audit] failed to record %q: %v", action, err)
	}
}

// List returns entries newest first, filtered by an exact action and a
// case-insensitive substring over username and details.
func (s *Sink) List(q, action string) ([]models.LogEntry, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(q)
	filtered := make([]models.LogEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if action != "" && e.Action != action {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Username), q) &&
			!strings.Contains(strings.ToLower(e.Details), q) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, nil
}

func (s *Sink) Count() (int, error) {
	entries, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Clear empties the log in a single write. The clear itself is the
// sole surviving entry, so the trail records who wiped it.
func (s *Sink) Clear(actor Actor) error {
	cleared := models.LogEntry{
		Action:    "logs.clear",
		Username:  actor.Username,
		Timestamp: s.now().UTC(),
		Details:   "cleared the admin log",
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
	}
	return s.store.Save([]models.LogEntry{cleared})
}

// Recordf is Record with a formatted details string.
func (s *Sink) Recordf(actor Actor, action, format string, args ...interface{}) {
	s.Record(actor, action, fmt.Sprintf(format, args...))
}
