package service

import (
	"sort"

	"github.com/google/uuid"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

func (s *Service) ListAnnouncements(q string) ([]models.Announcement, error) {
	announcements, err := s.announcements.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if q != "" && !containsFold(a.Title, q) {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].StartDate.After(filtered[j].StartDate) })
	return filtered, nil
}

// ActiveAnnouncements is the public view: enabled and inside their
// [start, end] window right now.
func (s *Service) ActiveAnnouncements() ([]models.Announcement, error) {
	announcements, err := s.announcements.Load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]models.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.ActiveAt(now) {
			active = append(active, a)
		}
	}

	sort.Slice(active, func(i, j int) bool { return active[i].StartDate.After(active[j].StartDate) })
	return active, nil
}

func (s *Service) CreateAnnouncement(actor audit.Actor, a models.Announcement) (models.Announcement, error) {
	if err := collection.Validate(map[string]bool{
		"title":   a.Title != "",
		"content": a.Content != "",
		"dates":   !a.StartDate.IsZero() && !a.EndDate.IsZero() && !a.EndDate.Before(a.StartDate),
	}); err != nil {
		return models.Announcement{}, err
	}

	a.ID = uuid.NewString()
	a.Version = 1

	err := s.announcements.Mutate(func(announcements []models.Announcement) ([]models.Announcement, error) {
		return append(announcements, a), nil
	})
	if err != nil {
		return models.Announcement{}, err
	}

	s.audit.Recordf(actor, "announcements.create", "created announcement %q (%s)", a.Title, a.ID)
	return a, nil
}

func (s *Service) UpdateAnnouncement(actor audit.Actor, id string, a models.Announcement) (models.Announcement, error) {
	if err := collection.Validate(map[string]bool{
		"title":   a.Title != "",
		"content": a.Content != "",
		"dates":   !a.StartDate.IsZero() && !a.EndDate.IsZero() && !a.EndDate.Before(a.StartDate),
	}); err != nil {
		return models.Announcement{}, err
	}

	var updated models.Announcement
	err := s.announcements.Mutate(func(announcements []models.Announcement) ([]models.Announcement, error) {
		for i, existing := range announcements {
			if existing.ID != id {
				continue
			}
			if a.Version != existing.Version {
				return nil, collection.ErrConflict
			}
			a.ID = id
			a.Version = existing.Version + 1
			announcements[i] = a
			updated = a
			return announcements, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.Announcement{}, err
	}

	s.audit.Recordf(actor, "announcements.update", "updated announcement %q (%s)", updated.Title, updated.ID)
	return updated, nil
}

func (s *Service) DeleteAnnouncement(actor audit.Actor, id string) error {
	var title string
	err := s.announcements.Mutate(func(announcements []models.Announcement) ([]models.Announcement, error) {
		kept := announcements[:0]
		found := false
		for _, a := range announcements {
			if a.ID == id {
				found = true
				title = a.Title
				continue
			}
			kept = append(kept, a)
		}
		if !found {
			return nil, collection.ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.audit.Recordf(actor, "announcements.delete", "deleted announcement %q (%s)", title, id)
	return nil
}

// ToggleAnnouncementActive flips the enabled flag independent of the
// date window.
func (s *Service) ToggleAnnouncementActive(actor audit.Actor, id string) (models.Announcement, error) {
	var toggled models.Announcement
	err := s.announcements.Mutate(func(announcements []models.Announcement) ([]models.Announcement, error) {
		for i, a := range announcements {
			if a.ID != id {
				continue
			}
			announcements[i].IsActive = !a.IsActive
			announcements[i].Version = a.Version + 1
			toggled = announcements[i]
			return announcements, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.Announcement{}, err
	}

	state := "disabled"
	if toggled.IsActive {
		state = "enabled"
	}
	s.audit.Recordf(actor, "announcements.toggle", "%s announcement %q (%s)", state, toggled.Title, toggled.ID)
	return toggled, nil
}
