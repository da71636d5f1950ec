package service

import (
	"sort"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

// ListCarousel returns items in display order. With activeOnly set it
// is the public view.
func (s *Service) ListCarousel(activeOnly bool) ([]models.CarouselItem, error) {
	items, err := s.carousel.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.CarouselItem, 0, len(items))
	for _, item := range items {
		if activeOnly && !item.Active {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Order < filtered[j].Order })
	return filtered, nil
}

func (s *Service) CreateCarouselItem(actor audit.Actor, item models.CarouselItem) (models.CarouselItem, error) {
	if err := collection.Validate(map[string]bool{
		"title":     item.Title != "",
		"image_url": item.ImageURL != "",
	}); err != nil {
		return models.CarouselItem{}, err
	}

	var created models.CarouselItem
	err := s.carousel.Mutate(func(items []models.CarouselItem) ([]models.CarouselItem, error) {
		id, order := 1, 1
		for _, existing := range items {
			if existing.ID >= id {
				id = existing.ID + 1
			}
			if existing.Order >= order {
				order = existing.Order + 1
			}
		}
		item.ID = id
		item.Order = order
		item.Version = 1
		created = item
		return append(items, item), nil
	})
	if err != nil {
		return models.CarouselItem{}, err
	}

	s.audit.Recordf(actor, "carousel.create", "created carousel item %q (id %d)", created.Title, created.ID)
	return created, nil
}

func (s *Service) UpdateCarouselItem(actor audit.Actor, id int, item models.CarouselItem) (models.CarouselItem, error) {
	if err := collection.Validate(map[string]bool{
		"title":     item.Title != "",
		"image_url": item.ImageURL != "",
	}); err != nil {
		return models.CarouselItem{}, err
	}

	var updated models.CarouselItem
	err := s.carousel.Mutate(func(items []models.CarouselItem) ([]models.CarouselItem, error) {
		for i, existing := range items {
			if existing.ID != id {
				continue
			}
			if item.Version != existing.Version {
				return nil, collection.ErrConflict
			}
			item.ID = id
			item.Order = existing.Order // position changes only via reorder
			item.Version = existing.Version + 1
			items[i] = item
			updated = item
			return items, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.CarouselItem{}, err
	}

	s.audit.Recordf(actor, "carousel.update", "updated carousel item %q (id %d)", updated.Title, updated.ID)
	return updated, nil
}

func (s *Service) DeleteCarouselItem(actor audit.Actor, id int) error {
	var title string
	err := s.carousel.Mutate(func(items []models.CarouselItem) ([]models.CarouselItem, error) {
		kept := items[:0]
		found := false
		for _, item := range items {
			if item.ID == id {
				found = true
				title = item.Title
				continue
			}
			kept = append(kept, item)
		}
		if !found {
			return nil, collection.ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.audit.Recordf(actor, "carousel.delete", "deleted carousel item %q (id %d)", title, id)
	return nil
}

func (s *Service) ToggleCarouselActive(actor audit.Actor, id int) (models.CarouselItem, error) {
	var toggled models.CarouselItem
	err := s.carousel.Mutate(func(items []models.CarouselItem) ([]models.CarouselItem, error) {
		for i, item := range items {
			if item.ID != id {
				continue
			}
			items[i].Active = !item.Active
			items[i].Version = item.Version + 1
			toggled = items[i]
			return items, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.CarouselItem{}, err
	}

	state := "deactivated"
	if toggled.Active {
		state = "activated"
	}
	s.audit.Recordf(actor, "carousel.toggle", "%s carousel item %q (id %d)", state, toggled.Title, toggled.ID)
	return toggled, nil
}

// ReorderCarouselItem swaps the order value of the item with its
// neighbor in the current display order. Moving the first item up or
// the last item down is a no-op and records no audit entry.
func (s *Service) ReorderCarouselItem(actor audit.Actor, id int, direction string) error {
	if direction != "up" && direction != "down" {
		return &collection.ValidationError{Fields: []string{"direction"}}
	}

	var title string
	err := s.carousel.Mutate(func(items []models.CarouselItem) ([]models.CarouselItem, error) {
		ordered := make([]*models.CarouselItem, len(items))
		for i := range items {
			ordered[i] = &items[i]
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

		pos := -1
		for i, item := range ordered {
			if item.ID == id {
				pos = i
				break
			}
		}
		if pos == -1 {
			return nil, collection.ErrNotFound
		}

		neighbor := pos - 1
		if direction == "down" {
			neighbor = pos + 1
		}
		if neighbor < 0 || neighbor >= len(ordered) {
			return nil, errNoChange
		}

		ordered[pos].Order, ordered[neighbor].Order = ordered[neighbor].Order, ordered[pos].Order
		ordered[pos].Version++
		ordered[neighbor].Version++
		title = ordered[pos].Title
		return items, nil
	})
	if err != nil {
		return ignoreNoChange(err)
	}

	s.audit.Recordf(actor, "carousel.reorder", "moved carousel item %q (id %d) %s", title, id, direction)
	return nil
}
