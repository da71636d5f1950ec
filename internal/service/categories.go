package service

import (
	"sort"

	"github.com/google/uuid"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

func (s *Service) ListCategories(q string) ([]models.Category, error) {
	categories, err := s.categories.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if q != "" && !containsFold(c.Name, q) && !containsFold(c.Slug, q) {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	return filtered, nil
}

// CreateCategory accepts duplicate slugs: the catalog has never
// enforced slug uniqueness and screens key off the id.
func (s *Service) CreateCategory(actor audit.Actor, category models.Category) (models.Category, error) {
	if err := collection.Validate(map[string]bool{
		"name": category.Name != "",
		"slug": category.Slug != "",
	}); err != nil {
		return models.Category{}, err
	}

	category.ID = uuid.NewString()
	category.Version = 1

	err := s.categories.Mutate(func(categories []models.Category) ([]models.Category, error) {
		return append(categories, category), nil
	})
	if err != nil {
		return models.Category{}, err
	}

	s.audit.Recordf(actor, "categories.create", "created category %q (%s)", category.Name, category.ID)
	return category, nil
}

func (s *Service) UpdateCategory(actor audit.Actor, id string, category models.Category) (models.Category, error) {
	if err := collection.Validate(map[string]bool{
		"name": category.Name != "",
		"slug": category.Slug != "",
	}); err != nil {
		return models.Category{}, err
	}

	var updated models.Category
	err := s.categories.Mutate(func(categories []models.Category) ([]models.Category, error) {
		for i, c := range categories {
			if c.ID != id {
				continue
			}
			if category.Version != c.Version {
				return nil, collection.ErrConflict
			}
			category.ID = id
			category.Version = c.Version + 1
			categories[i] = category
			updated = category
			return categories, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.Category{}, err
	}

	s.audit.Recordf(actor, "categories.update", "updated category %q (%s)", updated.Name, updated.ID)
	return updated, nil
}

// DeleteCategory does not touch games that reference the category.
func (s *Service) DeleteCategory(actor audit.Actor, id string) error {
	var name string
	err := s.categories.Mutate(func(categories []models.Category) ([]models.Category, error) {
		kept := categories[:0]
		found := false
		for _, c := range categories {
			if c.ID == id {
				found = true
				name = c.Name
				continue
			}
			kept = append(kept, c)
		}
		if !found {
			return nil, collection.ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.audit.Recordf(actor, "categories.delete", "deleted category %q (%s)", name, id)
	return nil
}
