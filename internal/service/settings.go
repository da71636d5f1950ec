package service

import (
	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

func (s *Service) GetSettings() (models.SiteSettings, error) {
	return s.settings.Load()
}

// UpdateSettings replaces the whole settings object. Like every other
// update, the submitted version must match the stored one.
func (s *Service) UpdateSettings(actor audit.Actor, settings models.SiteSettings) (models.SiteSettings, error) {
	if err := collection.Validate(map[string]bool{
		"site_name":     settings.SiteName != "",
		"contact_email": settings.ContactEmail != "",
	}); err != nil {
		return models.SiteSettings{}, err
	}

	var updated models.SiteSettings
	err := s.settings.Mutate(func(current models.SiteSettings) (models.SiteSettings, error) {
		if settings.Version != current.Version {
			return models.SiteSettings{}, collection.ErrConflict
		}
		settings.Version = current.Version + 1
		updated = settings
		return settings, nil
	})
	if err != nil {
		return models.SiteSettings{}, err
	}

	s.audit.Record(actor, "settings.update", "updated site settings")
	return updated, nil
}
