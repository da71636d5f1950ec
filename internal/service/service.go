// Package service implements the per-entity admin controllers: list
// with filter and sort, create with id assignment and defaults,
// wholesale update guarded by a version token, delete, reorder and
// boolean toggles. Every mutation appends exactly one audit entry.
package service

import (
	"errors"
	"strings"
	"time"

	"gamevault/internal/audit"
	"gamevault/internal/auth"
	"gamevault/internal/collection"
	"gamevault/internal/models"
	"gamevault/internal/storage"
)

// errNoChange signals a mutation callback that resolved to a no-op,
// such as reordering past a boundary. Nothing is written or audited.
var errNoChange = errors.New("no change")

type Service struct {
	games         *collection.Store[models.Game]
	categories    *collection.Store[models.Category]
	comments      *collection.Store[models.Comment]
	users         *collection.Store[models.User]
	announcements *collection.Store[models.Announcement]
	carousel      *collection.Store[models.CarouselItem]
	contacts      *collection.Store[models.ContactRequest]
	settings      *collection.Singleton[models.SiteSettings]

	audit *audit.Sink
	now   func() time.Time
}

func New(port storage.Port, notifier collection.Notifier, sink *audit.Sink) *Service {
	return &Service{
		games:         collection.NewStore(port, models.KeyGames, models.SeedGames, notifier),
		categories:    collection.NewStore(port, models.KeyCategories, models.SeedCategories, notifier),
		comments:      collection.NewStore(port, models.KeyComments, models.SeedComments, notifier),
		users:         collection.NewStore(port, models.KeyUsers, func() []models.User { return []models.User{} }, notifier),
		announcements: collection.NewStore(port, models.KeyAnnouncements, models.SeedAnnouncements, notifier),
		carousel:      collection.NewStore(port, models.KeyCarouselItems, models.SeedCarouselItems, notifier),
		contacts:      collection.NewStore(port, models.KeyContactRequests, models.SeedContactRequests, notifier),
		settings:      collection.NewSingleton(port, models.KeySiteSettings, models.SeedSiteSettings, notifier),
		audit:         sink,
		now:           time.Now,
	}
}

// Bootstrap seeds every collection that is missing or corrupt, then
// makes sure an admin account exists. Seeding happens here, once at
// startup, never lazily on read.
func (s *Service) Bootstrap(adminUsername, adminEmail, adminPassword string) error {
	stores := []interface{ Bootstrap() error }{
		s.games, s.categories, s.comments, s.users,
		s.announcements, s.carousel, s.contacts, s.settings,
	}
	for _, store := range stores {
		if err := store.Bootstrap(); err != nil {
			return err
		}
	}

	return s.ensureAdmin(adminUsername, adminEmail, adminPassword)
}

func (s *Service) ensureAdmin(username, email, password string) error {
	err := s.users.Mutate(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Role == models.RoleAdmin {
				return nil, errNoChange
			}
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}

		admin := models.User{
			ID:           nextUserID(users),
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Status:       models.StatusActive,
			Permissions:  []string{models.PermissionAll},
			CreatedAt:    s.now().UTC(),
			Version:      1,
		}
		return append(users, admin), nil
	})
	return ignoreNoChange(err)
}

// containsFold reports a case-insensitive substring match.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func nextUserID(users []models.User) int {
	id := 1
	for _, u := range users {
		if u.ID >= id {
			id = u.ID + 1
		}
	}
	return id
}

// ignoreNoChange converts the internal no-op signal into success.
func ignoreNoChange(err error) error {
	if errors.Is(err, errNoChange) {
		return nil
	}
	return err
}

func validRating(r int) bool { return r >= 1 && r <= 5 }
