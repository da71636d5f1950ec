package service

import (
	"sort"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

// GameQuery filters and orders the game list. Q matches title and
// description, Category matches any of a game's category slugs.
type GameQuery struct {
	Q        string
	Category string
	SortBy   string
}

func (s *Service) ListGames(query GameQuery) ([]models.Game, error) {
	games, err := s.games.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Game, 0, len(games))
	for _, g := range games {
		if query.Q != "" && !containsFold(g.Title, query.Q) && !containsFold(g.Description, query.Q) {
			continue
		}
		if query.Category != "" && !hasCategory(g, query.Category) {
			continue
		}
		filtered = append(filtered, g)
	}

	switch query.SortBy {
	case "title-desc":
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].Title > filtered[j].Title })
	case "rating-desc":
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case "trending-desc":
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].TrendingScore > filtered[j].TrendingScore })
	default: // title-asc
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].Title < filtered[j].Title })
	}

	return filtered, nil
}

func hasCategory(g models.Game, category string) bool {
	for _, c := range g.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *Service) GetGame(id int) (models.Game, error) {
	games, err := s.games.Load()
	if err != nil {
		return models.Game{}, err
	}
	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Game{}, collection.ErrNotFound
}

func (s *Service) CreateGame(actor audit.Actor, game models.Game) (models.Game, error) {
	if err := collection.Validate(map[string]bool{
		"title":  game.Title != "",
		"rating": game.Rating >= 0 && game.Rating <= 5,
	}); err != nil {
		return models.Game{}, err
	}

	if game.Categories == nil {
		game.Categories = []string{}
	}

	var created models.Game
	err := s.games.Mutate(func(games []models.Game) ([]models.Game, error) {
		id := 1
		for _, g := range games {
			if g.ID >= id {
				id = g.ID + 1
			}
		}
		game.ID = id
		game.Version = 1
		created = game
		return append(games, game), nil
	})
	if err != nil {
		return models.Game{}, err
	}

	s.audit.Recordf(actor, "games.create", "created game %q (id %d)", created.Title, created.ID)
	return created, nil
}

// UpdateGame replaces the stored record wholesale. The submitted
// version must match the stored one or the edit is rejected as stale.
func (s *Service) UpdateGame(actor audit.Actor, id int, game models.Game) (models.Game, error) {
	if err := collection.Validate(map[string]bool{
		"title":  game.Title != "",
		"rating": game.Rating >= 0 && game.Rating <= 5,
	}); err != nil {
		return models.Game{}, err
	}

	var updated models.Game
	err := s.games.Mutate(func(games []models.Game) ([]models.Game, error) {
		for i, g := range games {
			if g.ID != id {
				continue
			}
			if game.Version != g.Version {
				return nil, collection.ErrConflict
			}
			game.ID = id
			game.Version = g.Version + 1
			if game.Categories == nil {
				game.Categories = []string{}
			}
			games[i] = game
			updated = game
			return games, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.Game{}, err
	}

	s.audit.Recordf(actor, "games.update", "updated game %q (id %d)", updated.Title, updated.ID)
	return updated, nil
}

// DeleteGame removes the game. Comments referencing it are left in
// place; the catalog has never cascaded deletes.
func (s *Service) DeleteGame(actor audit.Actor, id int) error {
	var title string
	err := s.games.Mutate(func(games []models.Game) ([]models.Game, error) {
		kept := games[:0]
		found := false
		for _, g := range games {
			if g.ID == id {
				found = true
				title = g.Title
				continue
			}
			kept = append(kept, g)
		}
		if !found {
			return nil, collection.ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.audit.Recordf(actor, "games.delete", "deleted game %q (id %d)", title, id)
	return nil
}
