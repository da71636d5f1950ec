package models

// Default catalog data written on first startup when a collection key
// is absent (or when its stored value cannot be parsed).

func SeedGames() []Game {
	return []Game{
		{
			ID:            1,
			Title:         "Starfall Tactics",
			Description:   "Squad-based tactics in a collapsing solar system.",
			Categories:    []string{"strategy"},
			Rating:        4.6,
			Platform:      "pc",
			ImageURL:      "/images/games/starfall.jpg",
			TrendingScore: 87,
			DownloadURL:   "/downloads/starfall",
			Version:       1,
		},
		{
			ID:            2,
			Title:         "Neon Drift",
			Description:   "Arcade racer with a synthwave soundtrack.",
			Categories:    []string{"racing", "arcade"},
			Rating:        4.2,
			Platform:      "pc",
			ImageURL:      "/images/games/neondrift.jpg",
			TrendingScore: 73,
			DownloadURL:   "/downloads/neondrift",
			Version:       1,
		},
		{
			ID:            3,
			Title:         "Gloomharvest",
			Description:   "Cozy farming sim on a haunted moor.",
			Categories:    []string{"simulation"},
			Rating:        4.8,
			Platform:      "mobile",
			ImageURL:      "/images/games/gloomharvest.jpg",
			TrendingScore: 91,
			DownloadURL:   "/downloads/gloomharvest",
			Version:       1,
		},
	}
}

func SeedCategories() []Category {
	return []Category{
		{ID: "cat-strategy", Name: "Strategy", Slug: "strategy", Description: "Think before you click", Count: 1, Version: 1},
		{ID: "cat-racing", Name: "Racing", Slug: "racing", Description: "Fast things going fast", Count: 1, Version: 1},
		{ID: "cat-arcade", Name: "Arcade", Slug: "arcade", Description: "Quick sessions, high scores", Count: 1, Version: 1},
		{ID: "cat-simulation", Name: "Simulation", Slug: "simulation", Description: "Life, but configurable", Count: 1, Version: 1},
	}
}

func SeedCarouselItems() []CarouselItem {
	return []CarouselItem{
		{ID: 1, Title: "Gloomharvest launch week", ImageURL: "/images/carousel/gloomharvest.jpg", Link: "/games/3", Active: true, Order: 1, Version: 1},
		{ID: 2, Title: "Starfall Tactics season 2", ImageURL: "/images/carousel/starfall.jpg", Link: "/games/1", Active: true, Order: 2, Version: 1},
		{ID: 3, Title: "Neon Drift time trials", ImageURL: "/images/carousel/neondrift.jpg", Link: "/games/2", Active: false, Order: 3, Version: 1},
	}
}

func SeedSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:            "GameVault",
		Description:         "A curated game catalog",
		ContactEmail:        "support@gamevault.local",
		MaintenanceMode:     false,
		CommentsEnabled:     true,
		RegistrationEnabled: true,
		FeaturedGameID:      3,
		Version:             1,
	}
}

// Comments, announcements, contact requests and admin logs start empty.

func SeedComments() []Comment               { return []Comment{} }
func SeedAnnouncements() []Announcement     { return []Announcement{} }
func SeedContactRequests() []ContactRequest { return []ContactRequest{} }
func SeedLogEntries() []LogEntry            { return []LogEntry{} }
