package service

import "gamevault/internal/models"

// Stats computes the dashboard counters from the live collections.
func (s *Service) Stats() (models.Stats, error) {
	var stats models.Stats

	games, err := s.games.Load()
	if err != nil {
		return stats, err
	}
	categories, err := s.categories.Load()
	if err != nil {
		return stats, err
	}
	users, err := s.users.Load()
	if err != nil {
		return stats, err
	}
	comments, err := s.comments.Load()
	if err != nil {
		return stats, err
	}
	requests, err := s.contacts.Load()
	if err != nil {
		return stats, err
	}
	logCount, err := s.audit.Count()
	if err != nil {
		return stats, err
	}

	stats.Games = len(games)
	stats.Categories = len(categories)
	stats.Users = len(users)
	stats.Comments = len(comments)
	stats.LogEntries = logCount

	for _, c := range comments {
		if !c.Approved {
			stats.PendingComments++
		}
	}
	for _, r := range requests {
		if r.Status == models.ContactPending || r.Status == models.ContactProcessing {
			stats.OpenRequests++
		}
	}

	return stats, nil
}
