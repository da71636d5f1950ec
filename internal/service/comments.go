package service

import (
	"errors"
	"sort"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

// ErrCommentsDisabled is returned when comment submission is switched
// off in site settings.
var ErrCommentsDisabled = errors.New("comments are disabled")

// CommentQuery filters the admin comment list. Status is "approved",
// "pending" or empty for all; GameID of 0 means any game.
type CommentQuery struct {
	Q      string
	Status string
	GameID int
}

func (s *Service) ListComments(query CommentQuery) ([]models.Comment, error) {
	comments, err := s.comments.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if query.Q != "" && !containsFold(c.Username, query.Q) && !containsFold(c.Content, query.Q) {
			continue
		}
		if query.Status == "approved" && !c.Approved {
			continue
		}
		if query.Status == "pending" && c.Approved {
			continue
		}
		if query.GameID != 0 && c.GameID != query.GameID {
			continue
		}
		filtered = append(filtered, c)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	return filtered, nil
}

// ApprovedComments is the public view: only approved comments for the
// game, newest first.
func (s *Service) ApprovedComments(gameID int) ([]models.Comment, error) {
	return s.ListComments(CommentQuery{Status: "approved", GameID: gameID})
}

// SubmitComment creates an end-user comment. Submissions always start
// unapproved and stay invisible to the public view until moderated.
func (s *Service) SubmitComment(actor audit.Actor, comment models.Comment) (models.Comment, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return models.Comment{}, err
	}
	if !settings.CommentsEnabled {
		return models.Comment{}, ErrCommentsDisabled
	}

	if err := collection.Validate(map[string]bool{
		"game_id":  comment.GameID > 0,
		"username": comment.Username != "",
		"content":  comment.Content != "",
		"rating":   validRating(comment.Rating),
	}); err != nil {
		return models.Comment{}, err
	}

	var created models.Comment
	err = s.comments.Mutate(func(comments []models.Comment) ([]models.Comment, error) {
		id := 1
		for _, c := range comments {
			if c.ID >= id {
				id = c.ID + 1
			}
		}
		comment.ID = id
		comment.Approved = false
		comment.CreatedAt = s.now().UTC()
		comment.Version = 1
		created = comment
		return append(comments, comment), nil
	})
	if err != nil {
		return models.Comment{}, err
	}

	s.audit.Recordf(actor, "comments.submit", "comment %d submitted on game %d by %q", created.ID, created.GameID, created.Username)
	return created, nil
}

// ToggleCommentApproval flips the approved flag and returns the new
// record. Toggling twice restores the original state.
func (s *Service) ToggleCommentApproval(actor audit.Actor, id int) (models.Comment, error) {
	var toggled models.Comment
	err := s.comments.Mutate(func(comments []models.Comment) ([]models.Comment, error) {
		for i, c := range comments {
			if c.ID != id {
				continue
			}
			comments[i].Approved = !c.Approved
			comments[i].Version = c.Version + 1
			toggled = comments[i]
			return comments, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.Comment{}, err
	}

	state := "unapproved"
	if toggled.Approved {
		state = "approved"
	}
	s.audit.Recordf(actor, "comments.moderate", "%s comment %d on game %d", state, toggled.ID, toggled.GameID)
	return toggled, nil
}

func (s *Service) DeleteComment(actor audit.Actor, id int) error {
	var gameID int
	err := s.comments.Mutate(func(comments []models.Comment) ([]models.Comment, error) {
		kept := comments[:0]
		found := false
		for _, c := range comments {
			if c.ID == id {
				found = true
				gameID = c.GameID
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

	s.audit.Recordf(actor, "comments.delete", "deleted comment %d on game %d", id, gameID)
	return nil
}
