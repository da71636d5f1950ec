package service

import (
	"sort"

	"github.com/google/uuid"

	"gamevault/internal/audit"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

// contactTransitions lists the allowed status moves for a contact
// request. Closed is terminal.
var contactTransitions = map[string][]string{
	models.ContactPending:    {models.ContactProcessing, models.ContactResolved, models.ContactClosed},
	models.ContactProcessing: {models.ContactResolved, models.ContactClosed},
	models.ContactResolved:   {models.ContactClosed},
	models.ContactClosed:     {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range contactTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ContactQuery struct {
	Q      string
	Status string
}

func (s *Service) ListContactRequests(query ContactQuery) ([]models.ContactRequest, error) {
	requests, err := s.contacts.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.ContactRequest, 0, len(requests))
	for _, r := range requests {
		if query.Q != "" && !containsFold(r.Name, query.Q) && !containsFold(r.Email, query.Q) {
			continue
		}
		if query.Status != "" && r.Status != query.Status {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	return filtered, nil
}

// SubmitContactRequest creates a visitor support request.
func (s *Service) SubmitContactRequest(actor audit.Actor, name, email, message string) (models.ContactRequest, error) {
	if err := collection.Validate(map[string]bool{
		"name":    name != "",
		"email":   email != "",
		"message": message != "",
	}); err != nil {
		return models.ContactRequest{}, err
	}

	request := models.ContactRequest{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    models.ContactPending,
		Responses: []models.ContactResponse{},
		CreatedAt: s.now().UTC(),
		Version:   1,
	}

	err := s.contacts.Mutate(func(requests []models.ContactRequest) ([]models.ContactRequest, error) {
		return append(requests, request), nil
	})
	if err != nil {
		return models.ContactRequest{}, err
	}

	s.audit.Recordf(actor, "contacts.submit", "contact request %s from %q", request.ID, request.Name)
	return request, nil
}

// SetContactStatus moves a request along the support workflow.
// Illegal transitions (for example reopening a closed request) are
// rejected.
func (s *Service) SetContactStatus(actor audit.Actor, id, status string) (models.ContactRequest, error) {
	var updated models.ContactRequest
	err := s.contacts.Mutate(func(requests []models.ContactRequest) ([]models.ContactRequest, error) {
		for i, r := range requests {
			if r.ID != id {
				continue
			}
			if !transitionAllowed(r.Status, status) {
				return nil, &collection.ValidationError{Fields: []string{"status"}}
			}
			requests[i].Status = status
			requests[i].Version = r.Version + 1
			updated = requests[i]
			return requests, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.ContactRequest{}, err
	}

	s.audit.Recordf(actor, "contacts.status", "contact request %s moved to %s", updated.ID, updated.Status)
	return updated, nil
}

// RespondToContactRequest appends an admin response. A pending
// request moves to processing on first response.
func (s *Service) RespondToContactRequest(actor audit.Actor, id, message string) (models.ContactRequest, error) {
	if message == "" {
		return models.ContactRequest{}, &collection.ValidationError{Fields: []string{"message"}}
	}

	var updated models.ContactRequest
	err := s.contacts.Mutate(func(requests []models.ContactRequest) ([]models.ContactRequest, error) {
		for i, r := range requests {
			if r.ID != id {
				continue
			}
			if r.Status == models.ContactClosed {
				return nil, &collection.ValidationError{Fields: []string{"status"}}
			}
			requests[i].Responses = append(requests[i].Responses, models.ContactResponse{
				Author:    actor.Username,
				Message:   message,
				CreatedAt: s.now().UTC(),
			})
			if r.Status == models.ContactPending {
				requests[i].Status = models.ContactProcessing
			}
			requests[i].Version = r.Version + 1
			updated = requests[i]
			return requests, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.ContactRequest{}, err
	}

	s.audit.Recordf(actor, "contacts.respond", "responded to contact request %s", updated.ID)
	return updated, nil
}
