package service

import (
	"errors"
	"sort"
	"strings"

	"gamevault/internal/audit"
	"gamevault/internal/auth"
	"gamevault/internal/collection"
	"gamevault/internal/models"
)

var (
	// ErrUsernameTaken is returned when registration or admin create
	// collides with an existing username. Detection is a linear scan
	// over the collection, the only uniqueness check the catalog has.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrRegistrationDisabled is returned when sign-ups are switched
	// off in site settings.
	ErrRegistrationDisabled = errors.New("registration is disabled")

	// ErrInvalidCredentials covers unknown username, wrong password
	// and non-active accounts alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var validRoles = map[string]bool{
	models.RoleAdmin:     true,
	models.RoleModerator: true,
	models.RoleVIP:       true,
	models.RoleUser:      true,
}

var validStatuses = map[string]bool{
	models.StatusActive:  true,
	models.StatusPending: true,
	models.StatusBlocked: true,
}

type UserQuery struct {
	Q      string
	Role   string
	Status string
}

func (s *Service) ListUsers(query UserQuery) ([]models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if query.Q != "" && !containsFold(u.Username, query.Q) && !containsFold(u.Email, query.Q) {
			continue
		}
		if query.Role != "" && u.Role != query.Role {
			continue
		}
		if query.Status != "" && u.Status != query.Status {
			continue
		}
		filtered = append(filtered, u)
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })
	return filtered, nil
}

func (s *Service) GetUser(id int) (models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, collection.ErrNotFound
}

// Register creates an end-user account with the default role.
func (s *Service) Register(actor audit.Actor, username, email, password string) (models.User, error) {
	settings, err := s.settings.Load()
	if err != nil {
		return models.User{}, err
	}
	if !settings.RegistrationEnabled {
		return models.User{}, ErrRegistrationDisabled
	}

	if err := collection.Validate(map[string]bool{
		"username": username != "",
		"email":    email != "",
		"password": len(password) >= 8,
	}); err != nil {
		return models.User{}, err
	}

	return s.createUser(actor, "users.register", models.User{
		Username:    username,
		Email:       email,
		Role:        models.RoleUser,
		Status:      models.StatusActive,
		Permissions: []string{},
	}, password)
}

// CreateUser is the admin-side create with explicit role and status.
func (s *Service) CreateUser(actor audit.Actor, user models.User, password string) (models.User, error) {
	if err := collection.Validate(map[string]bool{
		"username": user.Username != "",
		"email":    user.Email != "",
		"password": len(password) >= 8,
		"role":     validRoles[user.Role],
		"status":   validStatuses[user.Status],
	}); err != nil {
		return models.User{}, err
	}

	return s.createUser(actor, "users.create", user, password)
}

func (s *Service) createUser(actor audit.Actor, action string, user models.User, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = hash
	if user.Permissions == nil {
		user.Permissions = []string{}
	}

	var created models.User
	err = s.users.Mutate(func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if strings.EqualFold(u.Username, user.Username) {
				return nil, ErrUsernameTaken
			}
		}

		user.ID = nextUserID(users)
		user.CreatedAt = s.now().UTC()
		user.Version = 1
		created = user
		return append(users, user), nil
	})
	if err != nil {
		return models.User{}, err
	}

	s.audit.Recordf(actor, action, "created user %q (id %d, role %s)", created.Username, created.ID, created.Role)
	return created, nil
}

// UpdateUser replaces the record wholesale, keeping the stored
// password hash unless the caller supplies a new password.
func (s *Service) UpdateUser(actor audit.Actor, id int, user models.User, newPassword string) (models.User, error) {
	if err := collection.Validate(map[string]bool{
		"username": user.Username != "",
		"email":    user.Email != "",
		"role":     validRoles[user.Role],
		"status":   validStatuses[user.Status],
	}); err != nil {
		return models.User{}, err
	}

	if newPassword != "" {
		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = hash
	}

	var updated models.User
	err := s.users.Mutate(func(users []models.User) ([]models.User, error) {
		for i, u := range users {
			if u.ID != id {
				continue
			}
			if user.Version != u.Version {
				return nil, collection.ErrConflict
			}
			user.ID = id
			user.Version = u.Version + 1
			if newPassword == "" {
				user.PasswordHash = u.PasswordHash
			}
			if user.Permissions == nil {
				user.Permissions = []string{}
			}
			if user.CreatedAt.IsZero() {
				user.CreatedAt = u.CreatedAt
			}
			users[i] = user
			updated = user
			return users, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.User{}, err
	}

	s.audit.Recordf(actor, "users.update", "updated user %q (id %d)", updated.Username, updated.ID)
	return updated, nil
}

func (s *Service) DeleteUser(actor audit.Actor, id int) error {
	var username string
	err := s.users.Mutate(func(users []models.User) ([]models.User, error) {
		kept := users[:0]
		found := false
		for _, u := range users {
			if u.ID == id {
				found = true
				username = u.Username
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return nil, collection.ErrNotFound
		}
		return kept, nil
	})
	if err != nil {
		return err
	}

	s.audit.Recordf(actor, "users.delete", "deleted user %q (id %d)", username, id)
	return nil
}

// SetUserStatus moves an account between active, pending and blocked.
func (s *Service) SetUserStatus(actor audit.Actor, id int, status string) (models.User, error) {
	if !validStatuses[status] {
		return models.User{}, &collection.ValidationError{Fields: []string{"status"}}
	}

	var updated models.User
	err := s.users.Mutate(func(users []models.User) ([]models.User, error) {
		for i, u := range users {
			if u.ID != id {
				continue
			}
			users[i].Status = status
			users[i].Version = u.Version + 1
			updated = users[i]
			return users, nil
		}
		return nil, collection.ErrNotFound
	})
	if err != nil {
		return models.User{}, err
	}

	s.audit.Recordf(actor, "users.status", "set user %q (id %d) status to %s", updated.Username, updated.ID, status)
	return updated, nil
}

// Authenticate verifies a username/password pair. Only active
// accounts may log in; the error never reveals which check failed.
func (s *Service) Authenticate(username, password string) (models.User, error) {
	users, err := s.users.Load()
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if !strings.EqualFold(u.Username, username) {
			continue
		}
		if u.Status != models.StatusActive {
			return models.User{}, ErrInvalidCredentials
		}
		if !auth.CheckPassword(u.PasswordHash, password) {
			return models.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}
