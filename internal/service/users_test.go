package service_test

import (
	"errors"
	"testing"

	"gamevault/internal/models"
	"gamevault/internal/service"
)

func TestRegisterCreatesDefaultRole(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register(actor, "newplayer", "p@example.com", "longenough1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != models.RoleUser || user.Status != models.StatusActive {
		t.Fatalf("unexpected defaults: %+v", user)
	}
	if user.PasswordHash == "longenough1" || user.PasswordHash == "" {
		t.Fatal("password stored in the clear or not at all")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register(actor, "player", "a@example.com", "longenough1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Uniqueness is case-insensitive.
	_, err := svc.Register(actor, "PLAYER", "b@example.com", "longenough1")
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	// The bootstrap admin can log in.
	user, err := svc.Authenticate("admin", "swordfish-42")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %+v", user)
	}

	if _, err := svc.Authenticate("admin", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("wrong password accepted: %v", err)
	}
	if _, err := svc.Authenticate("ghost", "swordfish-42"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("unknown user accepted: %v", err)
	}
}

func TestBlockedUserCannotLogIn(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register(actor, "troll", "t@example.com", "longenough1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.SetUserStatus(actor, user.ID, models.StatusBlocked); err != nil {
		t.Fatalf("SetUserStatus: %v", err)
	}

	if _, err := svc.Authenticate("troll", "longenough1"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("blocked user logged in: %v", err)
	}
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register(actor, "editme", "e@example.com", "longenough1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user.Email = "edited@example.com"
	user.Role = models.RoleModerator
	user.Permissions = []string{"comments"}
	if _, err := svc.UpdateUser(actor, user.ID, user, ""); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	if _, err := svc.Authenticate("editme", "longenough1"); err != nil {
		t.Fatalf("old password no longer works after edit: %v", err)
	}

	updated, _ := svc.GetUser(user.ID)
	if updated.Email != "edited@example.com" || updated.Role != models.RoleModerator {
		t.Fatalf("edit not applied: %+v", updated)
	}
}

func TestPermissionChecks(t *testing.T) {
	admin := models.User{Role: models.RoleAdmin}
	if !admin.HasPermission("anything") {
		t.Fatal("admin denied a permission")
	}

	super := models.User{Role: models.RoleModerator, Permissions: []string{models.PermissionAll}}
	if !super.HasPermission("games") {
		t.Fatal(`"all" permission did not grant games`)
	}

	scoped := models.User{Role: models.RoleModerator, Permissions: []string{"comments"}}
	if !scoped.HasPermission("comments") || scoped.HasPermission("users") {
		t.Fatal("scoped permissions wrong")
	}
}

func TestListUsersFilters(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register(actor, "alice", "alice@example.com", "longenough1"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(actor, "bob", "bob@example.com", "longenough1"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	byRole, err := svc.ListUsers(service.UserQuery{Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(byRole) != 1 || byRole[0].Username != "admin" {
		t.Fatalf("role filter failed: %+v", byRole)
	}

	byText, _ := svc.ListUsers(service.UserQuery{Q: "ALICE"})
	if len(byText) != 1 || byText[0].Username != "alice" {
		t.Fatalf("text filter failed: %+v", byText)
	}
}
