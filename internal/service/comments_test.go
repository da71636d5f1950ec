package service_test

import (
	"errors"
	"testing"

	"gamevault/internal/models"
	"gamevault/internal/service"
)

func TestSubmittedCommentHiddenUntilApproved(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.SubmitComment(actor, models.Comment{
		GameID:   1,
		Username: "a",
		Content:  "x",
		Rating:   5,
		Approved: true, // submitters cannot pre-approve themselves
	})
	if err != nil {
		t.Fatalf("SubmitComment: %v", err)
	}
	if created.Approved {
		t.Fatal("user-submitted comment started approved")
	}

	public, err := svc.ApprovedComments(1)
	if err != nil {
		t.Fatalf("ApprovedComments: %v", err)
	}
	if len(public) != 0 {
		t.Fatalf("unapproved comment visible in public view: %+v", public)
	}

	if _, err := svc.ToggleCommentApproval(actor, created.ID); err != nil {
		t.Fatalf("ToggleCommentApproval: %v", err)
	}

	public, _ = svc.ApprovedComments(1)
	if len(public) != 1 || public[0].ID != created.ID {
		t.Fatalf("approved comment missing from public view: %+v", public)
	}
}

func TestToggleApprovalTwiceRestoresState(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.SubmitComment(actor, models.Comment{GameID: 1, Username: "a", Content: "x", Rating: 4})
	if err != nil {
		t.Fatalf("SubmitComment: %v", err)
	}

	once, err := svc.ToggleCommentApproval(actor, created.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !once.Approved {
		t.Fatal("first toggle did not approve")
	}

	twice, err := svc.ToggleCommentApproval(actor, created.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.Approved != created.Approved {
		t.Fatalf("double toggle did not restore original state: %+v", twice)
	}
}

func TestSubmitCommentValidatesRating(t *testing.T) {
	svc, _ := newTestService(t)

	for _, rating := range []int{0, 6, -1} {
		if _, err := svc.SubmitComment(actor, models.Comment{GameID: 1, Username: "a", Content: "x", Rating: rating}); err == nil {
			t.Fatalf("rating %d accepted", rating)
		}
	}
}

func TestSubmitCommentRespectsSettings(t *testing.T) {
	svc, _ := newTestService(t)

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	settings.CommentsEnabled = false
	if _, err := svc.UpdateSettings(actor, settings); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	_, err = svc.SubmitComment(actor, models.Comment{GameID: 1, Username: "a", Content: "x", Rating: 3})
	if !errors.Is(err, service.ErrCommentsDisabled) {
		t.Fatalf("expected ErrCommentsDisabled, got %v", err)
	}
}

func TestDeleteGameLeavesCommentsBehind(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.SubmitComment(actor, models.Comment{GameID: 2, Username: "a", Content: "x", Rating: 3})
	if err != nil {
		t.Fatalf("SubmitComment: %v", err)
	}
	if err := svc.DeleteGame(actor, 2); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}

	// No cascade: the comment survives its game.
	comments, err := svc.ListComments(service.CommentQuery{GameID: 2})
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != created.ID {
		t.Fatalf("comment did not survive game deletion: %+v", comments)
	}
}
