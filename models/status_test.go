package models

import (
	"errors"
	"testing"
)

func TestClaimTransitions(t *testing.T) {
	for _, from := range []Status{StatusIdea, StatusApproved} {
		next, err := Next(from, EventGenerate, false)
		if err != nil {
			t.Fatalf("expected %s -> generating, got error: %v", from, err)
		}
		if next != StatusGenerating {
			t.Fatalf("expected generating, got %s", next)
		}
	}

	for _, from := range []Status{StatusGenerating, StatusDrafted, StatusSaved, StatusPublished, StatusTrash} {
		if _, err := Next(from, EventGenerate, false); !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected generate from %s to be rejected, got %v", from, err)
		}
	}
}

func TestPublishGuard(t *testing.T) {
	// No content: rejected with ErrNoContent, state unchanged.
	next, err := Next(StatusDrafted, EventPublish, false)
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
	if next != StatusDrafted {
		t.Fatalf("expected state unchanged on rejection, got %s", next)
	}

	// With content: allowed from drafted and approved.
	for _, from := range []Status{StatusDrafted, StatusApproved} {
		next, err := Next(from, EventPublish, true)
		if err != nil {
			t.Fatalf("unexpected error publishing from %s: %v", from, err)
		}
		if next != StatusPublished {
			t.Fatalf("expected published, got %s", next)
		}
	}

	// Never from idea, even with content.
	if _, err := Next(StatusIdea, EventPublish, true); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected publish from idea to be rejected, got %v", err)
	}
}

func TestSmartRestore(t *testing.T) {
	cases := []struct {
		from       Status
		hasContent bool
		want       Status
	}{
		{StatusSaved, true, StatusDrafted},
		{StatusSaved, false, StatusIdea},
		{StatusTrash, true, StatusDrafted},
		{StatusTrash, false, StatusIdea},
	}
	for _, tc := range cases {
		next, err := Next(tc.from, EventRestore, tc.hasContent)
		if err != nil {
			t.Fatalf("restore from %s (content=%v): unexpected error %v", tc.from, tc.hasContent, err)
		}
		if next != tc.want {
			t.Fatalf("restore from %s (content=%v): expected %s, got %s", tc.from, tc.hasContent, tc.want, next)
		}
	}

	if _, err := Next(StatusDrafted, EventRestore, true); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected restore from drafted to be rejected, got %v", err)
	}
}

func TestUnpublishUsesSmartRestore(t *testing.T) {
	next, err := Next(StatusPublished, EventUnpublish, true)
	if err != nil || next != StatusDrafted {
		t.Fatalf("expected published -> drafted, got %s / %v", next, err)
	}
	next, err = Next(StatusPublished, EventUnpublish, false)
	if err != nil || next != StatusIdea {
		t.Fatalf("expected published -> idea, got %s / %v", next, err)
	}
	if _, err := Next(StatusDrafted, EventUnpublish, true); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected unpublish from drafted to be rejected, got %v", err)
	}
}

func TestTrashAllowedFromAnyNonTrashState(t *testing.T) {
	for _, from := range []Status{StatusIdea, StatusGenerating, StatusDrafted, StatusSaved, StatusApproved, StatusPublished} {
		next, err := Next(from, EventTrash, false)
		if err != nil || next != StatusTrash {
			t.Fatalf("expected %s -> trash, got %s / %v", from, next, err)
		}
	}
	if _, err := Next(StatusTrash, EventTrash, false); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("expected trash from trash to be rejected, got %v", err)
	}
}

func TestSaveForLaterTransitions(t *testing.T) {
	for _, from := range []Status{StatusIdea, StatusDrafted, StatusApproved} {
		next, err := Next(from, EventSave, false)
		if err != nil || next != StatusSaved {
			t.Fatalf("expected %s -> saved, got %s / %v", from, next, err)
		}
	}
	for _, from := range []Status{StatusSaved, StatusTrash, StatusPublished, StatusGenerating} {
		if _, err := Next(from, EventSave, false); !errors.Is(err, ErrTransitionNotAllowed) {
			t.Fatalf("expected save from %s to be rejected, got %v", from, err)
		}
	}
}

func TestReclaimAndGeneratedTransitions(t *testing.T) {
	next, err := Next(StatusGenerating, EventReclaim, false)
	if err != nil || next != StatusIdea {
		t.Fatalf("expected generating -> idea on reclaim, got %s / %v", next, err)
	}
	next, err = Next(StatusGenerating, EventGenerated, true)
	if err != nil || next != StatusDrafted {
		t.Fatalf("expected generating -> drafted, got %s / %v", next, err)
	}
}
