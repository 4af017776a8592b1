package models

import (
	"errors"
	"fmt"
)

// Status is the closed set of post lifecycle states. Transitions go through
// Next; writing a Status outside the table is a programming error.
type Status string

const (
	StatusIdea       Status = "idea"
	StatusGenerating Status = "generating"
	StatusDrafted    Status = "drafted"
	StatusSaved      Status = "saved"
	StatusApproved   Status = "approved"
	StatusPublished  Status = "published"
	StatusTrash      Status = "trash"
)

var AllStatuses = []Status{
	StatusIdea, StatusGenerating, StatusDrafted, StatusSaved,
	StatusApproved, StatusPublished, StatusTrash,
}

func (s Status) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Event is a lifecycle trigger applied to a post's current status.
type Event string

const (
	EventGenerate  Event = "generate"  // claim for generation
	EventGenerated Event = "generated" // generation finished, content persisted
	EventReclaim   Event = "reclaim"   // stale generating post reverted
	EventApprove   Event = "approve"
	EventSave      Event = "save" // save for later
	EventRestore   Event = "restore"
	EventTrash     Event = "trash"
	EventPublish   Event = "publish"
	EventUnpublish Event = "unpublish"
)

var (
	// ErrTransitionNotAllowed is returned when an event does not apply to the
	// post's current status. The post is left unchanged.
	ErrTransitionNotAllowed = errors.New("transition not allowed")

	// ErrNoContent rejects publishing a post that has never been generated.
	ErrNoContent = errors.New("post has no generated content")
)

type transitionKey struct {
	From  Status
	Event Event
}

// transitions holds every fixed-target transition. Restore and unpublish are
// absent on purpose: their target depends on whether content exists and is
// resolved through RestoreTarget.
var transitions = map[transitionKey]Status{
	{StatusIdea, EventGenerate}:     StatusGenerating,
	{StatusApproved, EventGenerate}: StatusGenerating,

	{StatusGenerating, EventGenerated}: StatusDrafted,
	{StatusGenerating, EventReclaim}:   StatusIdea,

	{StatusDrafted, EventApprove}: StatusApproved,

	{StatusIdea, EventSave}:     StatusSaved,
	{StatusDrafted, EventSave}:  StatusSaved,
	{StatusApproved, EventSave}: StatusSaved,

	{StatusDrafted, EventPublish}:  StatusPublished,
	{StatusApproved, EventPublish}: StatusPublished,

	{StatusIdea, EventTrash}:       StatusTrash,
	{StatusGenerating, EventTrash}: StatusTrash,
	{StatusDrafted, EventTrash}:    StatusTrash,
	{StatusSaved, EventTrash}:      StatusTrash,
	{StatusApproved, EventTrash}:   StatusTrash,
	{StatusPublished, EventTrash}:  StatusTrash,
}

// RestoreTarget picks the state a post returns to when restored from
// saved/trash or unpublished: drafted when generated content already exists,
// idea otherwise.
func RestoreTarget(hasContent bool) Status {
	if hasContent {
		return StatusDrafted
	}
	return StatusIdea
}

// Next resolves (current status, event) to the next status. hasContent feeds
// the publish guard and the smart-restore rule. On rejection the returned
// status equals cur and the error explains why.
func Next(cur Status, ev Event, hasContent bool) (Status, error) {
	switch ev {
	case EventRestore:
		if cur != StatusSaved && cur != StatusTrash {
			return cur, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, cur, ev)
		}
		return RestoreTarget(hasContent), nil
	case EventUnpublish:
		if cur != StatusPublished {
			return cur, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, cur, ev)
		}
		return RestoreTarget(hasContent), nil
	case EventPublish:
		next, ok := transitions[transitionKey{cur, ev}]
		if !ok {
			return cur, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, cur, ev)
		}
		if !hasContent {
			return cur, ErrNoContent
		}
		return next, nil
	}

	next, ok := transitions[transitionKey{cur, ev}]
	if !ok {
		return cur, fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, cur, ev)
	}
	return next, nil
}
