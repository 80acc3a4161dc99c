package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached to an argument, optionally threaded via ParentID.
// Comments are never re-parented after creation, so the parent chain cannot
// form a cycle as long as creation validates the parent (same argument, live).
type Comment struct {
	ID         uuid.UUID
	ArgumentID uuid.UUID
	ParentID   *uuid.UUID
	Body       string
	CreatedBy  uuid.UUID
	IsRemoved  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
