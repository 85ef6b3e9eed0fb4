// Package session tracks in-flight pointer gestures for the HTTP API.
//
// A Session captures the immutable start of one gesture (grid config, dragged
// item, pointer-down anchors) plus the layout as of the last resolved step.
// Sessions are short-lived by construction: every session carries an expiry,
// stores drop expired sessions on read, and the Mongo backend additionally
// lets the server reap them with a TTL index. Nothing here persists a user's
// layout beyond the gesture itself.
//
// # Backends
//
//   - memory: in-process map for single-instance servers and tests
//   - mongo: shared store for multi-instance deployments
//
// # Usage
//
//	sess := session.New(cfg, "item-3", gesture.KindDrag, down, session.DefaultTTL)
//	store.Put(ctx, sess)
//
//	sess, err := store.Get(ctx, id)
//	if errors.Is(err, session.ErrNotFound) {
//	    // gone or expired
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
)

// DefaultTTL is how long an idle gesture survives before the store drops it.
// A pointer gesture lives seconds; minutes of silence mean the client is gone.
const DefaultTTL = 5 * time.Minute

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist or has expired.
	ErrNotFound = errors.New("session not found")
)

// Session is the server-side state of one in-flight gesture.
type Session struct {
	ID        string           `json:"id" bson:"_id"`
	Config    grid.Config      `json:"config" bson:"config"`
	ItemID    string           `json:"item_id" bson:"item_id"`
	Kind      string           `json:"kind" bson:"kind"` // gesture.KindDrag or gesture.KindResize
	Origin    gesture.Dragging `json:"origin" bson:"origin"`
	Layout    grid.Layout      `json:"layout" bson:"layout"` // layout as of the last step
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time        `json:"expires_at" bson:"expires_at"`
}

// New creates a session for a gesture starting now. The session's working
// layout begins as the config's layout.
func New(cfg grid.Config, itemID, kind string, origin gesture.Dragging, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Config:    cfg,
		ItemID:    itemID,
		Kind:      kind,
		Origin:    origin,
		Layout:    cfg.Layout.Clone(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch extends the session's expiry by ttl from now. Called on every
// resolved step so active gestures never expire mid-drag.
func (s *Session) Touch(ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.ExpiresAt = time.Now().UTC().Add(ttl)
}

// Store is the storage interface for gesture sessions.
type Store interface {
	// Get retrieves a session by ID. Expired sessions are ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// Put stores or replaces a session.
	Put(ctx context.Context, s *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
