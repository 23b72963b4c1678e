package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entity names carried by EntityEvent.
const (
	EntityPerson     = "person"
	EntityTrainer    = "trainer"
	EntityGym        = "gym"
	EntityMembership = "membership"
)

// Action describes what happened to an entity.
type Action string

// Entity actions
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// EntityEvent records a change to a persisted entity. Services emit it after
// the change has been committed, so handlers can keep derived state such as
// caches in line with the store.
type EntityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Entity names the kind of entity that changed
	Entity string `json:"entity"`

	Action   Action `json:"action"`
	EntityID int64  `json:"entity_id"`

	// OccurredAt is the timestamp when the change was committed
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEntityEvent creates an EntityEvent stamped with a fresh ID and the current time.
func NewEntityEvent(entity string, action Action, entityID int64) *EntityEvent {
	return &EntityEvent{
		ID:         uuid.New(),
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// Is reports whether the event matches entity and action.
func (e *EntityEvent) Is(entity string, action Action) bool {
	return e.Entity == entity && e.Action == action
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *EntityEvent) error
}

// HandlerFunc adapts a function to the EventHandler interface.
type HandlerFunc func(ctx context.Context, event *EntityEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *EntityEvent) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *EntityEvent) error
}
