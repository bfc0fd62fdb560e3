package reconcile

import "context"

// EntityStore is the persistence contract consumed by a Level.
// F is the field set written for the entity, M the persisted model.
type EntityStore[F any, M any] interface {
	// Create persists a new entity and returns it with its assigned id.
	Create(ctx context.Context, fields F) (*M, error)

	// Update writes fields onto the entity identified by id and returns the result.
	Update(ctx context.Context, id string, fields F) (*M, error)
}

// Counter tallies the writes applied at one level.
type Counter struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// Total returns the number of writes counted.
func (c Counter) Total() int {
	return c.Created + c.Updated
}

// Outcome describes what a Level did with one node.
type Outcome string

const (
	// OutcomeSkipped means the node was invalid and nothing was written.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeCreated means a new entity was created.
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated means an existing entity was updated.
	OutcomeUpdated Outcome = "updated"
)
