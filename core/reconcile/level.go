package reconcile

import "context"

// Level reconciles nodes of one kind against an identity index.
//
// N is the imported node type, F the field set handed to the store and M the
// persisted model. The same Level is reused for every node of its kind within
// an import; all per-import state lives in the Index and Counter passed to Apply.
type Level[N any, F any, M any] struct {
	// Kind names the level in logs (e.g. "competency").
	Kind string

	// Store persists the entities of this level.
	Store EntityStore[F, M]

	// Valid reports whether the node carries its required fields.
	// Invalid nodes are skipped without a store call.
	Valid func(node *N) bool

	// NodeID returns the id claimed by the node, or "" if none.
	NodeID func(node *N) string

	// Fields builds the store field set. parentID is the resolved parent id;
	// it is ignored by stores on update.
	Fields func(node *N, parentID string) F

	// EntityID returns the persisted id of an entity returned by the store.
	EntityID func(entity *M) string
}

// Apply decides create vs. update for node, performs the store call and
// records the result in idx and counter.
//
// A node whose id is present in idx is updated; a node without id, or with an
// id absent from idx, is created. Store errors are returned unmodified.
func (l *Level[N, F, M]) Apply(ctx context.Context, node *N, parentID string, idx Index[*M], counter *Counter) (*M, Outcome, error) {
	if l.Valid != nil && !l.Valid(node) {
		return nil, OutcomeSkipped, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, OutcomeSkipped, err
	}

	fields := l.Fields(node, parentID)

	if id := l.NodeID(node); idx.Has(id) {
		entity, err := l.Store.Update(ctx, id, fields)
		if err != nil {
			return nil, OutcomeSkipped, err
		}
		idx[id] = entity
		counter.Updated++
		return entity, OutcomeUpdated, nil
	}

	entity, err := l.Store.Create(ctx, fields)
	if err != nil {
		return nil, OutcomeSkipped, err
	}
	idx[l.EntityID(entity)] = entity
	counter.Created++
	return entity, OutcomeCreated, nil
}
