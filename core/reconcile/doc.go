// Package reconcile provides the generic building blocks for merging an imported
// tree into live, persisted entities.
//
// # Architecture
//
//  1. Index / ScopedIndex: identity maps from entity id to live entity. Nested levels
//     use a ScopedIndex keyed by parent id, with scopes created lazily so that
//     children of a parent created in the same pass start from an empty scope.
//
//  2. Level: the per-kind reconciler. For one node it skips (invalid node), updates
//     (id present in the scope) or creates (no id, or unknown id), calls the
//     EntityStore, writes the result back into the index and bumps a Counter.
//
//  3. Cache: TTL cache with singleflight stampede protection, used for rendered
//     export documents.
//
// Levels never wrap or retry store errors: the first failure is returned as-is and
// the caller stops walking. Nothing is rolled back.
//
// # Usage Example
//
//	level := &reconcile.Level[Node, Fields, Model]{
//	    Kind:     "competency",
//	    Store:    stores.Competencies,
//	    Valid:    validNode,
//	    NodeID:   func(n *Node) string { return deref(n.ID) },
//	    Fields:   competencyFields,
//	    EntityID: func(m *Model) string { return m.ID },
//	}
//	entity, outcome, err := level.Apply(ctx, node, domainID, index, &summary.Competencies)
package reconcile
