package reconcile

// Index maps entity ids to live entities for one reconciliation scope.
type Index[E any] map[string]E

// BuildIndex indexes items by the id returned from key. Items with an empty id are ignored.
func BuildIndex[T any, E any](items []T, key func(*T) string, pick func(*T) E) Index[E] {
	idx := make(Index[E], len(items))
	for i := range items {
		id := key(&items[i])
		if id == "" {
			continue
		}
		idx[id] = pick(&items[i])
	}
	return idx
}

// Has reports whether id is present.
func (idx Index[E]) Has(id string) bool {
	if id == "" {
		return false
	}
	_, ok := idx[id]
	return ok
}

// ScopedIndex holds one Index per parent id.
// Ids are only unique within their parent's scope.
type ScopedIndex[E any] struct {
	scopes map[string]Index[E]
}

// NewScopedIndex creates an empty ScopedIndex.
func NewScopedIndex[E any]() *ScopedIndex[E] {
	return &ScopedIndex[E]{scopes: make(map[string]Index[E])}
}

// Scope returns the index for parentID, creating an empty one on first access.
// Parents created during the current pass therefore start with an empty scope.
func (s *ScopedIndex[E]) Scope(parentID string) Index[E] {
	idx, ok := s.scopes[parentID]
	if !ok {
		idx = make(Index[E])
		s.scopes[parentID] = idx
	}
	return idx
}

// Put replaces the whole scope of parentID.
func (s *ScopedIndex[E]) Put(parentID string, idx Index[E]) {
	if idx == nil {
		idx = make(Index[E])
	}
	s.scopes[parentID] = idx
}

// Known reports whether a scope exists for parentID without creating one.
func (s *ScopedIndex[E]) Known(parentID string) bool {
	_, ok := s.scopes[parentID]
	return ok
}

// Len returns the number of scopes.
func (s *ScopedIndex[E]) Len() int {
	return len(s.scopes)
}
