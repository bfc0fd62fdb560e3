package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID   string
	Name string
}

func TestBuildIndex(t *testing.T) {
	items := []item{{ID: "a", Name: "A"}, {ID: "", Name: "orphan"}, {ID: "b", Name: "B"}}

	idx := BuildIndex(items, func(i *item) string { return i.ID }, func(i *item) *item { return i })

	assert.Len(t, idx, 2)
	assert.Same(t, &items[0], idx["a"])
	assert.Same(t, &items[2], idx["b"])
	assert.True(t, idx.Has("a"))
	assert.False(t, idx.Has(""))
	assert.False(t, idx.Has("c"))
}

func TestScopedIndex(t *testing.T) {
	s := NewScopedIndex[*item]()
	s.Put("p1", Index[*item]{"a": {ID: "a"}})
	s.Put("p2", nil)

	assert.True(t, s.Known("p1"))
	assert.True(t, s.Known("p2"))
	assert.NotNil(t, s.Scope("p2"))
	assert.False(t, s.Known("p3"))

	// Lazily created scope is empty and sticky
	scope := s.Scope("p3")
	assert.Empty(t, scope)
	scope["z"] = &item{ID: "z"}
	assert.True(t, s.Scope("p3").Has("z"))
	assert.Equal(t, 3, s.Len())

	// Same id under another parent is a different entry
	assert.False(t, s.Scope("p2").Has("a"))
}

func TestCounterTotal(t *testing.T) {
	assert.Equal(t, 5, Counter{Created: 2, Updated: 3}.Total())
}
