package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeySet(t *testing.T) {
	a := NewKeySet("Ahri", "Aatrox", "Ahri", "Zed")
	b := NewKeySet("Zed", "Yasuo")

	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Has("Ahri"))
	assert.False(t, a.Has("ahri"))
	assert.Equal(t, []string{"Aatrox", "Ahri", "Zed"}, a.Sorted())

	assert.Equal(t, []string{"Aatrox", "Ahri"}, a.Difference(b).Sorted())
	assert.Equal(t, []string{"Yasuo"}, b.Difference(a).Sorted())
	assert.Equal(t, []string{"Zed"}, a.Intersect(b).Sorted())

	clone := a.Clone()
	delete(clone, "Zed")
	assert.True(t, a.Has("Zed"))
}

func TestKeySet_Empty(t *testing.T) {
	empty := NewKeySet()
	full := NewKeySet("Ahri")

	assert.Empty(t, empty.Sorted())
	assert.Equal(t, []string{"Ahri"}, full.Difference(empty).Sorted())
	assert.Empty(t, empty.Difference(full).Sorted())
	assert.Empty(t, empty.Intersect(full).Sorted())
}
