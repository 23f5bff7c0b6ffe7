package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	set := List()

	assert.Equal(t, 166, set.Len())
	assert.Equal(t, len(keys), set.Len(), "compiled-in keys must be unique")

	for _, key := range []string{"Aatrox", "MonkeyKing", "Khazix", "Kaisa", "Zyra"} {
		assert.True(t, set.Has(key), key)
	}
	assert.False(t, set.Has("Wukong"), "display names are not catalog keys")
}

func TestList_ReturnsCopy(t *testing.T) {
	first := List()
	delete(first, "Aatrox")

	assert.True(t, List().Has("Aatrox"))
}

func TestFixed(t *testing.T) {
	var p Provider = Fixed{"Aatrox", "Akali", "Aatrox"}

	assert.Equal(t, []string{"Aatrox", "Akali"}, p.List().Sorted())
}
