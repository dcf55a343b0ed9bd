package genconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheAdmitsFirstOccurrenceOnly(t *testing.T) {
	cache := NewCache()

	first := New("Testgame")
	first.Set("Testgame", "x", 1)

	duplicate := New("Testgame")
	duplicate.Set("Testgame", "x", 1)

	distinct := New("Testgame")
	distinct.Set("Testgame", "x", 2)

	assert.True(t, cache.Admit(first))
	assert.False(t, cache.Admit(duplicate))
	assert.True(t, cache.Admit(distinct))
	assert.Equal(t, 2, cache.Size())
}

func TestCacheTreatsClonesAsDuplicates(t *testing.T) {
	cache := NewCache()

	doc := New("Testgame")
	doc.Set("Testgame", "pool", []any{1, 2})

	assert.True(t, cache.Admit(doc))
	assert.False(t, cache.Admit(doc.Clone()))
	assert.Equal(t, 1, cache.Size())
}
