package tutor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessons_Lookup(t *testing.T) {
	lessons := NewLessons()

	for _, slug := range []string{"brackets", "orders", "division_multiplication", "addition_subtraction"} {
		lesson, ok := lessons.Lookup(slug)
		require.True(t, ok, "missing lesson %q", slug)

		assert.Equal(t, slug, lesson.Slug)
		assert.NotEmpty(t, lesson.Title)
		assert.NotEmpty(t, lesson.Description)
		assert.NotEmpty(t, lesson.Rule)
		assert.NotEmpty(t, lesson.Example)
		assert.NotEmpty(t, lesson.CommonMistakes)
	}
}

func TestLessons_Lookup_UnknownConcept(t *testing.T) {
	lessons := NewLessons()

	_, ok := lessons.Lookup("algebra")
	assert.False(t, ok)
}

func TestLessons_Slugs(t *testing.T) {
	lessons := NewLessons()

	slugs := lessons.Slugs()
	require.Len(t, slugs, 4)
	assert.Equal(t, "brackets", slugs[0])
}
