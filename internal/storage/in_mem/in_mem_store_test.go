package in_mem

import (
	"context"
	"fmt"
	"testing"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStore_Save(t *testing.T) {
	store := NewInMemStore()

	id, err := store.Save(context.Background(), domain.Attempt{
		Expression:    "2 + 3 * 4",
		Concept:       "Multiplication before Addition",
		GivenAnswer:   14,
		CorrectAnswer: 14,
		Correct:       true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	result, err := store.List(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, id, result.Items[0].ID)
	assert.Equal(t, "2 + 3 * 4", result.Items[0].Expression)
	assert.False(t, result.Items[0].CreatedAt.IsZero())
}

func TestInMemStore_Save_DefaultsConcept(t *testing.T) {
	store := NewInMemStore()

	_, err := store.Save(context.Background(), domain.Attempt{
		Expression:    "1 + 1",
		GivenAnswer:   2,
		CorrectAnswer: 2,
		Correct:       true,
	})
	require.NoError(t, err)

	result, err := store.List(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, domain.ConceptCustom, result.Items[0].Concept)
}

func TestInMemStore_List_NewestFirst(t *testing.T) {
	store := NewInMemStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Save(ctx, domain.Attempt{
			Expression:    fmt.Sprintf("%d + 1", i),
			Concept:       domain.ConceptCustom,
			GivenAnswer:   float64(i + 1),
			CorrectAnswer: float64(i + 1),
			Correct:       true,
		})
		require.NoError(t, err)
	}

	first, err := store.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "4 + 1", first.Items[0].Expression)
	assert.Equal(t, "3 + 1", first.Items[1].Expression)
	assert.Equal(t, int64(5), first.Total)
	assert.True(t, first.HasMore)

	last, err := store.List(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.Equal(t, "0 + 1", last.Items[0].Expression)
	assert.False(t, last.HasMore)

	empty, err := store.List(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
}

func TestInMemStore_Summary(t *testing.T) {
	store := NewInMemStore()
	ctx := context.Background()

	attempts := []domain.Attempt{
		{Expression: "2 + 3 * 4", Concept: "Multiplication before Addition", Correct: true},
		{Expression: "5 + 2 * 3", Concept: "Multiplication before Addition", Correct: false},
		{Expression: "(2 + 3) * 4", Concept: "Brackets First", Correct: true},
		{Expression: "(1 + 1) * 2", Concept: "Brackets First", Correct: true},
	}
	for _, attempt := range attempts {
		_, err := store.Save(ctx, attempt)
		require.NoError(t, err)
	}

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Brackets First", summary[0].Concept)
	assert.Equal(t, 2, summary[0].Attempts)
	assert.Equal(t, 2, summary[0].Correct)
	assert.InDelta(t, 1.0, summary[0].Mastery, 1e-9)

	assert.Equal(t, "Multiplication before Addition", summary[1].Concept)
	assert.Equal(t, 2, summary[1].Attempts)
	assert.Equal(t, 1, summary[1].Correct)
	assert.InDelta(t, 0.5, summary[1].Mastery, 1e-9)
}

func TestInMemStore_Summary_Empty(t *testing.T) {
	store := NewInMemStore()

	summary, err := store.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary)
}
