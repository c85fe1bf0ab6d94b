package bough

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorldInsert(t *testing.T) {
	w := NewWorld()

	ids := w.Insert(
		[]ErasedComponent{Level{Value: 7}},
		Rows(
			[]ErasedComponent{Position{X: 1}},
			[]ErasedComponent{Position{X: 2}, Sprite{Name: "b"}},
		),
	)

	require.Len(t, ids, 2)
	require.Equal(t, 2, w.EntityCount())
	require.True(t, w.Contains(ids[0]))

	position, ok := ComponentOf[Position](w, ids[0])
	require.True(t, ok)
	require.Equal(t, 1.0, position.X)

	_, ok = ComponentOf[Sprite](w, ids[0])
	require.False(t, ok)

	sprite, ok := ComponentOf[Sprite](w, ids[1])
	require.True(t, ok)
	require.Equal(t, "b", sprite.Name)

	// tags are shared by all inserted entities
	for _, entityId := range ids {
		level, ok := ComponentOf[Level](w, entityId)
		require.True(t, ok)
		require.Equal(t, 7, level.Value)
	}
}

func TestWorldAddComponent(t *testing.T) {
	w := NewWorld()
	ids := w.Insert(nil, Repeat(1))

	require.NoError(t, w.AddComponent(ids[0], Position{X: 5}))

	// adding again replaces the previous value
	require.NoError(t, w.AddComponent(ids[0], Position{X: 6}))

	position, ok := ComponentOf[Position](w, ids[0])
	require.True(t, ok)
	require.Equal(t, 6.0, position.X)

	err := w.AddComponent(EntityId(42), Position{})
	require.ErrorContains(t, err, "does not exist")
}

func TestWorldEntitiesOrdered(t *testing.T) {
	w := NewWorld()
	w.Insert(nil, Repeat(5))

	require.Equal(t, []EntityId{1, 2, 3, 4, 5}, slices.Collect(w.Entities()))
}
