package bough

// Parent links a child entity to its parent in the hierarchy. It is
// attached automatically to entities created inside a WithChildren scope.
//
// On a live World the type parameter is EntityId. While recording into a
// CommandBuffer it is PendingEntity; applying the buffer rewrites those
// values to Parent[EntityId] referencing the resolved parent.
type Parent[E comparable] struct {
	Component[Parent[E]]
	Entity E
}
