package bough

// EntityStore is the mutation contract a HierarchyBuilder drives. E is the
// entity identifier handed out by the store: EntityId for a live World,
// PendingEntity for a CommandBuffer.
type EntityStore[E comparable] interface {
	// Insert creates one entity per row of the source, each carrying the
	// shared tags plus the components of its row. Returns the identifiers
	// in row order.
	Insert(tags []ErasedComponent, source ComponentSource) []E

	// AddComponent adds a single component value to an existing entity,
	// replacing a previous value of the same type.
	AddComponent(entity E, component ErasedComponent) error
}

// ComponentSource yields one component bundle per entity for bulk insertion.
type ComponentSource interface {
	Len() int
	Row(idx int) []ErasedComponent
}

// Rows builds a ComponentSource from explicit per-entity bundles.
func Rows(rows ...[]ErasedComponent) ComponentSource {
	return rowsSource(rows)
}

type rowsSource [][]ErasedComponent

func (r rowsSource) Len() int {
	return len(r)
}

func (r rowsSource) Row(idx int) []ErasedComponent {
	return r[idx]
}

// Repeat builds a ComponentSource that yields the same bundle n times.
func Repeat(n int, components ...ErasedComponent) ComponentSource {
	return repeatSource{n: n, components: components}
}

type repeatSource struct {
	n          int
	components []ErasedComponent
}

func (r repeatSource) Len() int {
	return r.n
}

func (r repeatSource) Row(int) []ErasedComponent {
	return r.components
}
