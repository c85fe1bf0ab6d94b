package bough

import "fmt"

// HierarchyBuilder spawns entities into an EntityStore while keeping track
// of the current entity and the stack of open parent scopes. All methods
// return the builder itself so calls can be chained:
//
//	world.Build().
//		Entity().With(Position{X: 1}).
//		WithChildren(func(children *bough.HierarchyBuilder[bough.EntityId]) {
//			children.Entity().With(Sprite{Name: "shadow"})
//		})
//
// A builder is owned by a single call chain and must not be shared across
// goroutines or used concurrently with other mutators of its store.
type HierarchyBuilder[E comparable] struct {
	store      EntityStore[E]
	current    E
	hasCurrent bool
	parents    []E
}

// NewHierarchyBuilder creates a builder on top of the given store.
// Usually you want (*World).Build or (*CommandBuffer).Build instead.
func NewHierarchyBuilder[E comparable](store EntityStore[E]) *HierarchyBuilder[E] {
	return &HierarchyBuilder[E]{store: store}
}

// Entity creates a new entity without any components and makes it the
// current entity. Inside a WithChildren scope the new entity is linked to
// the scope's parent.
func (b *HierarchyBuilder[E]) Entity() *HierarchyBuilder[E] {
	ids := b.store.Insert(nil, Repeat(1))
	b.current, b.hasCurrent = ids[0], true
	b.linkCurrentToParent()
	return b
}

// SetEntity makes a pre-existing entity the current one so that building
// can resume on it. It creates nothing and never links to a parent scope.
func (b *HierarchyBuilder[E]) SetEntity(entity E) *HierarchyBuilder[E] {
	b.current, b.hasCurrent = entity, true
	return b
}

// With adds a single component to the current entity.
//
// In an archetype backed store this relocates the whole entity once per
// call. Prefer EntityWith when multiple components are known up front.
func (b *HierarchyBuilder[E]) With(component ErasedComponent) *HierarchyBuilder[E] {
	if !b.hasCurrent {
		panic("no current entity: create one with Entity or EntityWith, or resume one with SetEntity")
	}

	b.addComponent(b.current, component)
	return b
}

// Entities bulk inserts one entity per row of the source, all sharing the
// given tags. The current entity is left untouched and none of the created
// entities is linked to an open parent scope; this is the fast path for
// spawning many uniform entities without hierarchy wiring.
func (b *HierarchyBuilder[E]) Entities(source ComponentSource, tags ...ErasedComponent) *HierarchyBuilder[E] {
	b.store.Insert(tags, source)
	return b
}

// EntityWith creates a single entity from the full component set in one
// step and makes it the current entity. Inside a WithChildren scope the
// new entity is linked to the scope's parent.
func (b *HierarchyBuilder[E]) EntityWith(set ComponentSet) *HierarchyBuilder[E] {
	ids := b.store.Insert(set.Tags(), Rows(set.Components()))
	b.current, b.hasCurrent = ids[0], true
	b.linkCurrentToParent()
	return b
}

// WithChildren opens a parent scope rooted at the current entity and runs
// buildChildren within it. Entities the closure creates are linked to that
// parent. Scopes nest to arbitrary depth; when the closure returns, the
// scope is closed and the entity that was current at entry is current
// again.
func (b *HierarchyBuilder[E]) WithChildren(buildChildren func(children *HierarchyBuilder[E])) *HierarchyBuilder[E] {
	if !b.hasCurrent {
		panic("cannot add children without a parent: create an entity first")
	}

	b.parents = append(b.parents, b.current)
	b.hasCurrent = false

	buildChildren(b)

	// restore the entity that was current when the scope was opened
	b.current = b.parents[len(b.parents)-1]
	b.hasCurrent = true
	b.parents = b.parents[:len(b.parents)-1]

	return b
}

// Current returns the current entity, if any. Use it to capture an
// identifier for a later SetEntity or for lookups once building is done.
func (b *HierarchyBuilder[E]) Current() (E, bool) {
	return b.current, b.hasCurrent
}

// linkCurrentToParent applies the parent link policy: an entity created
// while a parent scope is open gets a Parent component referencing the
// innermost scope entity plus an identity LocalTransform, exactly once.
func (b *HierarchyBuilder[E]) linkCurrentToParent() {
	if len(b.parents) == 0 {
		return
	}

	parent := b.parents[len(b.parents)-1]
	b.addComponent(b.current, Parent[E]{Entity: parent})
	b.addComponent(b.current, IdentityLocalTransform())
}

func (b *HierarchyBuilder[E]) addComponent(entity E, component ErasedComponent) {
	if err := b.store.AddComponent(entity, component); err != nil {
		panic(fmt.Sprintf("add component %T: %s", component, err))
	}
}
