package bough

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
)

var _ EntityStore[EntityId] = (*World)(nil)

// World is a live entity store. A HierarchyBuilder obtained from Build
// mutates it synchronously, and it is the replay target for a
// CommandBuffer.
//
// Storage is a plain per-entity component map. Archetype layout, indexing
// and querying are the business of a full ECS engine, not of this package.
type World struct {
	entityIdSeq EntityId
	entities    map[EntityId]map[reflect.Type]ErasedComponent
}

// NewWorld creates a new empty world.
func NewWorld() *World {
	return &World{
		entities: map[EntityId]map[reflect.Type]ErasedComponent{},
	}
}

// Build returns a HierarchyBuilder that mutates this world immediately.
// Identifiers it hands out are valid right away.
func (w *World) Build() *HierarchyBuilder[EntityId] {
	return NewHierarchyBuilder[EntityId](w)
}

func (w *World) reserveEntityId() EntityId {
	w.entityIdSeq += 1
	return w.entityIdSeq
}

// Insert implements EntityStore. It creates one entity per row of the
// source, carrying the shared tags plus the row's components.
func (w *World) Insert(tags []ErasedComponent, source ComponentSource) []EntityId {
	ids := make([]EntityId, 0, source.Len())

	for idx := range source.Len() {
		components := map[reflect.Type]ErasedComponent{}
		for _, tag := range tags {
			components[tag.ComponentType()] = tag
		}
		for _, component := range source.Row(idx) {
			components[component.ComponentType()] = component
		}

		entityId := w.reserveEntityId()
		w.entities[entityId] = components
		ids = append(ids, entityId)
	}

	return ids
}

// AddComponent implements EntityStore. A previous component value of the
// same type is replaced.
func (w *World) AddComponent(entityId EntityId, component ErasedComponent) error {
	entity, ok := w.entities[entityId]
	if !ok {
		return fmt.Errorf("entity %s does not exist", entityId)
	}

	entity[component.ComponentType()] = component
	return nil
}

// Contains reports whether the entity exists in this world.
func (w *World) Contains(entityId EntityId) bool {
	_, ok := w.entities[entityId]
	return ok
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Entities iterates over all live entity ids in ascending order.
func (w *World) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, entityId := range slices.Sorted(maps.Keys(w.entities)) {
			if !yield(entityId) {
				return
			}
		}
	}
}

// Component returns the entity's component of the given reflect type.
func (w *World) Component(entityId EntityId, ty reflect.Type) (ErasedComponent, bool) {
	component, ok := w.entities[entityId][ty]
	return component, ok
}

// Components returns all components of the entity in unspecified order.
func (w *World) Components(entityId EntityId) []ErasedComponent {
	return slices.Collect(maps.Values(w.entities[entityId]))
}

// ComponentOf is the typed version of World.Component.
func ComponentOf[C ErasedComponent](w *World, entityId EntityId) (C, bool) {
	var zero C

	component, ok := w.Component(entityId, reflect.TypeFor[C]())
	if !ok {
		return zero, false
	}

	return component.(C), true
}
