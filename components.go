package bough

import "reflect"

// ErasedComponent is the type erased version of a component value.
type ErasedComponent interface {
	ComponentType() reflect.Type
}

// Component must be embedded into a struct type to mark it as a component:
//
//	type Position struct {
//		bough.Component[Position]
//		X, Y float64
//	}
type Component[T any] struct{}

func (Component[T]) ComponentType() reflect.Type {
	return reflect.TypeFor[T]()
}

// ComponentSet describes the full component bundle of a single entity,
// inserted atomically by HierarchyBuilder.EntityWith.
type ComponentSet interface {
	Tags() []ErasedComponent
	Components() []ErasedComponent
}

// Bundle builds a ComponentSet from the given components.
func Bundle(components ...ErasedComponent) ComponentSet {
	return bundleSet{components: components}
}

// TaggedBundle is Bundle with shared classification tags attached to
// the entity in addition to its components.
func TaggedBundle(tags []ErasedComponent, components ...ErasedComponent) ComponentSet {
	return bundleSet{tags: tags, components: components}
}

type bundleSet struct {
	tags       []ErasedComponent
	components []ErasedComponent
}

func (b bundleSet) Tags() []ErasedComponent {
	return b.tags
}

func (b bundleSet) Components() []ErasedComponent {
	return b.components
}
