// Package bough provides a fluent builder for spawning entity hierarchies
// into an ECS store.
//
// A HierarchyBuilder lets you declare entities and their components as a
// call chain and open nested child scopes with WithChildren. Entities
// created inside a child scope are automatically linked to their parent
// via a Parent component and receive an identity LocalTransform.
//
// Two stores back the builder: a World applies every operation
// immediately, a CommandBuffer records the operations and replays them
// against a world later. Both are driven through the same builder, so
// immediate and deferred building behave identically.
package bough
