package bough

import (
	"fmt"
	"slices"
)

var _ EntityStore[PendingEntity] = (*CommandBuffer)(nil)

// CommandBuffer records entity mutations and replays them against a World
// at a later point. A HierarchyBuilder obtained from Build only enqueues
// commands; identifiers it hands out are PendingEntity values that become
// dereferenceable through Resolve once the buffer was applied.
//
// Commands are replayed in the exact order they were recorded, so applying
// the buffer produces the same entity graph an immediate builder would
// have produced, modulo identifier binding.
type CommandBuffer struct {
	pendingSeq PendingEntity
	commands   []bufferCommand

	// resolved maps pending entities to live ids. Non-nil once Apply ran.
	resolved map[PendingEntity]EntityId
}

type bufferCommand func(w *World, buf *CommandBuffer) error

// NewCommandBuffer creates a new empty command buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Build returns a HierarchyBuilder that records into this buffer.
func (c *CommandBuffer) Build() *HierarchyBuilder[PendingEntity] {
	return NewHierarchyBuilder[PendingEntity](c)
}

func (c *CommandBuffer) reservePendingEntity() PendingEntity {
	c.pendingSeq += 1
	return c.pendingSeq
}

// Insert implements EntityStore. The insertion is only recorded; it runs
// against a world during Apply.
func (c *CommandBuffer) Insert(tags []ErasedComponent, source ComponentSource) []PendingEntity {
	pending := make([]PendingEntity, source.Len())
	for idx := range pending {
		pending[idx] = c.reservePendingEntity()
	}

	// capture the rows now, the source may be reused by the caller
	rows := make([][]ErasedComponent, source.Len())
	for idx := range rows {
		rows[idx] = slices.Clone(source.Row(idx))
	}

	c.commands = append(c.commands, func(w *World, buf *CommandBuffer) error {
		for _, row := range rows {
			for idx, component := range row {
				resolved, err := buf.resolveComponent(component)
				if err != nil {
					return err
				}
				row[idx] = resolved
			}
		}

		ids := w.Insert(tags, Rows(rows...))
		for idx, id := range ids {
			buf.resolved[pending[idx]] = id
		}

		return nil
	})

	return pending
}

// AddComponent implements EntityStore. The component addition is only
// recorded; it runs against a world during Apply and fails there if the
// pending entity was never inserted through this buffer.
func (c *CommandBuffer) AddComponent(entity PendingEntity, component ErasedComponent) error {
	c.commands = append(c.commands, func(w *World, buf *CommandBuffer) error {
		entityId, err := buf.lookupPending(entity)
		if err != nil {
			return err
		}

		resolved, err := buf.resolveComponent(component)
		if err != nil {
			return err
		}

		return w.AddComponent(entityId, resolved)
	})

	return nil
}

// Apply replays the recorded commands against the given world in record
// order. A buffer can be applied at most once.
func (c *CommandBuffer) Apply(w *World) error {
	if c.resolved != nil {
		return fmt.Errorf("command buffer was already applied")
	}

	c.resolved = map[PendingEntity]EntityId{}

	for _, command := range c.commands {
		if err := command(w, c); err != nil {
			return err
		}
	}

	c.commands = nil
	return nil
}

// Resolve converts a pending entity to the live id it was bound to during
// Apply. It fails if the buffer was not applied yet.
func (c *CommandBuffer) Resolve(pending PendingEntity) (EntityId, error) {
	if c.resolved == nil {
		return NoEntityId, fmt.Errorf("command buffer was not applied yet")
	}

	return c.lookupPending(pending)
}

func (c *CommandBuffer) lookupPending(pending PendingEntity) (EntityId, error) {
	entityId, ok := c.resolved[pending]
	if !ok {
		return NoEntityId, fmt.Errorf("pending entity %s was never inserted", pending)
	}

	return entityId, nil
}

// resolveComponent rewrites Parent values recorded against pending entities
// to reference the live parent. Other component values are applied
// verbatim, even if they embed pending references of their own.
func (c *CommandBuffer) resolveComponent(component ErasedComponent) (ErasedComponent, error) {
	parent, ok := component.(Parent[PendingEntity])
	if !ok {
		return component, nil
	}

	entityId, err := c.lookupPending(parent.Entity)
	if err != nil {
		return nil, err
	}

	return Parent[EntityId]{Entity: entityId}, nil
}
