package bough

import (
	"log/slog"
	"strconv"
)

// EntityId identifies a live entity inside a World.
type EntityId uint32

const NoEntityId = EntityId(0)

func (e EntityId) String() string {
	return strconv.Itoa(int(e))
}

func (e EntityId) LogValue() slog.Value {
	return slog.StringValue(e.String())
}

// PendingEntity identifies an entity that was recorded into a CommandBuffer
// but does not exist in any world yet. A pending entity can only be turned
// into an EntityId via CommandBuffer.Resolve once the buffer was applied.
type PendingEntity uint32

const NoPendingEntity = PendingEntity(0)

func (p PendingEntity) String() string {
	return "pending(" + strconv.Itoa(int(p)) + ")"
}

func (p PendingEntity) LogValue() slog.Value {
	return slog.StringValue(p.String())
}
