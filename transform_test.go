package bough

import (
	"testing"

	"github.com/bough-ecs/bough/gm"
	"github.com/stretchr/testify/require"
)

func TestLocalTransformMul(t *testing.T) {
	identity := IdentityLocalTransform()
	child := identity.WithTranslation(gm.VecOf(1, 0))

	require.Equal(t, child, identity.Mul(child))

	moved := identity.WithRotation(gm.DegToRad(90)).Mul(child)
	require.InDelta(t, 0, moved.Translation.X, 1e-9)
	require.InDelta(t, 1, moved.Translation.Y, 1e-9)
	require.InDelta(t, gm.DegToRad(90).Radians(), moved.Rotation.Radians(), 1e-9)

	scaled := identity.WithScale(gm.VecOf(2, 2)).Mul(child)
	require.Equal(t, gm.VecOf(2, 0), scaled.Translation)
	require.Equal(t, gm.VecOf(2, 2), scaled.Scale)
}
