package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVecRotated(t *testing.T) {
	rotated := VecOf(1, 0).Rotated(DegToRad(90))
	require.InDelta(t, 0, rotated.X, 1e-9)
	require.InDelta(t, 1, rotated.Y, 1e-9)

	require.InDelta(t, 1, rotated.Length(), 1e-9)
}

func TestVecOps(t *testing.T) {
	v := VecOf(2, 3).Add(VecOf(1, -1)).MulEach(VecOf(2, 2))
	require.Equal(t, VecOf(6, 4), v)
	require.Equal(t, VecOf(3, 2), v.Mul(0.5))
	require.Equal(t, VecOf(5, 3), v.Sub(VecOf(1, 1)))
}

func TestRadNormalized(t *testing.T) {
	require.InDelta(t, -math.Pi/2, float64(Rad(1.5*math.Pi).Normalized()), 1e-9)
	require.InDelta(t, 0, float64(Rad(2*math.Pi).Normalized()), 1e-9)
	require.InDelta(t, 180.0, DegToRad(180).Degrees(), 1e-9)
}
