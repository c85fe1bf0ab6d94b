package gm

import (
	"fmt"
	"math"
)

// Vec is a two dimensional vector.
type Vec struct {
	X, Y float64
}

var VecOne = Vec{X: 1, Y: 1}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// Rotated returns the vector rotated counterclockwise by the given angle.
func (v Vec) Rotated(angle Rad) Vec {
	sin, cos := angle.Sin(), angle.Cos()
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
