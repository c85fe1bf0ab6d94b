package bough

import "github.com/bough-ecs/bough/gm"

// LocalTransform positions an entity relative to its Parent. Entities
// created inside a WithChildren scope receive an identity value; override
// it with With or by including one in an EntityWith bundle.
type LocalTransform struct {
	Component[LocalTransform]
	Translation gm.Vec
	Scale       gm.Vec
	Rotation    gm.Rad
}

// IdentityLocalTransform returns the identity transformation.
func IdentityLocalTransform() LocalTransform {
	return LocalTransform{Scale: gm.VecOne}
}

func (t LocalTransform) WithTranslation(translation gm.Vec) LocalTransform {
	t.Translation = translation
	return t
}

func (t LocalTransform) WithRotation(rotation gm.Rad) LocalTransform {
	t.Rotation = rotation
	return t
}

func (t LocalTransform) WithScale(scale gm.Vec) LocalTransform {
	t.Scale = scale
	return t
}

// Mul composes the transform with a child transform. The result places the
// child in the space the receiver lives in, so walking a Parent chain from
// the root and multiplying along the way yields global placement.
func (t LocalTransform) Mul(child LocalTransform) LocalTransform {
	return LocalTransform{
		Translation: t.Translation.Add(child.Translation.Rotated(t.Rotation).MulEach(t.Scale)),
		Scale:       t.Scale.MulEach(child.Scale),
		Rotation:    t.Rotation + child.Rotation,
	}
}
