package view

import "github.com/lixenwraith/termview/geom"

// SizeCache remembers a RequiredSize answer along one axis, keyed by
// whether the constraint was tight. A cached value stays valid for a
// new constraint when the constraint equals the value (tight fit) or
// when both the old and new constraints exceed it.
type SizeCache struct {
	Value int
	// Constrained is true when the computed value filled the whole
	// constraint, so a different constraint could change the answer.
	Constrained bool
}

// NewSizeCache records one axis of a computed size against its
// constraint.
func NewSizeCache(value, constraint int) SizeCache {
	return SizeCache{Value: value, Constrained: value >= constraint}
}

// Accepts reports whether the cached value is still valid for the new
// constraint.
func (c SizeCache) Accepts(constraint int) bool {
	if c.Constrained {
		return constraint == c.Value
	}
	return constraint >= c.Value
}

// SizeCache2 caches a full Vec2 answer.
type SizeCache2 struct {
	X, Y SizeCache
}

// NewSizeCache2 records a computed size against its constraint.
func NewSizeCache2(value, constraint geom.Vec2) SizeCache2 {
	return SizeCache2{
		X: NewSizeCache(value.X, constraint.X),
		Y: NewSizeCache(value.Y, constraint.Y),
	}
}

// Accepts reports whether the cached size is valid for the constraint.
func (c SizeCache2) Accepts(constraint geom.Vec2) bool {
	return c.X.Accepts(constraint.X) && c.Y.Accepts(constraint.Y)
}

// Value returns the cached size.
func (c SizeCache2) Value() geom.Vec2 {
	return geom.V(c.X.Value, c.Y.Value)
}
