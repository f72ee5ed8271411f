// Package effects holds the ephemeral particle groups spawned during the
// transformation sequence. Groups are pure kinematics over world-space
// positions; the scene decides how to render a Point. Each group self-reports
// expiry so its owner can reclaim it.
package effects

// Point is one renderable particle: a world position, a size in world units,
// an RGB color and an opacity in [0,1].
type Point struct {
	Pos     [3]float32
	Size    float32
	R, G, B uint8
	Opacity float32
}

// Group is a short-lived particle system. Update advances kinematics by dt
// seconds; focus is the player position (only the swirl uses it). It returns
// false once every particle is exhausted and the group should be removed.
type Group interface {
	Update(dt float32, focus [3]float32) bool
	Points() []Point
}
