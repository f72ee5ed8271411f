// Package player is the first-person walk controller: captured-mouse look,
// WASD movement on the terrain, eye height following the ground.
package player

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EyeHeight is how far the camera sits above the terrain.
const EyeHeight = 1.7

const (
	walkSpeed   = 4.0    // units/s
	sensitivity = 0.0025 // radians per mouse pixel
	pitchLimit  = 1.45   // just short of straight up/down
)

// Controller owns the camera. HeightAt samples the terrain so the player
// walks the ground; bounds clamps X/Z to the glade.
type Controller struct {
	Camera   rl.Camera3D
	yaw      float32
	pitch    float32
	started  bool
	captured bool
	heightAt func(x, z float32) float32
	bounds   float32
}

// New places the player at start, facing the world origin.
func New(start rl.Vector3, heightAt func(x, z float32) float32, bounds float32) *Controller {
	c := &Controller{
		heightAt: heightAt,
		bounds:   bounds,
		yaw:      math32.Atan2(-start.X, -start.Z),
	}
	c.Camera.Position = start
	c.Camera.Up = rl.NewVector3(0, 1, 0)
	c.Camera.Fovy = 70
	c.Camera.Projection = rl.CameraPerspective
	c.snapToGround()
	c.aim()
	return c
}

// Position returns the player's world position (at eye height).
func (c *Controller) Position() rl.Vector3 { return c.Camera.Position }

// Update applies one frame of input. The cursor is captured on the first
// frame (and after clicking back in); ESC releases it.
func (c *Controller) Update(dt float32) {
	if !c.started {
		// Capture the mouse on the first frame, once the window exists.
		c.started = true
		rl.DisableCursor()
		c.captured = true
	}
	if !c.captured {
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			rl.DisableCursor()
			c.captured = true
		}
	} else if rl.IsKeyPressed(rl.KeyEscape) {
		rl.EnableCursor()
		c.captured = false
	}

	if c.captured {
		delta := rl.GetMouseDelta()
		c.yaw -= delta.X * sensitivity
		c.pitch -= delta.Y * sensitivity
		if c.pitch > pitchLimit {
			c.pitch = pitchLimit
		}
		if c.pitch < -pitchLimit {
			c.pitch = -pitchLimit
		}
	}

	var forward, strafe float32
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		strafe++
	}
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		strafe--
	}

	if forward != 0 || strafe != 0 {
		// Normalize so diagonals are not faster.
		inv := 1 / math32.Sqrt(forward*forward+strafe*strafe)
		forward *= inv
		strafe *= inv

		sin, cos := math32.Sincos(c.yaw)
		dx := (-sin*forward + cos*strafe) * walkSpeed * dt
		dz := (-cos*forward - sin*strafe) * walkSpeed * dt

		c.Camera.Position.X = clamp(c.Camera.Position.X+dx, -c.bounds, c.bounds)
		c.Camera.Position.Z = clamp(c.Camera.Position.Z+dz, -c.bounds, c.bounds)
	}

	c.snapToGround()
	c.aim()
}

func (c *Controller) snapToGround() {
	p := &c.Camera.Position
	p.Y = c.heightAt(p.X, p.Z) + EyeHeight
}

// aim points the camera target along the current yaw/pitch.
func (c *Controller) aim() {
	siny, cosy := math32.Sincos(c.yaw)
	sinp, cosp := math32.Sincos(c.pitch)
	dir := rl.NewVector3(-siny*cosp, sinp, -cosy*cosp)
	p := c.Camera.Position
	c.Camera.Target = rl.NewVector3(p.X+dir.X, p.Y+dir.Y, p.Z+dir.Z)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
