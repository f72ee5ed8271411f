// Package world owns the 3D scene: the heightmapped glade, its procedural
// decoration, the orb, light levels, and the active particle groups. It
// implements the story machine's Stage contract.
package world

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"orbwalk/internal/effects"
	"orbwalk/internal/story"
)

// Options controls world generation. Extent is the half-size of the square
// glade on X/Z; vegetation is placed inside it, away from the orb clearing.
type Options struct {
	Seed           int64 // 0 = time-based
	Extent         float32
	HeightScale    float32
	Trees          int
	Rocks          int
	Flowers        int
	ClearingRadius float32

	OrbOffset rl.Vector3 // Y is height above the terrain
	OrbRadius float32
}

// DefaultOptions returns a small glade matching the shipped config.
func DefaultOptions() Options {
	return Options{
		Extent:         24,
		HeightScale:    0.8,
		Trees:          28,
		Rocks:          14,
		Flowers:        60,
		ClearingRadius: 4,
		OrbOffset:      rl.NewVector3(0, 1.2, 0),
		OrbRadius:      0.5,
	}
}

const (
	terrainRes   = 64   // heightmap samples per side
	terrainFreq  = 0.07 // noise frequency per world unit
	noiseOctaves = 4
	noiseLacunar = 2.0
	noiseGain    = 0.5
	orbPulseHz   = 0.4
	orbBobHeight = 0.15
)

// Scene is the rendered world. GPU resources (the terrain model) load lazily
// on the first Draw, after the window and GL context exist.
type Scene struct {
	opts Options
	seed int64
	rng  *rand.Rand

	trees   []tree
	rocks   []rock
	flowers []flower

	orbPos     rl.Vector3
	orbVisible bool

	// Light levels as fractions of the base intensity; the transformation
	// dims them. They tint everything drawn.
	ambient float32
	point   float32

	groups map[story.ParticleHandle]effects.Group
	nextID story.ParticleHandle

	elapsed float32

	terrain       rl.Model
	terrainLoaded bool
}

// New generates a world. Generation is pure CPU work so a Scene can exist
// before the window opens; a given seed reproduces the same glade.
func New(opts Options) *Scene {
	if opts.Extent <= 0 {
		opts.Extent = DefaultOptions().Extent
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = DefaultOptions().HeightScale
	}
	if opts.OrbRadius <= 0 {
		opts.OrbRadius = DefaultOptions().OrbRadius
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Scene{
		opts:       opts,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		orbVisible: true,
		ambient:    1,
		point:      1,
		groups:     make(map[story.ParticleHandle]effects.Group),
	}
	s.orbPos = rl.NewVector3(
		opts.OrbOffset.X,
		s.HeightAt(opts.OrbOffset.X, opts.OrbOffset.Z)+opts.OrbOffset.Y,
		opts.OrbOffset.Z,
	)
	s.plant()
	return s
}

// HeightAt samples the terrain height at a world position.
func (s *Scene) HeightAt(x, z float32) float32 {
	h := fbm(x*terrainFreq, z*terrainFreq, s.seed, noiseOctaves, noiseLacunar, noiseGain)
	return h * s.opts.HeightScale
}

// OrbPosition returns the orb's world position.
func (s *Scene) OrbPosition() rl.Vector3 { return s.orbPos }

// Extent returns the glade half-size, used to clamp the player.
func (s *Scene) Extent() float32 { return s.opts.Extent }

// SetMeshVisible implements the stage contract; only the orb is addressable.
func (s *Scene) SetMeshVisible(id string, visible bool) {
	if id == story.MeshOrb {
		s.orbVisible = visible
	}
}

// SetLightIntensity sets a light level as a fraction of its base intensity.
func (s *Scene) SetLightIntensity(id string, level float32) {
	level = clamp01(level)
	switch id {
	case story.LightAmbient:
		s.ambient = level
	case story.LightPoint:
		s.point = level
	}
}

// SpawnParticleGroup creates the requested group and registers it.
func (s *Scene) SpawnParticleGroup(spec story.ParticleSpec) story.ParticleHandle {
	var g effects.Group
	switch spec.Kind {
	case story.GroupShatter:
		g = effects.NewShatter(spec.Origin, s.rng)
	case story.GroupSwirl:
		g = effects.NewSwirl(s.rng)
	default:
		return 0
	}
	s.nextID++
	s.groups[s.nextID] = g
	return s.nextID
}

// RemoveParticleGroup reclaims a group before it self-expires. Unknown
// handles (already expired) are ignored.
func (s *Scene) RemoveParticleGroup(h story.ParticleHandle) {
	delete(s.groups, h)
}

// Update advances orb animation and particle kinematics. Expired groups are
// reclaimed here; focus is the player position for the swirl.
func (s *Scene) Update(dt float32, focus rl.Vector3) {
	s.elapsed += dt
	f := [3]float32{focus.X, focus.Y, focus.Z}
	for h, g := range s.groups {
		if !g.Update(dt, f) {
			delete(s.groups, h)
		}
	}
}

// Draw renders sky, terrain, vegetation, orb, and particles. The 2D sky
// gradient goes down first, then everything 3D between Begin/EndMode3D.
func (s *Scene) Draw(cam rl.Camera3D) {
	s.ensureTerrainLoaded()
	s.drawSky()

	rl.BeginMode3D(cam)
	if s.terrainLoaded {
		tint := shade(rl.NewColor(96, 140, 88, 255), s.ambient)
		rl.DrawModel(s.terrain, rl.NewVector3(-s.opts.Extent, 0, -s.opts.Extent), 1, tint)
	}
	s.drawVegetation()
	if s.orbVisible {
		s.drawOrb()
	}
	s.drawParticles()
	rl.EndMode3D()
}

// ensureTerrainLoaded builds the heightmap mesh on the first Draw so GPU
// uploads happen after the GL context exists.
func (s *Scene) ensureTerrainLoaded() {
	if s.terrainLoaded {
		return
	}
	img := rl.GenImageColor(terrainRes, terrainRes, rl.Black)
	span := 2 * s.opts.Extent
	for j := 0; j < terrainRes; j++ {
		for i := 0; i < terrainRes; i++ {
			x := -s.opts.Extent + span*float32(i)/float32(terrainRes-1)
			z := -s.opts.Extent + span*float32(j)/float32(terrainRes-1)
			h := fbm(x*terrainFreq, z*terrainFreq, s.seed, noiseOctaves, noiseLacunar, noiseGain)
			v := uint8(clamp01(h) * 255)
			rl.ImageDrawPixel(img, int32(i), int32(j), rl.NewColor(v, v, v, 255))
		}
	}
	size := rl.NewVector3(span, s.opts.HeightScale, span)
	mesh := rl.GenMeshHeightmap(*img, size)
	rl.UnloadImage(img)
	s.terrain = rl.LoadModelFromMesh(mesh)
	s.terrainLoaded = true
}

func (s *Scene) drawSky() {
	w := int32(rl.GetScreenWidth())
	h := int32(rl.GetScreenHeight())
	top := shade(rl.NewColor(38, 54, 96, 255), s.ambient)
	bottom := shade(rl.NewColor(122, 112, 150, 255), s.ambient)
	rl.DrawRectangleGradientV(0, 0, w, h, top, bottom)
}

func (s *Scene) drawOrb() {
	pulse := 1 + 0.08*math32.Sin(2*math32.Pi*orbPulseHz*s.elapsed)
	bob := orbBobHeight * math32.Sin(0.7*s.elapsed)
	pos := rl.NewVector3(s.orbPos.X, s.orbPos.Y+bob, s.orbPos.Z)
	r := s.opts.OrbRadius * pulse

	core := shade(rl.NewColor(255, 235, 170, 255), 0.4+0.6*s.point)
	rl.DrawSphere(pos, r, core)
	glow := rl.Fade(rl.NewColor(255, 220, 120, 255), 0.25*s.point)
	rl.DrawSphere(pos, r*1.6, glow)
	halo := rl.Fade(rl.NewColor(255, 200, 90, 255), 0.08*s.point)
	rl.DrawSphere(pos, r*2.6, halo)

	// Soft light pool on the ground under the orb.
	ground := rl.NewVector3(pos.X, s.HeightAt(pos.X, pos.Z)+0.02, pos.Z)
	rl.DrawCylinder(ground, s.opts.OrbRadius*3, s.opts.OrbRadius*3, 0.01, 16,
		rl.Fade(rl.NewColor(255, 230, 150, 255), 0.12*s.point))
}

func (s *Scene) drawParticles() {
	for _, g := range s.groups {
		for _, p := range g.Points() {
			if p.Opacity <= 0 {
				continue
			}
			c := rl.Fade(rl.NewColor(p.R, p.G, p.B, 255), p.Opacity)
			rl.DrawSphereEx(rl.NewVector3(p.Pos[0], p.Pos[1], p.Pos[2]), p.Size, 4, 6, c)
		}
	}
}

// shade scales a color's RGB by the given light level.
func shade(c rl.Color, level float32) rl.Color {
	level = clamp01(level)
	return rl.NewColor(
		uint8(float32(c.R)*level),
		uint8(float32(c.G)*level),
		uint8(float32(c.B)*level),
		c.A,
	)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
