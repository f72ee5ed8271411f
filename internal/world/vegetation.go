package world

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type tree struct {
	pos     rl.Vector3
	trunkH  float32
	trunkR  float32
	canopyR float32
	green   uint8
}

type rock struct {
	pos    rl.Vector3
	radius float32
	gray   uint8
}

type flower struct {
	pos   rl.Vector3
	stemH float32
	petal rl.Color
}

var petalPalette = []rl.Color{
	{R: 240, G: 120, B: 140, A: 255},
	{R: 250, G: 220, B: 110, A: 255},
	{R: 180, G: 140, B: 240, A: 255},
	{R: 250, G: 250, B: 250, A: 255},
}

// plant scatters vegetation across the glade, keeping the clearing around
// the orb empty so the approach reads clean.
func (s *Scene) plant() {
	for i := 0; i < s.opts.Trees; i++ {
		p := s.scatter(0.9)
		s.trees = append(s.trees, tree{
			pos:     p,
			trunkH:  1.2 + s.rng.Float32()*1.2,
			trunkR:  0.1 + s.rng.Float32()*0.08,
			canopyR: 0.6 + s.rng.Float32()*0.7,
			green:   uint8(110 + s.rng.Intn(60)),
		})
	}
	for i := 0; i < s.opts.Rocks; i++ {
		p := s.scatter(0.95)
		s.rocks = append(s.rocks, rock{
			pos:    p,
			radius: 0.2 + s.rng.Float32()*0.45,
			gray:   uint8(100 + s.rng.Intn(60)),
		})
	}
	for i := 0; i < s.opts.Flowers; i++ {
		p := s.scatter(0.85)
		s.flowers = append(s.flowers, flower{
			pos:   p,
			stemH: 0.18 + s.rng.Float32()*0.18,
			petal: petalPalette[s.rng.Intn(len(petalPalette))],
		})
	}
}

// scatter picks a position inside margin×extent, outside the orb clearing,
// sitting on the terrain.
func (s *Scene) scatter(margin float32) rl.Vector3 {
	bound := s.opts.Extent * margin
	for {
		x := (s.rng.Float32()*2 - 1) * bound
		z := (s.rng.Float32()*2 - 1) * bound
		dx := x - s.orbPos.X
		dz := z - s.orbPos.Z
		if math32.Sqrt(dx*dx+dz*dz) < s.opts.ClearingRadius {
			continue
		}
		return rl.NewVector3(x, s.HeightAt(x, z), z)
	}
}

func (s *Scene) drawVegetation() {
	for _, t := range s.trees {
		trunk := shade(rl.NewColor(104, 76, 52, 255), s.ambient)
		top := rl.NewVector3(t.pos.X, t.pos.Y+t.trunkH, t.pos.Z)
		rl.DrawCylinderEx(t.pos, top, t.trunkR, t.trunkR*0.75, 6, trunk)
		canopy := shade(rl.NewColor(52, t.green, 58, 255), s.ambient)
		rl.DrawSphereEx(top, t.canopyR, 6, 8, canopy)
	}
	for _, r := range s.rocks {
		c := shade(rl.NewColor(r.gray, r.gray, r.gray+8, 255), s.ambient)
		p := rl.NewVector3(r.pos.X, r.pos.Y+r.radius*0.4, r.pos.Z)
		rl.DrawSphereEx(p, r.radius, 5, 6, c)
	}
	for _, f := range s.flowers {
		stem := shade(rl.NewColor(60, 120, 60, 255), s.ambient)
		top := rl.NewVector3(f.pos.X, f.pos.Y+f.stemH, f.pos.Z)
		rl.DrawCylinderEx(f.pos, top, 0.012, 0.012, 4, stem)
		rl.DrawSphere(top, 0.045, shade(f.petal, s.ambient))
	}
}
