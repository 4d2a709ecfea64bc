// Package props renders the scene's decorations as composites of raylib
// primitive meshes (cube, sphere, cylinder, cone): the gingerbread house, the
// wagon, and the scattered candy. Prop-local coordinates put the origin at
// ground level so an instance's Y is a plain vertical offset.
package props

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Category names the renderer understands. The candy names match the scatter
// layout; the house and wagon are placed by the scene directly.
const (
	CategoryCandyCane   = "CandyCane"
	CategoryCottonCandy = "CottonCandy"
	CategoryLollipop    = "Lollipop"
	CategoryHouse       = "GingerbreadHouse"
	CategoryWagon       = "Wagon"
)

// Instance is one prop to draw: a category, a world position, a uniform scale
// (0 means 1), and Euler rotation (tilt about X and Z is fixed per category,
// Y is the per-instance random spin).
type Instance struct {
	Category string
	Position [3]float32
	Scale    float32
	RotX     float32
	RotY     float32
	RotZ     float32
}

// part is one primitive piece of a composite prop, in prop-local coordinates.
type part struct {
	kind   string
	color  rl.Color
	scale  [3]float32
	offset [3]float32
	rotZ   float32 // part-local tilt about Z, radians (wheels, hooks, roofs)
}

var (
	candyRed    = rl.NewColor(214, 40, 57, 255)
	candyWhite  = rl.NewColor(245, 245, 240, 255)
	cottonPink  = rl.NewColor(244, 154, 194, 255)
	cottonBlue  = rl.NewColor(162, 210, 255, 255)
	stickWhite  = rl.NewColor(230, 228, 220, 255)
	lolliPurple = rl.NewColor(155, 93, 229, 255)
	lolliGreen  = rl.NewColor(70, 190, 120, 255)
	gingerBrown = rl.NewColor(142, 85, 49, 255)
	gingerDark  = rl.NewColor(96, 56, 31, 255)
	frosting    = rl.NewColor(250, 250, 250, 255)
	windowGlow  = rl.NewColor(255, 214, 130, 255)
	wagonWood   = rl.NewColor(120, 72, 40, 255)
	wheelDark   = rl.NewColor(58, 44, 34, 255)
)

// Part lists per category. Dimensions are in world units at scale 1.
var (
	candyCaneParts = []part{
		{kind: "cylinder", color: candyWhite, scale: [3]float32{0.12, 1.6, 0.12}, offset: [3]float32{0, 0.8, 0}},
		{kind: "cylinder", color: candyRed, scale: [3]float32{0.14, 0.16, 0.14}, offset: [3]float32{0, 0.3, 0}},
		{kind: "cylinder", color: candyRed, scale: [3]float32{0.14, 0.16, 0.14}, offset: [3]float32{0, 0.8, 0}},
		{kind: "cylinder", color: candyRed, scale: [3]float32{0.14, 0.16, 0.14}, offset: [3]float32{0, 1.3, 0}},
		{kind: "cylinder", color: candyWhite, scale: [3]float32{0.12, 0.5, 0.12}, offset: [3]float32{0.2, 1.72, 0}, rotZ: 1.1},
		{kind: "sphere", color: candyRed, scale: [3]float32{0.16, 0.16, 0.16}, offset: [3]float32{0.42, 1.82, 0}},
	}

	// The blob sits in an upside-down cone (apex at the ground).
	cottonCandyParts = []part{
		{kind: "cone", color: stickWhite, scale: [3]float32{0.5, 1.1, 0.5}, offset: [3]float32{0, 0.55, 0}, rotZ: math.Pi},
		{kind: "sphere", color: cottonPink, scale: [3]float32{1.1, 1.0, 1.1}, offset: [3]float32{0, 1.3, 0}},
		{kind: "sphere", color: cottonBlue, scale: [3]float32{0.55, 0.5, 0.55}, offset: [3]float32{0.38, 1.55, 0.2}},
		{kind: "sphere", color: cottonBlue, scale: [3]float32{0.45, 0.42, 0.45}, offset: [3]float32{-0.32, 1.15, -0.22}},
	}

	lollipopParts = []part{
		{kind: "cylinder", color: stickWhite, scale: [3]float32{0.08, 1.2, 0.08}, offset: [3]float32{0, 0.6, 0}},
		{kind: "sphere", color: lolliPurple, scale: [3]float32{0.9, 0.9, 0.22}, offset: [3]float32{0, 1.5, 0}},
		{kind: "sphere", color: lolliGreen, scale: [3]float32{0.45, 0.45, 0.3}, offset: [3]float32{0, 1.5, 0}},
	}

	// Roof is a cube turned 45 degrees about Z: a prism with the ridge along Z
	// and gable ends facing the door.
	houseParts = []part{
		{kind: "cube", color: gingerBrown, scale: [3]float32{10, 5, 8}, offset: [3]float32{0, 2.5, 0}},
		{kind: "cube", color: frosting, scale: [3]float32{7.2, 7.2, 8.6}, offset: [3]float32{0, 5, 0}, rotZ: math.Pi / 4},
		{kind: "cube", color: gingerDark, scale: [3]float32{1.8, 2.6, 0.3}, offset: [3]float32{0, 1.3, 4.0}},
		{kind: "cube", color: windowGlow, scale: [3]float32{1.2, 1.2, 0.25}, offset: [3]float32{-2.6, 3.2, 4.0}},
		{kind: "cube", color: windowGlow, scale: [3]float32{1.2, 1.2, 0.25}, offset: [3]float32{2.6, 3.2, 4.0}},
		{kind: "sphere", color: candyRed, scale: [3]float32{0.5, 0.5, 0.5}, offset: [3]float32{-1.6, 4.2, 4.05}},
		{kind: "sphere", color: candyRed, scale: [3]float32{0.5, 0.5, 0.5}, offset: [3]float32{1.6, 4.2, 4.05}},
		{kind: "cylinder", color: candyRed, scale: [3]float32{0.25, 2.8, 0.25}, offset: [3]float32{-4.6, 1.4, 4.0}},
		{kind: "cylinder", color: candyRed, scale: [3]float32{0.25, 2.8, 0.25}, offset: [3]float32{4.6, 1.4, 4.0}},
	}

	// Wheels are cylinders turned 90 degrees about Z so the axle runs along X.
	wagonParts = []part{
		{kind: "cube", color: wagonWood, scale: [3]float32{3.6, 0.9, 2.2}, offset: [3]float32{0, 1.1, 0}},
		{kind: "cylinder", color: wheelDark, scale: [3]float32{1.0, 0.24, 1.0}, offset: [3]float32{-1.92, 0.5, -0.7}, rotZ: math.Pi / 2},
		{kind: "cylinder", color: wheelDark, scale: [3]float32{1.0, 0.24, 1.0}, offset: [3]float32{-1.92, 0.5, 0.7}, rotZ: math.Pi / 2},
		{kind: "cylinder", color: wheelDark, scale: [3]float32{1.0, 0.24, 1.0}, offset: [3]float32{1.92, 0.5, -0.7}, rotZ: math.Pi / 2},
		{kind: "cylinder", color: wheelDark, scale: [3]float32{1.0, 0.24, 1.0}, offset: [3]float32{1.92, 0.5, 0.7}, rotZ: math.Pi / 2},
		{kind: "cylinder", color: wagonWood, scale: [3]float32{0.08, 1.6, 0.08}, offset: [3]float32{2.3, 0.85, 0}, rotZ: -1.1},
	}
)

// partsFor returns the composite for a category, or nil for unknown names
// (the instance is skipped, matching how the rest of the scene treats bad
// layout entries: render what is understood, never fail the frame).
func partsFor(category string) []part {
	switch category {
	case CategoryCandyCane:
		return candyCaneParts
	case CategoryCottonCandy:
		return cottonCandyParts
	case CategoryLollipop:
		return lollipopParts
	case CategoryHouse:
		return houseParts
	case CategoryWagon:
		return wagonParts
	default:
		return nil
	}
}

// Draw renders one prop instance. Must be called between BeginMode3D and
// EndMode3D; SetView must have been called this frame for correct shading.
func (r *Registry) Draw(inst Instance) {
	parts := partsFor(inst.Category)
	if parts == nil {
		return
	}
	s := inst.Scale
	if s == 0 {
		s = 1
	}
	rot := instanceRotation(inst)
	world := rl.MatrixTranslate(inst.Position[0], inst.Position[1], inst.Position[2])
	for _, p := range parts {
		m := rl.MatrixScale(p.scale[0]*s, p.scale[1]*s, p.scale[2]*s)
		if p.rotZ != 0 {
			m = rl.MatrixMultiply(m, rl.MatrixRotateZ(p.rotZ))
		}
		m = rl.MatrixMultiply(m, rl.MatrixTranslate(p.offset[0]*s, p.offset[1]*s, p.offset[2]*s))
		m = rl.MatrixMultiply(m, rot)
		m = rl.MatrixMultiply(m, world)
		r.drawPart(p.kind, p.color, m)
	}
}

// instanceRotation builds the prop rotation: fixed tilts about Z then X,
// then the instance's Y spin.
func instanceRotation(inst Instance) rl.Matrix {
	m := rl.MatrixIdentity()
	if inst.RotZ != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateZ(inst.RotZ))
	}
	if inst.RotX != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateX(inst.RotX))
	}
	if inst.RotY != 0 {
		m = rl.MatrixMultiply(m, rl.MatrixRotateY(inst.RotY))
	}
	return m
}
