package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// Feet returns the bottom-centre of the collision box, where sprites are
// anchored.
func (o *ObjectData) Feet() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H}
}

// MoveTo places the box so that its bottom-centre is at p.
func (o *ObjectData) MoveTo(p math.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
