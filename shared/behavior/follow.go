package behavior

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Follow moves a point (usually a camera) toward a target. Inside Radius the
// point rests; outside it the follow speed grows by Acceleration each frame
// up to Speed. The target never gets further than Leash away.
type Follow struct {
	Speed        float64
	Acceleration float64
	Radius       float64
	Leash        float64
}

// Step returns the new position. speed holds the current follow speed and
// is updated in place.
func (f Follow) Step(pos, target math2.Vec2, speed *float64) math2.Vec2 {
	dx, dy := target.X-pos.X, target.Y-pos.Y
	dist := math.Hypot(dx, dy)
	if dist <= f.Radius {
		*speed = 0
		return pos
	}

	*speed = math.Min(*speed+f.Acceleration, f.Speed)
	step := math.Min(*speed, dist-f.Radius)
	if f.Leash > 0 && dist-step > f.Leash {
		step = dist - f.Leash
	}
	return math2.Vec2{
		X: pos.X + dx/dist*step,
		Y: pos.Y + dy/dist*step,
	}
}

// ClampView keeps a view of size (viewW, viewH) centred on center inside a
// level of size (levelW, levelH). Levels smaller than the view are centred.
func ClampView(center math2.Vec2, viewW, viewH, levelW, levelH float64) math2.Vec2 {
	return math2.Vec2{
		X: clampAxis(center.X, viewW, levelW),
		Y: clampAxis(center.Y, viewH, levelH),
	}
}

func clampAxis(c, view, level float64) float64 {
	if level <= view {
		return level / 2
	}
	return math.Max(view/2, math.Min(level-view/2, c))
}
