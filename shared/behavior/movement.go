package behavior

import (
	"math"
	"math/rand/v2"

	math2 "github.com/yohamta/donburi/features/math"
)

// Sides flags the four neighbours of an actor.
type Sides struct {
	Left, Right, Top, Bottom bool
}

// WalkableSides turns blocked neighbours into allowed directions. A side is
// walkable when it is free, or when the opposite side is blocked as well so
// a wedged actor can still get out.
func WalkableSides(blocked Sides) Sides {
	return Sides{
		Left:   !blocked.Left || blocked.Right,
		Right:  !blocked.Right || blocked.Left,
		Top:    !blocked.Top || blocked.Bottom,
		Bottom: !blocked.Bottom || blocked.Top,
	}
}

// MoveInput is the directional input for one frame.
type MoveInput struct {
	Left, Right, Up, Down bool
}

func (in MoveInput) Any() bool {
	return in.Left || in.Right || in.Up || in.Down
}

// Steer returns the displacement for one frame. Left wins over right and up
// over down. facing is -1 or 1 when the horizontal direction changed, else 0.
func Steer(in MoveInput, walkable Sides, speed float64) (dx, dy float64, facing int) {
	if in.Left && walkable.Left {
		dx = -speed
		facing = -1
	} else if in.Right && walkable.Right {
		dx = speed
		facing = 1
	}
	if in.Up && walkable.Top {
		dy = -speed
	} else if in.Down && walkable.Bottom {
		dy = speed
	}
	return dx, dy, facing
}

// RandomCoordInRadius returns a point uniformly distributed in the disc of
// radius r centred on the origin, rounded to whole pixels.
func RandomCoordInRadius(rng *rand.Rand, r float64) math2.Vec2 {
	d := r * math.Sqrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	return math2.Vec2{
		X: math.Round(d * math.Cos(theta)),
		Y: math.Round(d * math.Sin(theta)),
	}
}

// DistanceSq is the squared euclidean distance between a and b.
func DistanceSq(a, b math2.Vec2) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// StepToward moves one pixel per axis from pos toward dst, comparing
// rounded coordinates. It returns a zero step once pos rounds to dst.
func StepToward(pos, dst math2.Vec2) math2.Vec2 {
	var step math2.Vec2
	if math.Round(pos.X) != math.Round(dst.X) {
		if pos.X < dst.X {
			step.X = 1
		} else {
			step.X = -1
		}
	}
	if math.Round(pos.Y) != math.Round(dst.Y) {
		if pos.Y < dst.Y {
			step.Y = 1
		} else {
			step.Y = -1
		}
	}
	return step
}
