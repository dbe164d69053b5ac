package behavior

import (
	"math"

	"github.com/solarlune/resolv"
)

// MoveBody moves obj by dx then dy, stopping each axis at the first object
// carrying one of the blocking tags.
func MoveBody(obj *resolv.Object, dx, dy float64, blocking ...string) {
	if dx != 0 {
		obj.X += clampMove(obj, dx, 0, blocking)
	}
	if dy != 0 {
		obj.Y += clampMove(obj, 0, dy, blocking)
	}
	obj.Update()
}

// BlockedSides reports which neighbours of obj are closer than one pixel.
func BlockedSides(obj *resolv.Object, blocking ...string) Sides {
	return Sides{
		Left:   clampMove(obj, -1, 0, blocking) > -1,
		Right:  clampMove(obj, 1, 0, blocking) < 1,
		Top:    clampMove(obj, 0, -1, blocking) > -1,
		Bottom: clampMove(obj, 0, 1, blocking) < 1,
	}
}

// clampMove shortens a single-axis move to the gap in front of obj.
// Objects already overlapping obj are ignored so a wedged body can leave.
func clampMove(obj *resolv.Object, dx, dy float64, blocking []string) float64 {
	move := dx + dy
	check := obj.Check(dx, dy, blocking...)
	if check == nil {
		return move
	}
	for _, o := range check.ObjectsByTags(blocking...) {
		if o == obj || overlaps(obj, 0, 0, o) || !overlaps(obj, dx, dy, o) {
			continue
		}
		var gap float64
		switch {
		case dx > 0:
			gap = o.X - (obj.X + obj.W)
		case dx < 0:
			gap = o.X + o.W - obj.X
		case dy > 0:
			gap = o.Y - (obj.Y + obj.H)
		default:
			gap = o.Y + o.H - obj.Y
		}
		if move > 0 {
			move = math.Max(0, math.Min(move, gap))
		} else {
			move = math.Min(0, math.Max(move, gap))
		}
	}
	return move
}

func overlaps(obj *resolv.Object, dx, dy float64, o *resolv.Object) bool {
	return obj.X+dx < o.X+o.W && obj.X+dx+obj.W > o.X &&
		obj.Y+dy < o.Y+o.H && obj.Y+dy+obj.H > o.Y
}
