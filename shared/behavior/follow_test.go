package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	math2 "github.com/yohamta/donburi/features/math"
)

var testFollow = Follow{Speed: 1.5, Acceleration: 0.01, Radius: 40, Leash: 120}

func TestFollowRestsInsideRadius(t *testing.T) {
	speed := 1.0
	pos := math2.Vec2{X: 100, Y: 100}

	got := testFollow.Step(pos, math2.Vec2{X: 130, Y: 100}, &speed)
	assert.Equal(t, pos, got)
	assert.Zero(t, speed)
}

func TestFollowAccelerates(t *testing.T) {
	var speed float64
	pos := math2.Vec2{X: 0, Y: 0}
	target := math2.Vec2{X: 100, Y: 0}

	pos = testFollow.Step(pos, target, &speed)
	assert.InDelta(t, 0.01, speed, 1e-9)
	assert.InDelta(t, 0.01, pos.X, 1e-9)
	assert.Zero(t, pos.Y)

	for i := 0; i < 300; i++ {
		pos = testFollow.Step(pos, target, &speed)
	}
	assert.InDelta(t, 60, pos.X, 1e-9, "stops at the edge of the radius")
}

func TestFollowSpeedCap(t *testing.T) {
	var speed float64
	var pos math2.Vec2
	for i := 0; i < 300; i++ {
		pos = testFollow.Step(pos, math2.Vec2{X: pos.X + 100}, &speed)
	}
	assert.Equal(t, 1.5, speed)
}

func TestFollowLeash(t *testing.T) {
	var speed float64
	got := testFollow.Step(math2.Vec2{}, math2.Vec2{X: 0, Y: 500}, &speed)
	assert.InDelta(t, 380, got.Y, 1e-9)
}

func TestClampView(t *testing.T) {
	tests := []struct {
		name   string
		center math2.Vec2
		want   math2.Vec2
	}{
		{"inside", math2.Vec2{X: 200, Y: 150}, math2.Vec2{X: 200, Y: 150}},
		{"top left", math2.Vec2{X: 0, Y: 0}, math2.Vec2{X: 160, Y: 90}},
		{"bottom right", math2.Vec2{X: 1000, Y: 1000}, math2.Vec2{X: 480, Y: 310}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampView(tt.center, 320, 180, 640, 400))
		})
	}

	small := ClampView(math2.Vec2{X: 5, Y: 5}, 320, 180, 200, 100)
	assert.Equal(t, math2.Vec2{X: 100, Y: 50}, small)
}
