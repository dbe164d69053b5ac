package behavior

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

var testMelee = MeleeConfig{
	WanderRadius:   40,
	TargetRange:    60,
	AttackRangeSq:  4,
	MoveDelay:      120,
	AttackDelay:    240,
	AttackDuration: 90,
}

func TestWalkableSides(t *testing.T) {
	tests := []struct {
		name    string
		blocked Sides
		want    Sides
	}{
		{"free", Sides{}, Sides{true, true, true, true}},
		{"wall left", Sides{Left: true}, Sides{Left: false, Right: true, Top: true, Bottom: true}},
		{"wedged horizontally", Sides{Left: true, Right: true}, Sides{true, true, true, true}},
		{"wall below", Sides{Bottom: true}, Sides{Left: true, Right: true, Top: true, Bottom: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WalkableSides(tt.blocked))
		})
	}
}

func TestSteer(t *testing.T) {
	all := Sides{true, true, true, true}

	dx, dy, facing := Steer(MoveInput{Left: true, Right: true, Down: true}, all, 2)
	assert.Equal(t, -2.0, dx)
	assert.Equal(t, 2.0, dy)
	assert.Equal(t, -1, facing)

	dx, dy, facing = Steer(MoveInput{Right: true}, Sides{Left: true}, 1)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.Zero(t, facing)
}

func TestRandomCoordInRadius(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 1000 {
		p := RandomCoordInRadius(rng, 20)
		assert.LessOrEqual(t, math.Hypot(p.X, p.Y), 20.8)
		assert.Equal(t, math.Round(p.X), p.X)
	}
}

func TestMeleeWandersNearHome(t *testing.T) {
	home := math2.Vec2{X: 100, Y: 100}
	far := math2.Vec2{X: 1000, Y: 1000}
	m := NewMelee(home, testMelee)
	rng := rand.New(rand.NewPCG(1, 2))

	pos := home
	moved := false
	for frame := 1; frame <= 5000; frame++ {
		out := m.Update(pos, far, rng)
		if frame < testMelee.MoveDelay {
			require.False(t, out.Moving, "frame %d", frame)
		}
		assert.False(t, out.Hit)
		pos.X += out.Step.X
		pos.Y += out.Step.Y
		moved = moved || out.Moving

		require.LessOrEqual(t, math.Abs(pos.X-home.X), 20.0)
		require.LessOrEqual(t, math.Abs(pos.Y-home.Y), 20.0)
	}
	assert.True(t, moved)
}

func TestMeleeChasesAndAttacks(t *testing.T) {
	home := math2.Vec2{}
	target := math2.Vec2{X: 30}
	m := NewMelee(home, testMelee)
	rng := rand.New(rand.NewPCG(3, 4))

	pos := home
	var hits []int
	attacking := 0
	for frame := 1; frame <= 800; frame++ {
		out := m.Update(pos, target, rng)
		if out.Hit {
			hits = append(hits, frame)
		}
		if out.Attacking {
			attacking++
			assert.Zero(t, out.Step, "no movement while attacking")
		}
		pos.X += out.Step.X
		pos.Y += out.Step.Y
		require.LessOrEqual(t, pos.X, target.X)
	}

	require.GreaterOrEqual(t, len(hits), 2)
	first := hits[0]
	assert.Equal(t, testMelee.MoveDelay+28, first, "walks 28px then strikes")
	assert.Equal(t, testMelee.AttackDelay+1, hits[1]-first)
	assert.Equal(t, target, pos, "closes the gap once the swing ends")
	assert.Positive(t, attacking)

	_, ok := m.Destination()
	assert.False(t, ok)
}

func TestMeleeIgnoresTargetAwayFromHome(t *testing.T) {
	home := math2.Vec2{}
	target := math2.Vec2{X: 61}
	m := NewMelee(home, testMelee)
	rng := rand.New(rand.NewPCG(5, 6))

	pos := home
	for range 2000 {
		out := m.Update(pos, target, rng)
		pos.X += out.Step.X
		pos.Y += out.Step.Y
		require.LessOrEqual(t, pos.X, 20.0)
	}
}

func TestMeleeAbandon(t *testing.T) {
	m := NewMelee(math2.Vec2{}, testMelee)
	rng := rand.New(rand.NewPCG(7, 8))
	target := math2.Vec2{X: 30}

	var out MeleeOutcome
	for range testMelee.MoveDelay {
		out = m.Update(math2.Vec2{}, target, rng)
	}
	require.True(t, out.Moving)

	m.Abandon()
	_, ok := m.Destination()
	assert.False(t, ok)

	out = m.Update(math2.Vec2{}, target, rng)
	assert.False(t, out.Moving, "waits for the move delay again")
}
