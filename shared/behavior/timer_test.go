package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkN(t *Timer, n int) (fired []int) {
	for i := 1; i <= n; i++ {
		if t.Walk() {
			fired = append(fired, i)
		}
	}
	return fired
}

func TestTimer(t *testing.T) {
	tests := []struct {
		name  string
		timer *Timer
		walks int
		want  []int
	}{
		{"iterating", NewTimer(3), 10, []int{3, 6, 9}},
		{"one shot", NewTimer(3, WithKeepIterating(false)), 10, []int{3}},
		{"not started", NewTimer(3, WithAutoStart(false)), 10, nil},
		{"single frame", NewTimer(1), 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walkN(tt.timer, tt.walks))
		})
	}
}

func TestTimerRestart(t *testing.T) {
	timer := NewTimer(4, WithAutoStart(false), WithKeepIterating(false))
	assert.False(t, timer.Started())

	timer.Start()
	walkN(timer, 2)
	timer.Start()
	assert.Equal(t, []int{4}, walkN(timer, 6), "start resets the count")
	assert.False(t, timer.Started())

	timer.Start()
	timer.Stop()
	assert.Nil(t, walkN(timer, 6))
}

func TestVitalsRegen(t *testing.T) {
	v := Vitals{Current: 1, Max: 3}
	timer := NewTimer(60)

	regen := 0
	for range 600 {
		if v.Regen(timer) {
			regen++
		}
	}
	assert.Equal(t, 2, regen)
	assert.Equal(t, 3, v.Current)
	assert.Equal(t, 1.0, v.Ratio())

	v.Damage(5)
	assert.Equal(t, 0, v.Current)
	assert.False(t, v.Alive())
	assert.Zero(t, Vitals{}.Ratio())
}

func TestProgressive(t *testing.T) {
	p := NewProgressive(1, 2, 90)
	assert.Equal(t, 1.0, p.Value())

	prev := p.Value()
	for range 45 {
		v := p.Walk(false)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
	assert.Less(t, prev, 1.5, "ease in starts slow")

	for range 100 {
		p.Walk(false)
	}
	assert.InDelta(t, 2.0, p.Value(), 1e-6)

	assert.Equal(t, 1.0, p.Walk(true))
	assert.Less(t, p.Walk(false), 1.01)
}
