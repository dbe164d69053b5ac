package behavior

import (
	"math/rand/v2"

	math2 "github.com/yohamta/donburi/features/math"
)

// MeleeConfig tunes a melee enemy. Durations are in frames.
type MeleeConfig struct {
	// WanderRadius bounds idle wandering around home; the enemy picks
	// points within half of it.
	WanderRadius float64
	// TargetRange is how close to home the target must be to be chased.
	TargetRange float64
	// AttackRangeSq is the squared distance at which an attack lands.
	AttackRangeSq  float64
	MoveDelay      int
	AttackDelay    int
	AttackDuration int
}

// MeleeOutcome is what the brain decided for one frame.
type MeleeOutcome struct {
	Step      math2.Vec2
	Moving    bool
	Attacking bool
	// Hit is set on the frame an attack starts.
	Hit bool
}

// Melee wanders around its home position, chases a target that comes close
// to home and attacks it when in range.
type Melee struct {
	Home math2.Vec2

	cfg     MeleeConfig
	next    math2.Vec2
	hasNext bool
	moving  bool

	moveDelay   *Timer
	attackDelay *Timer
	attack      *Timer
}

func NewMelee(home math2.Vec2, cfg MeleeConfig) *Melee {
	return &Melee{
		Home:        home,
		cfg:         cfg,
		moveDelay:   NewTimer(cfg.MoveDelay, WithKeepIterating(false)),
		attackDelay: NewTimer(cfg.AttackDelay, WithAutoStart(false), WithKeepIterating(false)),
		attack:      NewTimer(cfg.AttackDuration, WithAutoStart(false), WithKeepIterating(false)),
	}
}

// Destination returns the point the enemy is walking to, if any.
func (m *Melee) Destination() (math2.Vec2, bool) {
	return m.next, m.hasNext
}

// Update runs one frame given the enemy position and its target.
func (m *Melee) Update(self, target math2.Vec2, rng *rand.Rand) MeleeOutcome {
	var out MeleeOutcome
	out.Hit = m.canAttack(self, target)

	if (m.moveDelay.Walk() || m.moving) && !m.attack.Started() {
		if !m.moving {
			off := RandomCoordInRadius(rng, m.cfg.WanderRadius/2)
			m.next = math2.Vec2{X: m.Home.X + off.X, Y: m.Home.Y + off.Y}
			m.hasNext = true
		}
		if DistanceSq(m.Home, target) <= m.cfg.TargetRange*m.cfg.TargetRange {
			m.next = target
			m.hasNext = true
		}
		out.Step = m.goTo(self)
	}

	out.Moving = out.Step.X != 0 || out.Step.Y != 0
	out.Attacking = m.attack.Started() && !m.attack.Walk()
	return out
}

// Abandon drops the current destination and waits for the move delay
// again. Used when the body cannot reach it.
func (m *Melee) Abandon() {
	m.hasNext = false
	m.moving = false
	m.moveDelay.Start()
}

func (m *Melee) goTo(self math2.Vec2) math2.Vec2 {
	step := StepToward(self, m.next)
	if step.X == 0 && step.Y == 0 {
		m.hasNext = false
		m.moving = false
		m.moveDelay.Start()
		return step
	}
	m.moving = true
	return step
}

func (m *Melee) canAttack(self, target math2.Vec2) bool {
	if DistanceSq(self, target) > m.cfg.AttackRangeSq {
		return false
	}
	if !m.attackDelay.Started() {
		m.attackDelay.Start()
		if !m.attack.Started() {
			m.attack.Start()
		}
		return !m.attack.Walk()
	}
	m.attackDelay.Walk()
	return false
}
