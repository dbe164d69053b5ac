package behavior

// Vitals is an actor's hit points.
type Vitals struct {
	Current int
	Max     int
}

// Regen walks t and restores one hit point each time it elapses, up to Max.
func (v *Vitals) Regen(t *Timer) bool {
	if t.Walk() && v.Current < v.Max {
		v.Current++
		return true
	}
	return false
}

func (v *Vitals) Damage(n int) {
	v.Current -= n
	if v.Current < 0 {
		v.Current = 0
	}
}

func (v Vitals) Alive() bool {
	return v.Current > 0
}

// Ratio returns Current/Max in [0, 1].
func (v Vitals) Ratio() float64 {
	if v.Max <= 0 {
		return 0
	}
	r := float64(v.Current) / float64(v.Max)
	if r > 1 {
		return 1
	}
	return r
}
