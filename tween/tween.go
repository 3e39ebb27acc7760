package tween

import (
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

type Tweens struct {
	tweens []Tween
}

func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

type Target func(f float64, elapsed, duration time.Duration)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f, t.elapsed, t.Duration)
	}

	// return if finished
	return t.elapsed >= t.Duration
}

func LerpValue(target *float64, from, to float64) Target {
	return func(f float64, _, _ time.Duration) {
		*target = gmath.Lerp(from, to, f)
	}
}
