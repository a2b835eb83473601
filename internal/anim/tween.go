package anim

import "math"

// TweenOptions controls what a tween does when it reaches its end.
type TweenOptions struct {
	// Loop replays the tween forever.
	Loop bool
	// Yoyo reverses direction at the end of each leg instead of jumping
	// back to the start. Without Loop the tween plays there and back once.
	Yoyo bool
}

// Tween interpolates between two values over a fixed duration. The zero
// value is a settled tween at zero.
type Tween struct {
	from, to float64
	duration float64
	elapsed  float64
	easing   Easing
	opts     TweenOptions

	value    float64
	active   bool
	reversed bool
}

// NewTween returns a tween already started with the given options.
func NewTween(from, to, duration float64, easing Easing, opts TweenOptions) *Tween {
	tw := &Tween{opts: opts}
	tw.Start(from, to, duration, easing)
	return tw
}

// SetOptions replaces the loop options. The current leg is kept.
func (tw *Tween) SetOptions(opts TweenOptions) {
	tw.opts = opts
}

// Start re-arms the tween from the beginning. A nil easing is linear. A
// non-positive duration jumps straight to the end.
func (tw *Tween) Start(from, to, duration float64, easing Easing) {
	if easing == nil {
		easing = Linear
	}
	tw.from, tw.to = from, to
	tw.duration = duration
	tw.easing = easing
	tw.elapsed = 0
	tw.reversed = false
	if !(duration > 0) {
		tw.value = to
		tw.active = false
		return
	}
	tw.value = from
	tw.active = true
}

// To starts a tween from the current value.
func (tw *Tween) To(to, duration float64, easing Easing) {
	tw.Start(tw.value, to, duration, easing)
}

// Advance moves the tween forward by dt seconds.
func (tw *Tween) Advance(dt float64) {
	if !tw.active || !validDelta(dt) {
		return
	}
	tw.elapsed += dt
	if tw.elapsed < tw.duration {
		tw.value = tw.at(tw.elapsed / tw.duration)
		return
	}
	if tw.opts.Loop {
		legs := math.Floor(tw.elapsed / tw.duration)
		tw.elapsed -= legs * tw.duration
		if tw.opts.Yoyo && math.Mod(legs, 2) == 1 {
			tw.swap()
		}
		tw.value = tw.at(tw.elapsed / tw.duration)
		return
	}
	if tw.opts.Yoyo && !tw.reversed && tw.elapsed < 2*tw.duration {
		tw.elapsed -= tw.duration
		tw.swap()
		tw.reversed = true
		tw.value = tw.at(tw.elapsed / tw.duration)
		return
	}
	if tw.opts.Yoyo && !tw.reversed {
		tw.swap()
		tw.reversed = true
	}
	tw.elapsed = tw.duration
	tw.value = tw.to
	tw.active = false
}

// Value returns the tween's current value.
func (tw *Tween) Value() float64 { return tw.value }

// From returns the value the current leg starts at.
func (tw *Tween) From() float64 { return tw.from }

// Target returns the value the current leg ends at.
func (tw *Tween) Target() float64 { return tw.to }

// Progress returns the linear progress of the current leg in [0, 1].
func (tw *Tween) Progress() float64 {
	if !(tw.duration > 0) {
		return 1
	}
	return clamp01(tw.elapsed / tw.duration)
}

// Settled reports whether the tween has finished.
func (tw *Tween) Settled() bool { return !tw.active }

func (tw *Tween) at(t float64) float64 {
	p := tw.easing(clamp01(t))
	return tw.from + p*(tw.to-tw.from)
}

func (tw *Tween) swap() {
	tw.from, tw.to = tw.to, tw.from
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
