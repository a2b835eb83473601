package anim

import "github.com/tanema/gween/ease"

// Easing maps linear progress in [0, 1] to eased progress. Easings must
// map 0 to 0 and 1 to 1.
type Easing func(t float64) float64

// FromEase adapts a gween easing curve.
func FromEase(f ease.TweenFunc) Easing {
	return func(t float64) float64 {
		switch t {
		case 0:
			return 0
		case 1:
			return 1
		}
		return float64(f(float32(t), 0, 1, 1))
	}
}

// Linear is the identity easing. It stays in float64 so very long tweens
// keep their precision.
func Linear(t float64) float64 { return t }

var (
	InOutQuad  = FromEase(ease.InOutQuad)
	InOutCubic = FromEase(ease.InOutCubic)
	OutCubic   = FromEase(ease.OutCubic)
	OutBounce  = FromEase(ease.OutBounce)
	InOutSine  = FromEase(ease.InOutSine)
)
