package sample

import (
	"shrinktree/pkg/lazy"
)

// Integer matches the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float matches the built-in floating-point types.
type Float interface {
	~float32 | ~float64
}

// fractionalTolerance bounds recursive subdivision over continuous
// domains, standing in for the integral one-unit stopping rule.
const fractionalTolerance = 0.001

// Unfold builds a sample tree from a seed: step yields the node's value
// and the lazy seeds of its children, each unfolded the same way. This is
// the structural engine under the numeric shrinkers, exported for custom
// domains. The tree is as finite as the seed transition makes it.
func Unfold[S, A any](seed S, step func(S) (A, lazy.Seq[S])) Sample[A] {
	value, seeds := step(seed)
	return Sample[A]{
		Value:  value,
		Shrink: lazy.Map(seeds, func(next S) Sample[A] { return Unfold(next, step) }),
	}
}

// ShrinkIntegral builds a tree rooted at start whose candidates approach
// smallest by binary subdivision: each node's children enumerate midpoints
// walking from smallest up toward the node's value, halving the remaining
// gap each time, so a level holds a logarithmic number of candidates. A
// branch stops once the midpoint makes no progress, and a midpoint one
// unit from the bound re-roots at the bound itself. For unsigned types
// smallest must not exceed start.
func ShrinkIntegral[I Integer](smallest, start I) Sample[I] {
	return Unfold(start, func(max I) (I, lazy.Seq[I]) {
		return max, lazy.Unfold(smallest, func(min I) (I, I, bool) {
			var zero I
			mid := min + (max-min)/2
			switch {
			case mid == max:
				return zero, zero, false
			case absDiff(mid, max) == 1:
				return mid, max, true
			default:
				return mid, mid, true
			}
		})
	})
}

// ShrinkFractional is the ShrinkIntegral strategy over a continuous
// domain: subdivision of a branch halts once the midpoint is within
// fractionalTolerance of the current bound, which keeps every branch
// finite.
func ShrinkFractional[F Float](smallest, start F) Sample[F] {
	return Unfold(start, func(max F) (F, lazy.Seq[F]) {
		return max, lazy.Unfold(smallest, func(min F) (F, F, bool) {
			var zero F
			mid := min + (max-min)/2
			switch {
			case mid == max:
				return zero, zero, false
			case absFloat(max-mid) < fractionalTolerance:
				return mid, max, true
			default:
				return mid, mid, true
			}
		})
	})
}

func absDiff[I Integer](a, b I) I {
	if a > b {
		return a - b
	}
	return b - a
}

func absFloat[F Float](f F) F {
	if f < 0 {
		return -f
	}
	return f
}
