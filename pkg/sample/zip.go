package sample

import (
	"context"

	"shrinktree/pkg/cause"
	"shrinktree/pkg/lazy"
)

// Pair is the point-wise combination of two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip is ZipWith specialized to pairing.
func Zip[A, B any](left Sample[A], right Sample[B]) Sample[Pair[A, B]] {
	return ZipWith(left, right, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// ZipWith combines two trees into one whose shrink sequence is the lazy
// cross-product of the inputs' shrink sequences, letting a composite value
// shrink along either dimension independently. Both sides are pulled
// concurrently per step. When one side runs out, its last seen candidate
// (or its base value, if it never produced one) stands in, so the other
// side's remaining candidates are still explored rather than truncated.
// Simultaneous failures combine via cause.BothOf; a lone failure is
// forwarded as-is.
func ZipWith[A, B, C any](left Sample[A], right Sample[B], combine func(A, B) C) Sample[C] {
	return Sample[C]{
		Value:  combine(left.Value, right.Value),
		Shrink: zipStep(left, right, combine, zipState[A, B]{}, left.Shrink, right.Shrink),
	}
}

// zipState is carried across pulls of the combined shrink sequence.
// leftDone/rightDone record that the matching side's base-value pairing
// has been spoken for; lastLeft/lastRight remember the most recent
// candidate each side produced.
type zipState[A, B any] struct {
	leftDone  bool
	rightDone bool
	lastLeft  *Sample[A]
	lastRight *Sample[B]
}

func zipStep[A, B, C any](
	left Sample[A],
	right Sample[B],
	combine func(A, B) C,
	st zipState[A, B],
	ls lazy.Seq[Sample[A]],
	rs lazy.Seq[Sample[B]],
) lazy.Seq[Sample[C]] {
	return func(ctx context.Context) lazy.Take[Sample[C]] {
		lt, rt := lazy.PullBoth(ctx, ls, rs)

		switch {
		case lt.IsFail() && rt.IsFail():
			return lazy.TakeFail[Sample[C]](cause.BothOf(lt.Cause(), rt.Cause()))

		case lt.IsFail():
			return lazy.TakeFail[Sample[C]](lt.Cause())

		case rt.IsFail():
			return lazy.TakeFail[Sample[C]](rt.Cause())

		case lt.IsValue() && rt.IsValue():
			l, r := lt.Value(), rt.Value()
			st.lastLeft, st.lastRight = &l, &r
			return lazy.TakeValue(
				ZipWith(l, r, combine),
				zipStep(left, right, combine, st, lt.Rest(), rt.Rest()),
			)

		case lt.IsValue():
			// Right exhausted: pair the new left candidate against the
			// last known right, or against right's base value if right
			// never produced one.
			l := lt.Value()
			var out Sample[C]
			if st.lastRight != nil {
				out = ZipWith(l, *st.lastRight, combine)
			} else {
				out = Map(l, func(a A) C { return combine(a, right.Value) })
			}
			st.lastLeft = &l
			st.rightDone = true
			return lazy.TakeValue(
				out,
				zipStep(left, right, combine, st, lt.Rest(), lazy.Empty[Sample[B]]()),
			)

		case rt.IsValue():
			r := rt.Value()
			var out Sample[C]
			if st.lastLeft != nil {
				out = ZipWith(*st.lastLeft, r, combine)
			} else {
				out = Map(r, func(b B) C { return combine(left.Value, b) })
			}
			st.lastRight = &r
			st.leftDone = true
			return lazy.TakeValue(
				out,
				zipStep(left, right, combine, st, lazy.Empty[Sample[A]](), rt.Rest()),
			)

		default:
			// Both ended: emit each side's outstanding base-value pairing
			// once, then terminate.
			switch {
			case !st.leftDone && st.lastRight != nil:
				st.leftDone = true
				out := Map(*st.lastRight, func(b B) C { return combine(left.Value, b) })
				return lazy.TakeValue(
					out,
					zipStep(left, right, combine, st, lazy.Empty[Sample[A]](), lazy.Empty[Sample[B]]()),
				)
			case !st.rightDone && st.lastLeft != nil:
				st.rightDone = true
				out := Map(*st.lastLeft, func(a A) C { return combine(a, right.Value) })
				return lazy.TakeValue(
					out,
					zipStep(left, right, combine, st, lazy.Empty[Sample[A]](), lazy.Empty[Sample[B]]()),
				)
			default:
				return lazy.TakeEnd[Sample[C]]()
			}
		}
	}
}
