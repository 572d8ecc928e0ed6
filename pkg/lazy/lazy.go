// Package lazy implements the pull-based lazy sequence the shrink tree is
// built on. A Seq is a thunk: pulling computes exactly one element, so a
// consumer that stops pulling computes nothing further; abandonment is
// the cancellation mechanism. Sequences may be infinite; exhaustion and
// failure are signaled through the closed Take sum rather than sentinel
// values.
//
// Combinators are package-level functions because Go methods cannot
// introduce type parameters.
package lazy

import (
	"context"

	"shrinktree/pkg/cause"
)

// Seq is a pull-based lazy sequence. A pull may suspend on ctx. A Seq is
// single-consumer per pull chain; the Takes it returns are immutable and
// freely shareable.
type Seq[A any] func(ctx context.Context) Take[A]

type takeKind int

const (
	takeValue takeKind = iota
	takeEnd
	takeFail
)

// Take is the result of pulling once: an element plus the rest of the
// sequence, the end of the sequence, or a failure. Exactly one of IsValue,
// IsEnd, and IsFail holds.
type Take[A any] struct {
	kind  takeKind
	value A
	rest  Seq[A]
	cause cause.Cause
}

// TakeValue signals one pulled element followed by rest.
func TakeValue[A any](value A, rest Seq[A]) Take[A] {
	return Take[A]{kind: takeValue, value: value, rest: rest}
}

// TakeEnd signals an exhausted sequence.
func TakeEnd[A any]() Take[A] {
	return Take[A]{kind: takeEnd}
}

// TakeFail signals a sequence that terminated with a failure.
func TakeFail[A any](c cause.Cause) Take[A] {
	return Take[A]{kind: takeFail, cause: c}
}

func (t Take[A]) IsValue() bool { return t.kind == takeValue }
func (t Take[A]) IsEnd() bool   { return t.kind == takeEnd }
func (t Take[A]) IsFail() bool  { return t.kind == takeFail }

// Value returns the pulled element. Meaningful only when IsValue.
func (t Take[A]) Value() A { return t.value }

// Rest returns the sequence after the pulled element. Meaningful only when
// IsValue.
func (t Take[A]) Rest() Seq[A] { return t.rest }

// Cause returns the failure. Meaningful only when IsFail.
func (t Take[A]) Cause() cause.Cause { return t.cause }

// Empty returns the empty sequence.
func Empty[A any]() Seq[A] {
	return func(context.Context) Take[A] { return TakeEnd[A]() }
}

// Single returns a one-element sequence.
func Single[A any](value A) Seq[A] {
	return Cons(value, Empty[A]())
}

// Cons prepends value to rest without forcing rest.
func Cons[A any](value A, rest Seq[A]) Seq[A] {
	return func(context.Context) Take[A] { return TakeValue(value, rest) }
}

// FromSlice returns a sequence over the elements of items.
func FromSlice[A any](items []A) Seq[A] {
	return func(context.Context) Take[A] {
		if len(items) == 0 {
			return TakeEnd[A]()
		}
		return TakeValue(items[0], FromSlice(items[1:]))
	}
}

// Unfold produces elements from successive seeds. step returns the next
// element, the next seed, and false once the sequence is finished. The
// seed transition runs only when the corresponding element is pulled, so
// unbounded unfolds are safe to construct.
func Unfold[S, A any](seed S, step func(S) (A, S, bool)) Seq[A] {
	return func(context.Context) Take[A] {
		value, next, ok := step(seed)
		if !ok {
			return TakeEnd[A]()
		}
		return TakeValue(value, Unfold(next, step))
	}
}

// Map transforms each element. End and Fail pass through.
func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	return func(ctx context.Context) Take[B] {
		t := s(ctx)
		switch {
		case t.IsFail():
			return TakeFail[B](t.Cause())
		case t.IsEnd():
			return TakeEnd[B]()
		}
		return TakeValue(f(t.Value()), Map(t.Rest(), f))
	}
}

// Concat yields every element of first, then every element of second. A
// failure in first short-circuits; second is never pulled in that case.
func Concat[A any](first, second Seq[A]) Seq[A] {
	return func(ctx context.Context) Take[A] {
		t := first(ctx)
		switch {
		case t.IsFail():
			return TakeFail[A](t.Cause())
		case t.IsEnd():
			return second(ctx)
		}
		return TakeValue(t.Value(), Concat(t.Rest(), second))
	}
}

// FlatMap substitutes a sequence for each element and concatenates the
// results in order.
func FlatMap[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	return func(ctx context.Context) Take[B] {
		t := s(ctx)
		switch {
		case t.IsFail():
			return TakeFail[B](t.Cause())
		case t.IsEnd():
			return TakeEnd[B]()
		}
		return Concat(f(t.Value()), FlatMap(t.Rest(), f))(ctx)
	}
}

// TakeUntil emits elements up to and including the first one satisfying
// pred, then ends. Nothing past the first match is ever pulled.
func TakeUntil[A any](s Seq[A], pred func(A) bool) Seq[A] {
	return func(ctx context.Context) Take[A] {
		t := s(ctx)
		switch {
		case t.IsFail():
			return TakeFail[A](t.Cause())
		case t.IsEnd():
			return TakeEnd[A]()
		}
		if pred(t.Value()) {
			return TakeValue(t.Value(), Empty[A]())
		}
		return TakeValue(t.Value(), TakeUntil(t.Rest(), pred))
	}
}

// Limit caps the sequence at n elements.
func Limit[A any](s Seq[A], n int) Seq[A] {
	return func(ctx context.Context) Take[A] {
		if n <= 0 {
			return TakeEnd[A]()
		}
		t := s(ctx)
		switch {
		case t.IsFail():
			return TakeFail[A](t.Cause())
		case t.IsEnd():
			return TakeEnd[A]()
		}
		return TakeValue(t.Value(), Limit(t.Rest(), n-1))
	}
}

// MapCtx applies an effectful transformation per element. The effect runs
// when the element is pulled; an error terminates the sequence with a Fail
// signal carrying that error.
func MapCtx[A, B any](s Seq[A], f func(context.Context, A) (B, error)) Seq[B] {
	return func(ctx context.Context) Take[B] {
		t := s(ctx)
		switch {
		case t.IsFail():
			return TakeFail[B](t.Cause())
		case t.IsEnd():
			return TakeEnd[B]()
		}
		b, err := f(ctx, t.Value())
		if err != nil {
			return TakeFail[B](cause.Fail(err))
		}
		return TakeValue(b, MapCtx(t.Rest(), f))
	}
}

// Collect drains s into a slice. It returns the elements pulled so far
// alongside the first failure or context error, if any.
func Collect[A any](ctx context.Context, s Seq[A]) ([]A, error) {
	var out []A
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		t := s(ctx)
		switch {
		case t.IsFail():
			return out, t.Cause()
		case t.IsEnd():
			return out, nil
		}
		out = append(out, t.Value())
		s = t.Rest()
	}
}

// ForEach pulls every element of s, invoking f on each. A non-nil error
// from f stops the drain and is returned.
func ForEach[A any](ctx context.Context, s Seq[A], f func(A) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := s(ctx)
		switch {
		case t.IsFail():
			return t.Cause()
		case t.IsEnd():
			return nil
		}
		if err := f(t.Value()); err != nil {
			return err
		}
		s = t.Rest()
	}
}
