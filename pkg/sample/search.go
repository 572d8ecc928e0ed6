package sample

import (
	"context"

	"shrinktree/pkg/lazy"
)

// Search walks the tree depth-first and returns the flat, ordered trace of
// every value visited. An uninteresting root is emitted alone, with no
// descent. An interesting root is emitted and its children scanned only up
// to and including the first interesting one; each scanned child is
// searched recursively, so uninteresting siblings stay in the trace as
// diagnostic detours. Descent follows the first interesting child in
// generation order; when a generator emits children in an unusual order
// the result is minimal with respect to that order, not globally.
//
// The search is finite whenever the tree is finite, which holds for the
// built-in numeric shrinkers. Abandoned branches are never computed.
func Search[A any](s Sample[A], interesting func(A) bool) lazy.Seq[A] {
	if !interesting(s.Value) {
		return lazy.Single(s.Value)
	}
	prefix := lazy.TakeUntil(s.Shrink, func(c Sample[A]) bool { return interesting(c.Value) })
	rest := lazy.FlatMap(prefix, func(c Sample[A]) lazy.Seq[A] { return Search(c, interesting) })
	return lazy.Cons(s.Value, rest)
}

// Minimize drains Search, returning the full visited trace and the
// smallest still-interesting value found (the last interesting element of
// the trace). ok is false when the root itself is not interesting. The
// partial trace is returned even when the drain fails.
func Minimize[A any](ctx context.Context, s Sample[A], interesting func(A) bool) (min A, trace []A, ok bool, err error) {
	trace, err = lazy.Collect(ctx, Search(s, interesting))
	for _, v := range trace {
		if interesting(v) {
			min, ok = v, true
		}
	}
	return min, trace, ok, err
}
