// Package sample implements the shrink tree of a property-based testing
// system: a generated value paired with a lazily produced sequence of
// simpler candidate replacements, the combinators that compose such trees,
// numeric shrinkers built by binary subdivision, and the depth-first
// search that walks a tree toward a minimal still-interesting value.
//
// A Sample is a pure value. Combinators never mutate their inputs and the
// shrink sequence is computed only as far as a consumer pulls it, so trees
// may be infinite in principle; the built-in numeric shrinkers are always
// finite.
package sample

import (
	"context"

	"shrinktree/pkg/lazy"
)

// Sample pairs a candidate value with the lazy sequence of strictly
// simpler candidates to try in its place. The type enforces no ordering;
// producing genuinely simpler children is the constructor's job.
type Sample[A any] struct {
	Value  A
	Shrink lazy.Seq[Sample[A]]
}

// New builds a sample from a value and its shrink sequence.
func New[A any](value A, shrink lazy.Seq[Sample[A]]) Sample[A] {
	return Sample[A]{Value: value, Shrink: shrink}
}

// NoShrink returns a leaf with no simpler candidates, for value types with
// no meaningful simplification.
func NoShrink[A any](value A) Sample[A] {
	return Sample[A]{Value: value, Shrink: lazy.Empty[Sample[A]]()}
}

// Map transforms every value in the tree, preserving its shape.
func Map[A, B any](s Sample[A], f func(A) B) Sample[B] {
	return Sample[B]{
		Value:  f(s.Value),
		Shrink: lazy.Map(s.Shrink, func(c Sample[A]) Sample[B] { return Map(c, f) }),
	}
}

// FlatMap substitutes a whole sample for the value. The result shrinks
// first through the substituted sample's own candidates and only then
// through the original candidates re-run through f. That order is part of
// the contract: the fresh inner shrinks are usually closer to a minimal
// example in the transformed domain.
func FlatMap[A, B any](s Sample[A], f func(A) Sample[B]) Sample[B] {
	inner := f(s.Value)
	remapped := lazy.Map(s.Shrink, func(c Sample[A]) Sample[B] { return FlatMap(c, f) })
	return Sample[B]{Value: inner.Value, Shrink: lazy.Concat(inner.Shrink, remapped)}
}

// Filter prunes the tree to values satisfying pred. The root itself may be
// pruned, so the result is a sequence rather than a single sample: the
// kept root with recursively filtered children, or, when the root is
// rejected, every surviving subtree found among its children, in order.
func Filter[A any](s Sample[A], pred func(A) bool) lazy.Seq[Sample[A]] {
	rec := func(c Sample[A]) lazy.Seq[Sample[A]] { return Filter(c, pred) }
	if !pred(s.Value) {
		return lazy.FlatMap(s.Shrink, rec)
	}
	return lazy.Single(Sample[A]{Value: s.Value, Shrink: lazy.FlatMap(s.Shrink, rec)})
}

// Traverse applies an effectful transformation to every value in the
// tree. A failure of f on the root value aborts immediately and is not
// retried; failures on children surface lazily as Fail signals when the
// transformed shrink sequence is pulled.
func Traverse[A, B any](ctx context.Context, s Sample[A], f func(context.Context, A) (B, error)) (Sample[B], error) {
	value, err := f(ctx, s.Value)
	if err != nil {
		return Sample[B]{}, err
	}
	shrink := lazy.MapCtx(s.Shrink, func(ctx context.Context, c Sample[A]) (Sample[B], error) {
		return Traverse(ctx, c, f)
	})
	return Sample[B]{Value: value, Shrink: shrink}, nil
}
