package sample

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shrinktree/pkg/cause"
	"shrinktree/pkg/lazy"
)

func failingShrink(c cause.Cause) lazy.Seq[Sample[int]] {
	return func(context.Context) lazy.Take[Sample[int]] {
		return lazy.TakeFail[Sample[int]](c)
	}
}

func add(a, b int) int { return a + b }

func TestZipWithPairsBothSidesPerStep(t *testing.T) {
	defer goleak.VerifyNone(t)

	left := node(10, node(5), node(7))
	right := node(100, node(50))
	z := ZipWith(left, right, add)

	require.Equal(t, 110, z.Value)
	// Step 1 pairs the fresh candidates; step 2 pairs the new left against
	// the last known right; step 3 pairs the left base value against the
	// last known right.
	require.Equal(t, []int{55, 57, 60}, childValues(t, z))
}

func TestZipWithLeafSide(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("right leaf substitutes base value", func(t *testing.T) {
		z := ZipWith(node(10, node(5), node(7)), node(100), add)
		// Exactly the non-empty side's count: no truncation, no doubling.
		require.Equal(t, []int{105, 107}, childValues(t, z))
	})

	t.Run("left leaf substitutes base value", func(t *testing.T) {
		z := ZipWith(node(10), node(100, node(50), node(75)), add)
		require.Equal(t, []int{60, 85}, childValues(t, z))
	})

	t.Run("both leaves", func(t *testing.T) {
		z := ZipWith(node(10), node(100), add)
		require.Empty(t, childValues(t, z))
	})
}

func TestZipWithSymmetricExhaustion(t *testing.T) {
	defer goleak.VerifyNone(t)

	left := node(1, node(0))
	right := node(10, node(5))
	z := ZipWith(left, right, add)

	// After both sides end in the same step, each side's base-value
	// pairing is emitted exactly once, left first.
	require.Equal(t, []int{5, 6, 10}, childValues(t, z))
}

func TestZipWithRecursesIntoPairs(t *testing.T) {
	defer goleak.VerifyNone(t)

	left := node(4, node(2, node(1)))
	right := node(40, node(20))
	z := ZipWith(left, right, add)

	// Top level: the fresh pair, then each base-value substitution.
	require.Equal(t, []int{22, 24, 42}, childValues(t, z))

	kids, err := lazy.Collect(context.Background(), z.Shrink)
	require.NoError(t, err)
	// The paired child keeps shrinking along the left dimension against
	// the remembered right candidate.
	if diff := cmp.Diff([]int{22, 21}, preorder(t, kids[0])); diff != "" {
		t.Errorf("paired subtree mismatch (-want +got):\n%s", diff)
	}
}

func TestZipProducesPairs(t *testing.T) {
	defer goleak.VerifyNone(t)

	z := Zip(node(1, node(0)), node(10, node(5)))
	require.Equal(t, Pair[int, int]{First: 1, Second: 10}, z.Value)

	kids, err := lazy.Collect(context.Background(), z.Shrink)
	require.NoError(t, err)
	require.Equal(t, Pair[int, int]{First: 0, Second: 5}, kids[0].Value)
}

func TestZipWithSimultaneousFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	leftCause := cause.Failf("left boom")
	rightCause := cause.Failf("right boom")
	left := New(1, failingShrink(leftCause))
	right := New(2, failingShrink(rightCause))

	z := ZipWith(left, right, add)
	_, err := lazy.Collect(context.Background(), z.Shrink)

	// Exactly one Both carrying both sides, never a lone failure.
	require.Error(t, err)
	both, ok := err.(cause.Both)
	require.True(t, ok, "expected cause.Both, got %T", err)
	require.Equal(t, leftCause, both.Left)
	require.Equal(t, rightCause, both.Right)
}

func TestZipWithOneSidedFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	leftCause := cause.Failf("left boom")
	left := New(1, failingShrink(leftCause))
	right := node(2, node(1))

	z := ZipWith(left, right, add)
	_, err := lazy.Collect(context.Background(), z.Shrink)

	// A lone failure is forwarded as-is, regardless of the other side.
	require.Equal(t, leftCause, err)
}
