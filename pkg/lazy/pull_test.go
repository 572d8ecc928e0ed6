package lazy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shrinktree/pkg/cause"
)

func TestPullBothValues(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	lt, rt := PullBoth(ctx, FromSlice([]int{1, 2}), FromSlice([]string{"a"}))

	require.True(t, lt.IsValue())
	require.Equal(t, 1, lt.Value())
	require.True(t, rt.IsValue())
	require.Equal(t, "a", rt.Value())

	// The rests continue independently.
	lt2, rt2 := PullBoth(ctx, lt.Rest(), rt.Rest())
	require.True(t, lt2.IsValue())
	require.Equal(t, 2, lt2.Value())
	require.True(t, rt2.IsEnd())
}

func TestPullBothAsymmetricEnd(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	lt, rt := PullBoth(ctx, Empty[int](), FromSlice([]int{9}))
	require.True(t, lt.IsEnd())
	require.True(t, rt.IsValue())
	require.Equal(t, 9, rt.Value())
}

func TestPullBothObservesBothFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	failing := func(c cause.Cause) Seq[int] {
		return func(context.Context) Take[int] { return TakeFail[int](c) }
	}
	leftCause := cause.Failf("left boom")
	rightCause := cause.Failf("right boom")

	lt, rt := PullBoth(ctx, failing(leftCause), failing(rightCause))

	// Neither failure cancels or masks the other.
	require.True(t, lt.IsFail())
	require.Equal(t, leftCause, lt.Cause())
	require.True(t, rt.IsFail())
	require.Equal(t, rightCause, rt.Cause())
}
