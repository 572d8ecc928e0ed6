package cause

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	base := errors.New("boom")

	c := Fail(base)
	require.IsType(t, Leaf{}, c)
	require.Equal(t, "boom", c.Error())
	require.True(t, errors.Is(c, base))

	require.Nil(t, Fail(nil))

	// An error that already is a Cause passes through unchanged.
	require.Equal(t, c, Fail(c))
}

func TestBothOfAbsorbsNil(t *testing.T) {
	c := Failf("only")

	require.Equal(t, c, BothOf(c, nil))
	require.Equal(t, c, BothOf(nil, c))
	require.Nil(t, BothOf(nil, nil))
}

func TestBothPreservesBothSides(t *testing.T) {
	left := errors.New("left boom")
	right := errors.New("right boom")

	c := BothOf(Fail(left), Fail(right))
	require.IsType(t, Both{}, c)
	require.True(t, errors.Is(c, left))
	require.True(t, errors.Is(c, right))
	require.Equal(t, "left boom; right boom", c.Error())
}

func TestFlattenIsAssociative(t *testing.T) {
	a, b, c := Failf("a"), Failf("b"), Failf("c")

	leftAssoc := BothOf(BothOf(a, b), c)
	rightAssoc := BothOf(a, BothOf(b, c))

	msgs := func(errs []error) []string {
		out := make([]string, len(errs))
		for i, e := range errs {
			out[i] = e.Error()
		}
		return out
	}

	require.Equal(t, []string{"a", "b", "c"}, msgs(Flatten(leftAssoc)))
	require.Equal(t, msgs(Flatten(leftAssoc)), msgs(Flatten(rightAssoc)))
}
