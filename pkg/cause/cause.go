// Package cause models the failure channel of lazy computations as a small
// algebra: leaf errors plus an associative Both combinator. When two
// concurrently advanced branches fail in the same step their causes are
// combined, never collapsed to whichever arrived first, so no diagnostic
// evidence is dropped.
package cause

import (
	"fmt"
)

// Cause carries failure evidence out of a lazy computation. It is a closed
// sum: Leaf wraps a single underlying error, Both pairs two causes that
// were observed in the same step.
type Cause interface {
	error
	sealed()
}

// Leaf is a single underlying error.
type Leaf struct {
	Err error
}

// Both pairs two causes that failed in the same step. Combination is
// associative; consumers that only want the flat set of errors should use
// Flatten rather than walking the pair structure.
type Both struct {
	Left  Cause
	Right Cause
}

// Fail wraps err as a Cause. A nil error yields a nil Cause, and an error
// that already is a Cause is returned unchanged.
func Fail(err error) Cause {
	if err == nil {
		return nil
	}
	if c, ok := err.(Cause); ok {
		return c
	}
	return Leaf{Err: err}
}

// Failf builds a leaf cause from a format string.
func Failf(format string, args ...any) Cause {
	return Leaf{Err: fmt.Errorf(format, args...)}
}

// BothOf combines two causes, absorbing nils on either side.
func BothOf(left, right Cause) Cause {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	return Both{Left: left, Right: right}
}

// Flatten returns the leaf errors of c in left-to-right order.
func Flatten(c Cause) []error {
	switch c := c.(type) {
	case Leaf:
		return []error{c.Err}
	case Both:
		return append(Flatten(c.Left), Flatten(c.Right)...)
	}
	return nil
}

func (l Leaf) Error() string { return l.Err.Error() }

// Unwrap supports errors.Is and errors.As through the leaf.
func (l Leaf) Unwrap() error { return l.Err }

func (l Leaf) sealed() {}

func (b Both) Error() string { return b.Left.Error() + "; " + b.Right.Error() }

// Unwrap supports errors.Is and errors.As across both branches.
func (b Both) Unwrap() []error { return []error{b.Left, b.Right} }

func (b Both) sealed() {}
