package clamper

import (
	"github.com/iotaledger/clamp.go/constraints"
	"github.com/iotaledger/clamp.go/stringify"
)

// UpperBound is a Clamper for the range (-INF .. max].
type UpperBound[T constraints.Float] struct {
	max T
}

func newUpperBound[T constraints.Float](maximum T) (Clamper[T], error) {
	if err := validateBound("maximum", maximum); err != nil {
		return nil, err
	}

	return UpperBound[T]{max: maximum}, nil
}

// Clamp returns the smaller one of the bound and the value.
func (u UpperBound[T]) Clamp(value T) T {
	return min(u.max, value)
}

// AtLeast returns a ClosedRange from minimum to the existing upper bound.
func (u UpperBound[T]) AtLeast(minimum T) (Clamper[T], error) {
	if err := validateBound("minimum", minimum); err != nil {
		return nil, err
	}

	return newClosedRange(minimum, u.max)
}

// AtMost returns an UpperBound with the tighter one of both upper bounds.
func (u UpperBound[T]) AtMost(maximum T) (Clamper[T], error) {
	if err := validateBound("maximum", maximum); err != nil {
		return nil, err
	}

	return newUpperBound(u.Clamp(maximum))
}

// Bounds returns negative infinity and the upper bound.
func (u UpperBound[T]) Bounds() (minimum T, maximum T) {
	return infinity[T](-1), u.max
}

// String returns a human readable version of the UpperBound.
func (u UpperBound[T]) String() string {
	return stringify.Struct("UpperBound",
		stringify.NewStructField("max", u.max),
	)
}

func (u UpperBound[T]) isClamper() {}

// code contract (make sure the type implements all required methods).
var _ Clamper[float64] = UpperBound[float64]{}
