package clamper

import (
	"github.com/iotaledger/clamp.go/constraints"
	"github.com/iotaledger/clamp.go/stringify"
)

// LowerBound is a Clamper for the range [min .. +INF).
type LowerBound[T constraints.Float] struct {
	min T
}

func newLowerBound[T constraints.Float](minimum T) (Clamper[T], error) {
	if err := validateBound("minimum", minimum); err != nil {
		return nil, err
	}

	return LowerBound[T]{min: minimum}, nil
}

// Clamp returns the greater one of the bound and the value.
func (l LowerBound[T]) Clamp(value T) T {
	return max(l.min, value)
}

// AtLeast returns a LowerBound with the tighter one of both lower bounds.
func (l LowerBound[T]) AtLeast(minimum T) (Clamper[T], error) {
	if err := validateBound("minimum", minimum); err != nil {
		return nil, err
	}

	return newLowerBound(l.Clamp(minimum))
}

// AtMost returns a ClosedRange from the existing lower bound to maximum.
func (l LowerBound[T]) AtMost(maximum T) (Clamper[T], error) {
	if err := validateBound("maximum", maximum); err != nil {
		return nil, err
	}

	return newClosedRange(l.min, maximum)
}

// Bounds returns the lower bound and positive infinity.
func (l LowerBound[T]) Bounds() (minimum T, maximum T) {
	return l.min, infinity[T](1)
}

// String returns a human readable version of the LowerBound.
func (l LowerBound[T]) String() string {
	return stringify.Struct("LowerBound",
		stringify.NewStructField("min", l.min),
	)
}

func (l LowerBound[T]) isClamper() {}

// code contract (make sure the type implements all required methods).
var _ Clamper[float64] = LowerBound[float64]{}
