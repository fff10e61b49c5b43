package clamper

import (
	"github.com/iotaledger/clamp.go/constraints"
	"github.com/iotaledger/clamp.go/ierrors"
	"github.com/iotaledger/clamp.go/stringify"
)

// ClosedRange is a Clamper for the range [min .. max]. Its lower bound never exceeds its upper bound.
type ClosedRange[T constraints.Float] struct {
	min T
	max T
}

func newClosedRange[T constraints.Float](minimum, maximum T) (Clamper[T], error) {
	if err := validateBound("minimum", minimum); err != nil {
		return nil, err
	}
	if err := validateBound("maximum", maximum); err != nil {
		return nil, err
	}

	// unreachable from Within, which orders its arguments first
	if minimum > maximum {
		return nil, ierrors.WithMessagef(ErrContradictoryBounds, "%v was not less than or equal to %v", minimum, maximum)
	}

	return ClosedRange[T]{min: minimum, max: maximum}, nil
}

// Clamp raises the value to the lower bound and then lowers it to the upper bound.
func (c ClosedRange[T]) Clamp(value T) T {
	return min(c.max, max(c.min, value))
}

// AtLeast moves the lower bound towards minimum without leaving the current range.
func (c ClosedRange[T]) AtLeast(minimum T) (Clamper[T], error) {
	if err := validateBound("minimum", minimum); err != nil {
		return nil, err
	}

	return newClosedRange(c.Clamp(minimum), c.max)
}

// AtMost moves the upper bound towards maximum without leaving the current range.
func (c ClosedRange[T]) AtMost(maximum T) (Clamper[T], error) {
	if err := validateBound("maximum", maximum); err != nil {
		return nil, err
	}

	return newClosedRange(c.min, c.Clamp(maximum))
}

// Bounds returns both bounds of the range.
func (c ClosedRange[T]) Bounds() (minimum T, maximum T) {
	return c.min, c.max
}

// String returns a human readable version of the ClosedRange.
func (c ClosedRange[T]) String() string {
	return stringify.Struct("ClosedRange",
		stringify.NewStructField("min", c.min),
		stringify.NewStructField("max", c.max),
	)
}

func (c ClosedRange[T]) isClamper() {}

// code contract (make sure the type implements all required methods).
var _ Clamper[float64] = ClosedRange[float64]{}
