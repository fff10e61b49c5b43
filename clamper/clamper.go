// Package clamper provides composable clampers that map any floating point value to the nearest value inside of a
// numeric range.
//
// A range is built from one of three shapes:
//
// Notation         Shape          Factory method
// [a .. +INF)      LowerBound     AtLeast
// (-INF .. b]      UpperBound     AtMost
// [a .. b]         ClosedRange    Within
//
// Clampers are immutable values. Narrowing a Clamper with AtLeast or AtMost returns a new instance and never widens
// the existing range, so a Clamper can be shared between goroutines freely.
package clamper

import (
	"math"

	"github.com/iotaledger/clamp.go/constraints"
	"github.com/iotaledger/clamp.go/ierrors"
	"github.com/iotaledger/clamp.go/lo"
)

var (
	// ErrInvalidBound is returned if a bound is NaN.
	ErrInvalidBound = ierrors.New("invalid bound")

	// ErrContradictoryBounds is returned if the lower bound of a range would exceed its upper bound.
	ErrContradictoryBounds = ierrors.New("contradictory bounds")
)

// Clamper maps values to the nearest value within its range.
type Clamper[T constraints.Float] interface {
	// Clamp returns the value closest to the given value that lies within the range. NaN is returned unchanged.
	Clamp(value T) T

	// AtLeast returns a Clamper whose range additionally excludes everything below minimum.
	AtLeast(minimum T) (Clamper[T], error)

	// AtMost returns a Clamper whose range additionally excludes everything above maximum.
	AtMost(maximum T) (Clamper[T], error)

	// Bounds returns the lower and upper bound of the range. Unbounded sides are reported as infinity.
	Bounds() (minimum T, maximum T)

	// String returns a human readable version of the Clamper.
	String() string

	// isClamper seals the interface, LowerBound, UpperBound and ClosedRange are the only implementations.
	isClamper()
}

// AtLeast returns a Clamper that clamps values to be greater than or equal to minimum.
func AtLeast[T constraints.Float](minimum T) (Clamper[T], error) {
	return newLowerBound(minimum)
}

// AtMost returns a Clamper that clamps values to be less than or equal to maximum.
func AtMost[T constraints.Float](maximum T) (Clamper[T], error) {
	return newUpperBound(maximum)
}

// Within returns a Clamper that clamps values to the closed range between a and b. The order of the arguments does not
// matter.
func Within[T constraints.Float](a, b T) (Clamper[T], error) {
	if err := validateBound("a", a); err != nil {
		return nil, err
	}
	if err := validateBound("b", b); err != nil {
		return nil, err
	}

	return newClosedRange(min(a, b), max(a, b))
}

// MustAtLeast is the panicking version of AtLeast.
func MustAtLeast[T constraints.Float](minimum T) Clamper[T] {
	return lo.PanicOnErr(AtLeast(minimum))
}

// MustAtMost is the panicking version of AtMost.
func MustAtMost[T constraints.Float](maximum T) Clamper[T] {
	return lo.PanicOnErr(AtMost(maximum))
}

// MustWithin is the panicking version of Within.
func MustWithin[T constraints.Float](a, b T) Clamper[T] {
	return lo.PanicOnErr(Within(a, b))
}

// Must unwraps the result of a narrowing call and panics if it failed.
//
//	clamper.Must(clamper.MustAtLeast(0.0).AtMost(1))
func Must[T constraints.Float](clamper Clamper[T], err error) Clamper[T] {
	return lo.PanicOnErr(clamper, err)
}

// validateBound returns an ErrInvalidBound naming the given parameter if the bound is NaN.
func validateBound[T constraints.Float](name string, bound T) error {
	if isNaN(bound) {
		return ierrors.WithMessagef(ErrInvalidBound, "%s must be a number, but got NaN", name)
	}

	return nil
}

func isNaN[T constraints.Float](value T) bool {
	return math.IsNaN(float64(value))
}

func infinity[T constraints.Float](sign int) T {
	return T(math.Inf(sign))
}
