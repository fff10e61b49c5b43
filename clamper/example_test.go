package clamper_test

import (
	"errors"
	"fmt"

	"github.com/iotaledger/clamp.go/clamper"
)

func ExampleAtLeast() {
	nonNegative, err := clamper.AtLeast(0.0)
	if err != nil {
		panic(err)
	}

	fmt.Println(nonNegative.Clamp(-4.2), nonNegative.Clamp(4.2))
	// Output: 0 4.2
}

func ExampleWithin() {
	percent := clamper.MustWithin(100.0, 0)

	fmt.Println(percent.Clamp(-1), percent.Clamp(50), percent.Clamp(150))
	// Output: 0 50 100
}

func ExampleClamper_AtMost() {
	volume := clamper.Must(clamper.MustAtLeast(0.0).AtMost(11))

	fmt.Println(volume.Clamp(12))
	fmt.Println(volume)
	// Output:
	// 11
	// ClosedRange {
	//     min: 0
	//     max: 11
	// }
}

func ExampleClamper_AtMost_contradiction() {
	_, err := clamper.MustAtLeast(10.0).AtMost(5)

	fmt.Println(errors.Is(err, clamper.ErrContradictoryBounds))
	// Output: true
}
