//go:build stacktrace

package ierrors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithMessagefStacktrace(t *testing.T) {
	var errWithStacktrace *errorWithStacktrace

	// sentinel errors never carry a stacktrace
	errSentinel := New("sentinel")
	require.False(t, As(errSentinel, &errWithStacktrace))

	err1 := WithMessagef(errSentinel, "value %d", 1)
	require.ErrorAs(t, err1, &errWithStacktrace)
	require.True(t, Is(err1, errSentinel))

	// wrapping again must not add a second stacktrace
	err2 := WithMessagef(err1, "value %d", 2)
	require.True(t, Is(err2, errSentinel))
	require.Equal(t, 1, strings.Count(err2.Error(), "github.com/iotaledger/clamp.go/ierrors.TestWithMessagefStacktrace"))
}
