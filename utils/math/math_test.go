package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivCeil(t *testing.T) {
	require.Equal(t, 0, DivCeil(0, 3))
	require.Equal(t, 1, DivCeil(3, 4))
	require.Equal(t, 2, DivCeil(4, 3))
	require.Equal(t, 134, DivCeil(400, 3))
}

func TestDivFloor(t *testing.T) {
	require.Equal(t, 0, DivFloor(3, 4))
	require.Equal(t, 1, DivFloor(6, 4))
	require.Equal(t, uint64(3), DivFloor[uint64](12, 4))
}
