package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSet(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewHashSet(func(v *Mock) string {
		return v.A
	})
	require.Nil(t, s.Add(&Mock{
		A: "aa",
		B: 22,
	}))
	require.NotNil(t, s.Add(&Mock{
		A: "aa",
		B: 22,
	}))
	require.Nil(t, s.Add(&Mock{
		A: "bb",
		B: 55,
	}))
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains(&Mock{
		A: "aa",
	}))
	require.Equal(t, true, s.Contains(&Mock{
		A: "bb",
	}))
	require.Equal(t, false, s.Contains(&Mock{
		A: "cc",
	}))
	require.Equal(t, 2, len(s.Entries()))
	require.Nil(t, s.Remove(&Mock{
		A: "bb",
	}))
	require.Equal(t, false, s.Contains(&Mock{
		A: "bb",
	}))
	require.Equal(t, 1, s.Size())
}

func TestHashSetManyEntries(t *testing.T) {
	s := NewHashSet(func(v int) int {
		return v % 50
	})
	for i := 0; i < 100; i++ {
		err := s.Add(i)
		if i < 50 {
			require.Nil(t, err)
		} else {
			require.ErrorIs(t, err, ErrValueExisted)
		}
	}
	require.Equal(t, 50, s.Size())
	require.Equal(t, true, s.Contains(75))
	require.Nil(t, s.Remove(75))
	require.Equal(t, false, s.Contains(25))
	require.ErrorIs(t, s.Remove(25), ErrValueNotExisted)
	require.Len(t, s.Entries(), 49)
}
