package value

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternIdentity(t *testing.T) {
	table := NewTable()

	a := table.Copy([]byte("hello"))
	b := table.Copy([]byte("hello"))

	require.Same(t, a, b, "equal-content strings must share one interned object")
	require.Equal(t, 1, table.Len())
}

func TestInternDistinctContent(t *testing.T) {
	table := NewTable()

	a := table.Copy([]byte("foo"))
	b := table.Copy([]byte("bar"))

	require.NotSame(t, a, b)
	require.Equal(t, 2, table.Len())
}

func TestInternTakeReusesExisting(t *testing.T) {
	table := NewTable()

	first := table.Copy([]byte("shared"))
	owned := []byte("shared")
	second := table.Take(owned)

	require.Same(t, first, second)
	require.Equal(t, 1, table.Len())
}

func TestInternFindByBytesMiss(t *testing.T) {
	table := NewTable()
	table.Copy([]byte("present"))

	_, found := table.FindByBytes([]byte("absent"), hashBytes([]byte("absent")))
	require.False(t, found)
}

func TestInternGrowsAndStaysConsistent(t *testing.T) {
	table := NewTable()

	var strs []*StringObj
	for i := 0; i < 500; i++ {
		strs = append(strs, table.Copy([]byte(fmt.Sprintf("key-%d", i))))
	}

	require.Equal(t, 500, table.Len())

	// Re-interning every key must still return the exact same objects
	// after several grow() calls have rehashed the table.
	for i, want := range strs {
		got := table.Copy([]byte(fmt.Sprintf("key-%d", i)))
		require.Same(t, want, got)
	}
}

func TestInternConcatenatedStringsAreIdentical(t *testing.T) {
	// "ab" and "a"+"b" must intern to the same object.
	table := NewTable()

	direct := table.Copy([]byte("ab"))
	concatenated := table.Copy([]byte("a" + "b"))

	require.True(t, Equals(direct, concatenated))
}
