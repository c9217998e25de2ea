package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximvlas/flsgo/internal/value"
)

func TestHeapTracksAllocatedObjects(t *testing.T) {
	heap := NewHeap()
	require.Equal(t, 0, heap.Live())

	table := value.NewTable()
	heap.TrackFunction(&value.FunctionObj{Name: table.Copy([]byte("f"))})
	require.Equal(t, 1, heap.Live())

	heap.TrackNative(&value.NativeObj{Name: "clock", Arity: 0})
	require.Equal(t, 2, heap.Live())
}

func TestHeapTrackReturnsSamePointer(t *testing.T) {
	heap := NewHeap()
	fn := &value.FunctionObj{}
	got := heap.TrackFunction(fn)
	require.Same(t, fn, got)
}
