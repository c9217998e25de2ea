package runtime

import "github.com/maximvlas/flsgo/internal/value"

// Heap is the interpreter's object-allocation tracker. Go's tracing
// collector makes manual freeing moot; what the tracker keeps is the
// discipline that every heap object is registered through TrackFunction
// or TrackNative, which record it on an object list whose length is the
// live count. That gives the interpreter a single place to report how many
// heap objects are live, without pretending to manage memory Go already
// manages.
type Heap struct {
	objects []Obj
}

// Obj is any heap-allocated runtime object the Heap tracks: functions
// and natives. Strings are deliberately absent — they are owned by the
// intern table, which holds the single canonical copy of each, so the
// heap never sees them. Obj is a separate, narrower interface so the
// heap only accepts reference types, not the unboxed Nil/Bool/Number.
type Obj interface {
	value.Value
	objMarker()
}

// objFunction/objNative adapt a *value.FunctionObj / *value.NativeObj
// for Heap bookkeeping. The value package's struct types stay the single
// source of truth for field layout; this file only tracks the pointers
// they produce.
type objFunction struct{ *value.FunctionObj }
type objNative struct{ *value.NativeObj }

func (objFunction) objMarker() {}
func (objNative) objMarker()   {}

// NewHeap creates an empty object heap.
func NewHeap() *Heap {
	return &Heap{}
}

// TrackFunction and TrackNative register an already-constructed object
// with the heap. They return the same pointer unchanged, so call sites
// can wrap a construction expression:
//
//	fn := heap.TrackFunction(&value.FunctionObj{Name: name, Params: params, Body: body})
func (h *Heap) TrackFunction(f *value.FunctionObj) *value.FunctionObj {
	h.objects = append(h.objects, objFunction{f})
	return f
}

func (h *Heap) TrackNative(n *value.NativeObj) *value.NativeObj {
	h.objects = append(h.objects, objNative{n})
	return n
}

// Live returns the number of objects currently tracked on the heap.
func (h *Heap) Live() int {
	return len(h.objects)
}
