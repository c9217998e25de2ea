// Package value implements the runtime value model: a tagged union over
// Nil, Bool, Number, and heap object references, plus the object
// subtypes (interned String, user Function, Native).
//
// Value is modeled as a sealed Go interface rather than a hand-rolled
// tag+union struct. Go's native `==` over two Value interface values
// already implements the language's equality contract in full (value
// types compare by value, the pointer object types compare by
// identity), so Equals below is a thin, documented wrapper rather than
// a bespoke recursive comparator.
package value

import (
	"fmt"
	"strconv"
)

// Value is implemented by every runtime value variant. The unexported
// marker method seals the interface to this package's six concrete
// types, keeping the union closed.
type Value interface {
	valueTag()
	// Type returns the variant's type name.
	Type() string
}

// Nil is the absence of a value. There is exactly one Nil value; the
// zero value of the type already is it.
type Nil struct{}

func (Nil) valueTag()    {}
func (Nil) Type() string { return "nil" }

// NilValue is the canonical Nil instance, returned by operations whose
// result is "no value" (normal function return, void-effect natives).
var NilValue Value = Nil{}

// Bool is a boolean value.
type Bool bool

func (Bool) valueTag()    {}
func (Bool) Type() string { return "boolean" }

// Number is an IEEE-754 double, the language's only numeric type.
type Number float64

func (Number) valueTag()    {}
func (Number) Type() string { return "number" }

// StringObj is an interned, immutable byte string. Two StringObj values
// with equal content are always the same pointer — see
// internal/value/intern.go — so pointer identity doubles as content
// equality.
type StringObj struct {
	Bytes []byte
	Hash  uint32
}

func (*StringObj) valueTag()    {}
func (*StringObj) Type() string { return "string" }

// String returns the string's contents as a Go string.
func (s *StringObj) String() string { return string(s.Bytes) }

// FunctionObj is a user-defined function: a name, parameter list, and a
// reference to its body block. Functions do not capture free variables
// beyond the caller's environment at call time — see the call dispatch
// in internal/interp.
type FunctionObj struct {
	Name   *StringObj
	Params []*StringObj
	Body   any // *ast.Block; typed any to avoid an import cycle with internal/ast
}

func (*FunctionObj) valueTag()    {}
func (*FunctionObj) Type() string { return "function" }

// Arity is the function's declared parameter count.
func (f *FunctionObj) Arity() int { return len(f.Params) }

// NativeFn is a host-provided callable. It receives the already-evaluated
// arguments and returns a Value, calling the runtime's error reporter on
// invalid arity/types (reporter is injected so this package stays free
// of an import cycle onto internal/interp).
type NativeFn func(args []Value, reportError func(format string, a ...any)) Value

// NativeObj wraps a NativeFn with its declared arity. Arity -1 means
// variadic (the native validates its own argument count).
type NativeObj struct {
	Name  string
	Fn    NativeFn
	Arity int
}

func (*NativeObj) valueTag()    {}
func (*NativeObj) Type() string { return "native function" }

// BoolVal and NumberVal are convenience constructors; Nil/FunctionObj/
// NativeObj are constructed directly since they carry no, or
// heap-tracked, payload, and StringObj comes from the intern Table.
func BoolVal(b bool) Value      { return Bool(b) }
func NumberVal(n float64) Value { return Number(n) }

// IsNil, IsBool, IsNumber, IsString, IsFunction, IsNative report the
// dynamic variant of a Value.
func IsNil(v Value) bool      { _, ok := v.(Nil); return ok }
func IsBool(v Value) bool     { _, ok := v.(Bool); return ok }
func IsNumber(v Value) bool   { _, ok := v.(Number); return ok }
func IsString(v Value) bool   { _, ok := v.(*StringObj); return ok }
func IsFunction(v Value) bool { _, ok := v.(*FunctionObj); return ok }
func IsNative(v Value) bool   { _, ok := v.(*NativeObj); return ok }

// AsBool, AsNumber, AsString are unchecked extractors: callers must have
// already confirmed the variant with the matching predicate.
func AsBool(v Value) bool        { return bool(v.(Bool)) }
func AsNumber(v Value) float64   { return float64(v.(Number)) }
func AsString(v Value) *StringObj { return v.(*StringObj) }

// Truthy implements the language's truthiness rule: Nil and Bool(false)
// are falsey, everything else (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// Equals implements the language's structural equality contract.
// Different variants are never equal; Nil/Bool/Number compare by value;
// object variants compare by reference identity. This is exactly what
// Go's `==` already does for a sealed interface of comparable concrete
// types, so Equals exists mainly to pin the contract down in one place:
// equality never coerces — a number and a boolean are never equal.
func Equals(a, b Value) bool {
	return a == b
}

// Print renders v the way the `print` statement and the write/writeln
// natives do: nil; true/false; numbers with trailing zeros trimmed;
// strings raw; functions as "<fn NAME>"; natives as "<native fn>".
func Print(v Value) string {
	switch vv := v.(type) {
	case Nil:
		return "nil"
	case Bool:
		if vv {
			return "true"
		}
		return "false"
	case Number:
		return formatNumber(float64(vv))
	case *StringObj:
		return vv.String()
	case *FunctionObj:
		return fmt.Sprintf("<fn %s>", vv.Name.String())
	case *NativeObj:
		return "<native fn>"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders a number with trailing zeros trimmed (3.0 prints
// as "3", 3.5 prints as "3.5").
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
