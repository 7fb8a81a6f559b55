/*
Copyright 2024 The goanvil Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package nbt

import "fmt"

// Value is a dynamic NBT tree node. Every one of the thirteen tags has
// exactly one Value implementation, so the wire's type distinctions
// (in particular the three typed arrays versus a List of the
// corresponding scalar) survive a decode/re-encode round trip even
// when the caller never declares a static Go type for the data.
type Value interface {
	Tag() Tag
	// isValue seals the interface to this package's implementations.
	isValue()
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

func (Byte) Tag() Tag      { return TagByte }
func (Short) Tag() Tag     { return TagShort }
func (Int) Tag() Tag       { return TagInt }
func (Long) Tag() Tag      { return TagLong }
func (Float) Tag() Tag     { return TagFloat }
func (Double) Tag() Tag    { return TagDouble }
func (String) Tag() Tag    { return TagString }
func (ByteArray) Tag() Tag { return TagByteArray }
func (IntArray) Tag() Tag  { return TagIntArray }
func (LongArray) Tag() Tag { return TagLongArray }

func (Byte) isValue()      {}
func (Short) isValue()     {}
func (Int) isValue()       {}
func (Long) isValue()      {}
func (Float) isValue()     {}
func (Double) isValue()    {}
func (String) isValue()    {}
func (ByteArray) isValue() {}
func (IntArray) isValue()  {}
func (LongArray) isValue() {}

// List is an ordered, homogeneously-tagged sequence. An empty list may
// carry ElemTag == TagEnd (§4.3); it must still be accepted when
// deserializing regardless of the destination's expected element type.
type List struct {
	ElemTag Tag
	Items   []Value
}

func (List) Tag() Tag { return TagList }
func (List) isValue() {}

// Compound is an ordered-on-the-wire, unordered-in-memory set of named
// fields. Go map iteration order is not the wire order, which is why
// the round-trip law in §3.5 is stated as structural equality rather
// than byte identity.
type Compound map[string]Value

func (Compound) Tag() Tag { return TagCompound }
func (Compound) isValue() {}

// Equal reports whether a and b are structurally equal: same tags,
// same field sets, same values, recursively. Map/field ordering is
// irrelevant, matching the round-trip law of §3.5.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch av := a.(type) {
	case List:
		bv := b.(List)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case Compound:
		bv := b.(Compound)
		if len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			ov, ok := bv[k]
			if !ok || !Equal(v, ov) {
				return false
			}
		}
		return true
	case ByteArray:
		bv := b.(ByteArray)
		return equalSlice(av, bv)
	case IntArray:
		bv := b.(IntArray)
		return equalSlice(av, bv)
	case LongArray:
		bv := b.(LongArray)
		return equalSlice(av, bv)
	default:
		return a == b
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v Compound) String() string {
	return fmt.Sprintf("Compound(%d fields)", len(v))
}
