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

import "testing"

func TestEqualScalars(t *testing.T) {
	if !Equal(Byte(1), Byte(1)) {
		t.Fatal("Byte(1) != Byte(1)")
	}
	if Equal(Byte(1), Short(1)) {
		t.Fatal("Byte(1) == Short(1), different tags")
	}
}

func TestEqualCompoundIgnoresOrder(t *testing.T) {
	a := Compound{"x": Int(1), "y": Int(2)}
	b := Compound{"y": Int(2), "x": Int(1)}
	if !Equal(a, b) {
		t.Fatal("Compound fields should compare equal regardless of map order")
	}
}

func TestEqualCompoundDetectsDifference(t *testing.T) {
	a := Compound{"x": Int(1)}
	b := Compound{"x": Int(2)}
	if Equal(a, b) {
		t.Fatal("differing field values should not be equal")
	}
}

func TestEqualListOrderMatters(t *testing.T) {
	a := List{ElemTag: TagInt, Items: []Value{Int(1), Int(2)}}
	b := List{ElemTag: TagInt, Items: []Value{Int(2), Int(1)}}
	if Equal(a, b) {
		t.Fatal("list item order should matter")
	}
}

func TestEqualArrays(t *testing.T) {
	if !Equal(IntArray{1, 2, 3}, IntArray{1, 2, 3}) {
		t.Fatal("identical IntArrays should be equal")
	}
	if Equal(IntArray{1, 2, 3}, IntArray{1, 2}) {
		t.Fatal("IntArrays of different length should not be equal")
	}
}

func TestEqualNil(t *testing.T) {
	if !Equal(nil, nil) {
		t.Fatal("nil == nil")
	}
	if Equal(nil, Byte(0)) {
		t.Fatal("nil != Byte(0)")
	}
}
