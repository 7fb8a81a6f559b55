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

// TestRoundTripLaw exercises the structural-equality round-trip law of
// §3.5: decoding, re-encoding, and decoding again must produce a value
// structurally equal to the first decode, even though Go's map
// iteration order means the two encodings need not be byte-identical.
func TestRoundTripLaw(t *testing.T) {
	docs := [][]byte{
		byteRoundTripDoc(),
		{0x0A, 0x00, 0x00, 0x00}, // empty compound
	}
	for _, doc := range docs {
		first, err := Decode(doc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		reencoded, err := EncodeValue(first)
		if err != nil {
			t.Fatalf("EncodeValue: %v", err)
		}
		second, err := Decode(reencoded)
		if err != nil {
			t.Fatalf("Decode(re-encoded): %v", err)
		}
		if !Equal(first, second) {
			t.Fatalf("round trip not structurally equal: %v vs %v", first, second)
		}
	}
}

func TestRoundTripWithNestedStructures(t *testing.T) {
	root := Compound{
		"name": String("world"),
		"pos":  IntArray{1, -2, 3},
		"tags": List{ElemTag: TagString, Items: []Value{String("a"), String("b")}},
		"nested": Compound{
			"flag":   Byte(1),
			"scores": LongArray{10, 20, 30},
		},
	}
	data, err := EncodeValue(root)
	if err != nil {
		t.Fatalf("EncodeValue: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !Equal(root, got) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", got, root)
	}
}

func TestRoundTripViaMarshalStruct(t *testing.T) {
	type nested struct {
		Flag   int8    `nbt:"flag"`
		Scores []int64 `nbt:"scores"`
	}
	type world struct {
		Name   string  `nbt:"name"`
		Pos    []int32 `nbt:"pos"`
		Nested nested  `nbt:"nested"`
	}
	in := world{
		Name:   "world",
		Pos:    []int32{1, -2, 3},
		Nested: nested{Flag: 1, Scores: []int64{10, 20, 30}},
	}
	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out world
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Name != in.Name || out.Nested.Flag != in.Nested.Flag {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if len(out.Pos) != 3 || out.Pos[1] != -2 {
		t.Fatalf("Pos = %v", out.Pos)
	}
	if len(out.Nested.Scores) != 3 || out.Nested.Scores[2] != 30 {
		t.Fatalf("Nested.Scores = %v", out.Nested.Scores)
	}
}
