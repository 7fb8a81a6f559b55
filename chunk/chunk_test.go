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

package chunk

import (
	"testing"

	"github.com/owengage/goanvil/nbt"
)

func singleEntrySection(y int32, name string) nbt.Compound {
	return nbt.Compound{
		"Y": nbt.Byte(y),
		"block_states": nbt.Compound{
			"palette": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
				nbt.Compound{"Name": nbt.String(name)},
			}},
		},
	}
}

func TestDecodeCurrentSingleEntryPalette(t *testing.T) {
	root := nbt.Compound{
		"DataVersion": nbt.Int(2860),
		"Status":      nbt.String("full"),
		"sections": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
			singleEntrySection(0, "minecraft:stone"),
		}},
	}
	c, err := DecodeValue(root)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	if c.Format != FormatCurrent {
		t.Fatalf("Format = %v, want FormatCurrent", c.Format)
	}
	for _, coord := range [][3]int{{0, 0, 0}, {15, 15, 15}, {3, 8, 12}} {
		b, ok, err := c.Block(coord[0], coord[1], coord[2])
		if err != nil {
			t.Fatalf("Block%v: %v", coord, err)
		}
		if !ok || b.Name != "minecraft:stone" {
			t.Fatalf("Block%v = %v, %v, want minecraft:stone", coord, b, ok)
		}
	}
}

func TestSectionYRangeAcceptedAndRejected(t *testing.T) {
	root := nbt.Compound{
		"DataVersion": nbt.Int(2860),
		"sections": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
			singleEntrySection(-4, "minecraft:bedrock"),
			singleEntrySection(19, "minecraft:air"),
			singleEntrySection(20, "minecraft:should_be_dropped"),
			singleEntrySection(-5, "minecraft:should_be_dropped"),
		}},
	}
	c, err := DecodeValue(root)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	if _, ok := c.Tower.Section(-4); !ok {
		t.Fatal("section Y=-4 should be accepted")
	}
	if _, ok := c.Tower.Section(19); !ok {
		t.Fatal("section Y=19 should be accepted")
	}
	if _, ok := c.Tower.Section(20); ok {
		t.Fatal("section Y=20 should be rejected")
	}
	if _, ok := c.Tower.Section(-5); ok {
		t.Fatal("section Y=-5 should be rejected")
	}
	if _, ok, _ := c.Block(0, 20*16, 0); ok {
		t.Fatal("Block at world Y in a rejected section should report not found")
	}
}

func TestPaletteBitsBoundaries(t *testing.T) {
	cases := map[int]int{1: 4, 16: 4, 17: 5}
	for n, want := range cases {
		if got := paletteBits(n); got != want {
			t.Fatalf("paletteBits(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestBlockEncodedExcludesWaterloggedAndPowered(t *testing.T) {
	b := NewBlock("minecraft:oak_fence", map[string]string{
		"waterlogged": "true",
		"north":       "true",
		"powered":     "false",
	})
	got := b.Encoded()
	want := "minecraft:oak_fence|north=true"
	if got != want {
		t.Fatalf("Encoded() = %q, want %q", got, want)
	}
	if got, ok := b.Properties()["waterlogged"]; !ok || got != "true" {
		t.Fatalf("Properties()[waterlogged] = %q, %v, want true, true", got, ok)
	}
}

func TestBlockEncodedAlwaysHasTrailingPipe(t *testing.T) {
	bare := NewBlock("minecraft:stone", nil)
	if got, want := bare.Encoded(), "minecraft:stone|"; got != want {
		t.Fatalf("Encoded() = %q, want %q", got, want)
	}

	filteredOnly := NewBlock("minecraft:oak_fence", map[string]string{
		"waterlogged": "true",
		"powered":     "false",
	})
	if got, want := filteredOnly.Encoded(), "minecraft:oak_fence|"; got != want {
		t.Fatalf("Encoded() = %q, want %q", got, want)
	}
}

func TestVersionDispatchCurrentVsLegacy(t *testing.T) {
	current := nbt.Compound{
		"DataVersion": nbt.Int(2860),
		"sections": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
			singleEntrySection(4, "minecraft:stone"),
		}},
	}
	c1, err := DecodeValue(current)
	if err != nil {
		t.Fatalf("DecodeValue(current): %v", err)
	}
	if c1.Format != FormatCurrent {
		t.Fatalf("Format = %v, want FormatCurrent", c1.Format)
	}

	legacy := nbt.Compound{
		"Level": nbt.Compound{
			"Sections": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
				nbt.Compound{
					"Y": nbt.Byte(4),
					"Palette": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
						nbt.Compound{"Name": nbt.String("minecraft:stone")},
					}},
				},
			}},
		},
	}
	c2, err := DecodeValue(legacy)
	if err != nil {
		t.Fatalf("DecodeValue(legacy): %v", err)
	}
	if c2.Format != FormatLegacy {
		t.Fatalf("Format = %v, want FormatLegacy", c2.Format)
	}
	b, ok, err := c2.Block(0, 64, 0)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if !ok || b.Name != "minecraft:stone" {
		t.Fatalf("Block = %v, %v, want minecraft:stone", b, ok)
	}
}

func TestPreFlatteningUnknownID(t *testing.T) {
	blocks := make([]int8, 4096)
	data := make([]int8, 2048)
	blocks[0] = 99 // unmapped id
	root := nbt.Compound{
		"Level": nbt.Compound{
			"Sections": nbt.List{ElemTag: nbt.TagCompound, Items: []nbt.Value{
				nbt.Compound{
					"Y":      nbt.Byte(0),
					"Blocks": nbt.ByteArray(blocks),
					"Data":   nbt.ByteArray(data),
				},
			}},
		},
	}
	c, err := DecodeValue(root)
	if err != nil {
		t.Fatalf("DecodeValue: %v", err)
	}
	if c.Format != FormatPreFlattening {
		t.Fatalf("Format = %v, want FormatPreFlattening", c.Format)
	}
	b, ok, err := c.Block(0, 0, 0)
	if err != nil {
		t.Fatalf("Block: %v", err)
	}
	if !ok || b.Name != "minecraft:unknown_legacy_99" {
		t.Fatalf("Block = %v, %v, want minecraft:unknown_legacy_99", b, ok)
	}
}
