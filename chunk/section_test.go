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

import "testing"

func TestSectionSingleEntryShortcutSkipsIndexing(t *testing.T) {
	sec := &Section{
		Y:       0,
		Palette: []Block{NewBlock("minecraft:stone", nil)},
	}
	b, err := sec.BlockAt(5, 5, 5)
	if err != nil {
		t.Fatalf("BlockAt: %v", err)
	}
	if b.Name != "minecraft:stone" {
		t.Fatalf("BlockAt = %v, want minecraft:stone", b)
	}
	if sec.indices != nil {
		t.Fatal("single-entry palette should never populate indices")
	}
}

func TestSectionPreFlattenedIndicesConsultedEvenWithNilData(t *testing.T) {
	// Pre-flattening sections populate indices directly and leave Data
	// nil; the single-entry shortcut must not apply just because Data
	// is empty.
	sec := &Section{
		Y: 0,
		Palette: []Block{
			NewBlock("minecraft:air", nil),
			NewBlock("minecraft:stone", nil),
		},
		indices: make([]uint64, 4096),
	}
	sec.indices[0] = 1
	b, err := sec.BlockAt(0, 0, 0)
	if err != nil {
		t.Fatalf("BlockAt: %v", err)
	}
	if b.Name != "minecraft:stone" {
		t.Fatalf("BlockAt(0,0,0) = %v, want minecraft:stone", b)
	}
	b, err = sec.BlockAt(1, 0, 0)
	if err != nil {
		t.Fatalf("BlockAt: %v", err)
	}
	if b.Name != "minecraft:air" {
		t.Fatalf("BlockAt(1,0,0) = %v, want minecraft:air", b)
	}
}

func TestSectionOutOfRangePaletteIndexErrors(t *testing.T) {
	sec := &Section{
		Y:       0,
		Palette: []Block{NewBlock("minecraft:air", nil)},
		indices: []uint64{7}, // only one palette entry, index 7 invalid
	}
	// Populate enough entries to cover the flat index for (0,0,0), the
	// rest default to zero.
	full := make([]uint64, 4096)
	full[0] = 7
	sec.indices = full
	if _, err := sec.BlockAt(0, 0, 0); err == nil {
		t.Fatal("expected out-of-range palette index error")
	}
}

func TestBiomeLayerSingleEntryShortcut(t *testing.T) {
	bl := &BiomeLayer{Palette: []string{"minecraft:plains"}}
	name, err := bl.At(2, 2, 2)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if name != "minecraft:plains" {
		t.Fatalf("At = %q, want minecraft:plains", name)
	}
}

func TestBiomeLayerMultiEntryUsesNoFourBitFloor(t *testing.T) {
	// 3 entries needs only 2 bits/index (MinBitsForNStates(3) == 2), not
	// the block-palette 4-bit floor. Index 0 (flat position (0,0,0))
	// encodes to 1 in the low 2 bits of the first word. Two words hold
	// all 64 entries at 2 bits; at 4 bits they would need four words,
	// and the decode would fail with ErrTooFewWords.
	bl := &BiomeLayer{
		Palette: []string{"minecraft:plains", "minecraft:desert", "minecraft:ocean"},
		Data:    []uint64{1, 0},
	}
	name, err := bl.At(0, 0, 0)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if name != "minecraft:desert" {
		t.Fatalf("At(0,0,0) = %q, want minecraft:desert", name)
	}
}

func TestSectionTowerRangeRejectsOutsideBounds(t *testing.T) {
	tower := newSectionTower(-4, 19)
	tower.add(&Section{Y: 0, Palette: []Block{NewBlock("minecraft:stone", nil)}})
	if _, ok := tower.Section(0); !ok {
		t.Fatal("expected section at y=0")
	}
	if _, ok := tower.Section(20); ok {
		t.Fatal("y=20 is outside the declared range, should not be found")
	}
	minY, maxY := tower.Range()
	if minY != -4 || maxY != 19 {
		t.Fatalf("Range() = (%d,%d), want (-4,19)", minY, maxY)
	}
}
