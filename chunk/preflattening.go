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
	"fmt"
	"strconv"

	"github.com/owengage/goanvil/nbt"
)

const (
	preFlatteningMinSectionY = 0
	preFlatteningMaxSectionY = 15
)

// legacyBlockNames maps the common pre-1.13 numeric block IDs to their
// modern namespaced name, for sections that carry no palette at all
// (§4.7 item 3, a SUPPLEMENT derived from Minecraft's documented
// legacy ID table rather than from the original fastanvil, which never
// implemented this path). IDs absent here decode to
// "minecraft:unknown_legacy_<id>" rather than failing: an unrecognized
// numeric ID is not a structural error, only an unmapped name.
var legacyBlockNames = map[int]string{
	0:  "minecraft:air",
	1:  "minecraft:stone",
	2:  "minecraft:grass_block",
	3:  "minecraft:dirt",
	4:  "minecraft:cobblestone",
	5:  "minecraft:oak_planks",
	7:  "minecraft:bedrock",
	8:  "minecraft:water",
	9:  "minecraft:water",
	10: "minecraft:lava",
	11: "minecraft:lava",
	12: "minecraft:sand",
	13: "minecraft:gravel",
	14: "minecraft:gold_ore",
	15: "minecraft:iron_ore",
	16: "minecraft:coal_ore",
	17: "minecraft:oak_log",
	18: "minecraft:oak_leaves",
	24: "minecraft:sandstone",
	35: "minecraft:white_wool",
	41: "minecraft:gold_block",
	42: "minecraft:iron_block",
	56: "minecraft:diamond_ore",
	57: "minecraft:diamond_block",
	58: "minecraft:crafting_table",
	59: "minecraft:wheat",
	60: "minecraft:farmland",
	61: "minecraft:furnace",
	79: "minecraft:ice",
	80: "minecraft:snow_block",
	82: "minecraft:clay",
	89: "minecraft:glowstone",
}

func legacyBlockName(id int) string {
	if name, ok := legacyBlockNames[id]; ok {
		return name
	}
	return fmt.Sprintf("minecraft:unknown_legacy_%d", id)
}

// decodePreFlattening handles the oldest on-disk shape: a 4096-byte
// numeric block-ID array, an optional 2048-byte high-nibble "Add"
// array, and a 2048-byte "Data" nibble array of block damage/metadata,
// with no palette at all. A small per-section palette is synthesized
// while decoding, from the (id, metadata) pairs actually encountered.
func decodePreFlattening(level nbt.Compound, dataVersion int32) (*Chunk, error) {
	sectionsList, _ := level["Sections"].(nbt.List)
	tower := newSectionTower(preFlatteningMinSectionY, preFlatteningMaxSectionY)
	for _, item := range sectionsList.Items {
		comp, ok := item.(nbt.Compound)
		if !ok {
			continue
		}
		y, ok := readInt32Byte(comp, "Y")
		if !ok || y < preFlatteningMinSectionY || y > preFlatteningMaxSectionY {
			continue
		}
		sec, err := decodePreFlatteningSection(comp, y)
		if err != nil {
			return nil, fmt.Errorf("chunk: section y=%d: %w", y, err)
		}
		tower.add(sec)
	}
	return &Chunk{
		DataVersion: dataVersion,
		Format:      FormatPreFlattening,
		Status:      readString(level, "Status"),
		Tower:       tower,
	}, nil
}

func decodePreFlatteningSection(comp nbt.Compound, y int32) (*Section, error) {
	blocksArr, ok := comp["Blocks"].(nbt.ByteArray)
	if !ok || len(blocksArr) != 4096 {
		return nil, fmt.Errorf("missing or malformed Blocks array")
	}
	var addArr, dataArr nbt.ByteArray
	if a, ok := comp["Add"].(nbt.ByteArray); ok {
		addArr = a
	}
	if d, ok := comp["Data"].(nbt.ByteArray); ok {
		dataArr = d
	}

	palette := make([]Block, 0, 16)
	comboIndex := make(map[int]int, 16)
	indices := make([]uint64, 4096)

	for i := 0; i < 4096; i++ {
		low := int(uint8(blocksArr[i]))
		high := nibble(addArr, i)
		meta := nibble(dataArr, i)
		id := high<<8 | low
		combo := id<<4 | meta

		pIdx, ok := comboIndex[combo]
		if !ok {
			pIdx = len(palette)
			comboIndex[combo] = pIdx
			palette = append(palette, NewBlock(legacyBlockName(id), map[string]string{
				"data": strconv.Itoa(meta),
			}))
		}
		indices[i] = uint64(pIdx)
	}

	return &Section{Y: y, Palette: palette, indices: indices}, nil
}

// nibble extracts the 4-bit value for block i (0-4095) from a packed
// nibble array of length 2048 (two blocks per byte, low nibble first).
// A nil array (the Add array is optional) yields 0 for every index.
func nibble(arr nbt.ByteArray, i int) int {
	if arr == nil {
		return 0
	}
	b := uint8(arr[i/2])
	if i%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}
