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
	"github.com/owengage/goanvil/nbt"
)

const (
	currentMinSectionY = -4
	currentMaxSectionY = 19
)

// decodeCurrent handles the post-1.18 layout: sections at the root's
// "sections" key, palette and packed data inside each section's
// "block_states", signed section Y in [-4, 19].
func decodeCurrent(root nbt.Compound, dataVersion int32) (*Chunk, error) {
	sectionsList, _ := root["sections"].(nbt.List)
	tower := newSectionTower(currentMinSectionY, currentMaxSectionY)
	for _, item := range sectionsList.Items {
		comp, ok := item.(nbt.Compound)
		if !ok {
			continue
		}
		y, ok := readInt32Byte(comp, "Y")
		if !ok || y < currentMinSectionY || y > currentMaxSectionY {
			continue
		}
		sec := &Section{Y: y}
		if bs, ok := comp["block_states"].(nbt.Compound); ok {
			sec.Palette = decodePaletteList(bs["palette"])
			if la, ok := bs["data"].(nbt.LongArray); ok {
				sec.Data = longArrayToWords(la)
			}
		}
		if biomes, ok := comp["biomes"].(nbt.Compound); ok {
			sec.Biomes = decodeBiomeLayer(biomes)
		}
		tower.add(sec)
	}
	return &Chunk{
		DataVersion: dataVersion,
		Format:      FormatCurrent,
		Status:      readString(root, "Status"),
		Tower:       tower,
	}, nil
}

func decodePaletteList(v nbt.Value) []Block {
	list, ok := v.(nbt.List)
	if !ok {
		return nil
	}
	out := make([]Block, 0, len(list.Items))
	for _, item := range list.Items {
		comp, ok := item.(nbt.Compound)
		if !ok {
			continue
		}
		name := readString(comp, "Name")
		props := map[string]string{}
		if p, ok := comp["Properties"].(nbt.Compound); ok {
			for k, pv := range p {
				if s, ok := pv.(nbt.String); ok {
					props[k] = string(s)
				}
			}
		}
		out = append(out, NewBlock(name, props))
	}
	return out
}

func decodeBiomeLayer(comp nbt.Compound) *BiomeLayer {
	palList, ok := comp["palette"].(nbt.List)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(palList.Items))
	for _, item := range palList.Items {
		if s, ok := item.(nbt.String); ok {
			names = append(names, string(s))
		}
	}
	bl := &BiomeLayer{Palette: names}
	if la, ok := comp["data"].(nbt.LongArray); ok {
		bl.Data = longArrayToWords(la)
	}
	return bl
}

func longArrayToWords(v nbt.LongArray) []uint64 {
	out := make([]uint64, len(v))
	for i, n := range v {
		out[i] = uint64(n)
	}
	return out
}

func readInt32Byte(c nbt.Compound, name string) (int32, bool) {
	v, ok := c[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case nbt.Byte:
		return int32(n), true
	case nbt.Int:
		return int32(n), true
	default:
		return 0, false
	}
}
