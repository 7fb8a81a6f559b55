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
	legacyMinSectionY = 0
	legacyMaxSectionY = 15
)

// decodeLegacy handles the pre-1.18 layout (roughly 1.13-1.17.1):
// sections under "Level.Sections", palette and "BlockStates" at each
// section's top level, unsigned section Y in [0, 15], and the
// cross-word ("legacy") packed-index layout rather than the current
// format's tail-padded one (§9).
func decodeLegacy(level nbt.Compound, dataVersion int32) (*Chunk, error) {
	sectionsList, _ := level["Sections"].(nbt.List)
	tower := newSectionTower(legacyMinSectionY, legacyMaxSectionY)
	for _, item := range sectionsList.Items {
		comp, ok := item.(nbt.Compound)
		if !ok {
			continue
		}
		y, ok := readInt32Byte(comp, "Y")
		if !ok || y < legacyMinSectionY || y > legacyMaxSectionY {
			continue
		}
		sec := &Section{Y: y, legacyCross: true}
		sec.Palette = decodePaletteList(comp["Palette"])
		if la, ok := comp["BlockStates"].(nbt.LongArray); ok {
			sec.Data = longArrayToWords(la)
		}
		tower.add(sec)
	}
	return &Chunk{
		DataVersion: dataVersion,
		Format:      FormatLegacy,
		Status:      readString(level, "Status"),
		Tower:       tower,
	}, nil
}
