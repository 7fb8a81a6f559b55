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
	"errors"
	"fmt"

	"github.com/owengage/goanvil/nbt"
)

// Format identifies which of the three historical on-disk chunk
// layouts a Chunk was decoded from.
type Format int

const (
	FormatCurrent Format = iota
	FormatLegacy
	FormatPreFlattening
)

func (f Format) String() string {
	switch f {
	case FormatCurrent:
		return "current"
	case FormatLegacy:
		return "legacy"
	case FormatPreFlattening:
		return "pre-flattening"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnrecognizedFormat is returned when the root compound matches
// none of the three known chunk shapes.
var ErrUnrecognizedFormat = errors.New("chunk: unrecognized chunk format")

// Chunk is a decoded 16x(Y range)x16 block column.
type Chunk struct {
	DataVersion int32
	Format      Format
	Status      string
	Tower       *SectionTower
}

// Decode reads root's chunk NBT and dispatches to the matching format
// decoder based on DataVersion / section shape (§4.7).
func Decode(data []byte) (*Chunk, error) {
	root, err := nbt.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("chunk: %w", err)
	}
	return DecodeValue(root)
}

// DecodeValue dispatches an already-decoded root Compound, for callers
// that obtained it some other way (e.g. region.Region.Read followed by
// a caller-supplied decompressor).
func DecodeValue(root nbt.Compound) (*Chunk, error) {
	dataVersion, hasDV := readInt32(root, "DataVersion")

	if _, ok := root["sections"]; ok && hasDV {
		return decodeCurrent(root, dataVersion)
	}

	level, ok := root["Level"].(nbt.Compound)
	if !ok {
		return nil, ErrUnrecognizedFormat
	}
	sections, ok := level["Sections"].(nbt.List)
	if !ok {
		return nil, ErrUnrecognizedFormat
	}
	if sectionsUsePalette(sections) {
		return decodeLegacy(level, dataVersion)
	}
	return decodePreFlattening(level, dataVersion)
}

func sectionsUsePalette(sections nbt.List) bool {
	for _, item := range sections.Items {
		comp, ok := item.(nbt.Compound)
		if !ok {
			continue
		}
		if _, ok := comp["Palette"]; ok {
			return true
		}
		if _, ok := comp["Blocks"]; ok {
			return false
		}
	}
	// No populated section to inspect; default to the palette shape,
	// the more common case for an otherwise-empty pre-1.18 chunk.
	return true
}

// Block returns the palette entry at absolute (x,y,z), where x and z
// are chunk-local (0-15) and y is the world Y coordinate. The second
// return value reports whether a block was found: it is false when y
// falls outside the tower's range or the section at that Y is absent,
// neither of which is an error (§4.7).
func (c *Chunk) Block(x, y, z int) (*Block, bool, error) {
	secY := floorDiv(y, 16)
	sec, ok := c.Tower.Section(int32(secY))
	if !ok {
		return nil, false, nil
	}
	lx := floorMod(x, 16)
	ly := floorMod(y, 16)
	lz := floorMod(z, 16)
	b, err := sec.BlockAt(lx, ly, lz)
	if err != nil {
		return nil, false, fmt.Errorf("chunk: (%d,%d,%d): %w", x, y, z, err)
	}
	if b == nil {
		return nil, false, nil
	}
	return b, true, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

func readInt32(c nbt.Compound, name string) (int32, bool) {
	v, ok := c[name]
	if !ok {
		return 0, false
	}
	i, ok := v.(nbt.Int)
	if !ok {
		return 0, false
	}
	return int32(i), true
}

func readString(c nbt.Compound, name string) string {
	v, ok := c[name]
	if !ok {
		return ""
	}
	s, ok := v.(nbt.String)
	if !ok {
		return ""
	}
	return string(s)
}
