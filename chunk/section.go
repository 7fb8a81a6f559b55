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
	"sync"

	"github.com/owengage/goanvil/packedbits"
)

// BiomeLayer is a section's 4x4x4 biome palette+data, the same shape
// as a block_states container but with a palette of biome names and
// fewer, coarser entries.
type BiomeLayer struct {
	Palette []string
	Data    []uint64

	mu      sync.Mutex
	indices []uint64
}

// At returns the biome name for a position given in quart coordinates
// (0-3 on each axis).
func (b *BiomeLayer) At(x, y, z int) (string, error) {
	if len(b.Palette) == 0 {
		return "", nil
	}
	if len(b.Data) == 0 {
		return b.Palette[0], nil
	}
	if err := b.ensureIndices(); err != nil {
		return "", err
	}
	flat := y*16 + z*4 + x
	if flat < 0 || flat >= len(b.indices) {
		return "", fmt.Errorf("chunk: biome index %d out of range", flat)
	}
	idx := b.indices[flat]
	if int(idx) >= len(b.Palette) {
		return "", fmt.Errorf("chunk: biome palette index %d out of range (palette size %d)", idx, len(b.Palette))
	}
	return b.Palette[idx], nil
}

func (b *BiomeLayer) ensureIndices() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.indices != nil {
		return nil
	}
	// Biomes have no 4-bit floor the way block palettes do (§4.7); width
	// is just enough bits to address the palette, minimum 1.
	bits := packedbits.MinBitsForNStates(len(b.Palette))
	if bits < 1 {
		bits = 1
	}
	idx, err := packedbits.Unpack(bits, 64, b.Data)
	if err != nil {
		return err
	}
	b.indices = idx
	return nil
}

// Section is one 16x16x16 cube within a chunk: a block palette and its
// packed index data, plus the analogous biome layer.
type Section struct {
	Y           int32
	Palette     []Block
	Data        []uint64
	Biomes      *BiomeLayer
	legacyCross bool // true for the pre-1.18 cross-word packing layout

	mu      sync.Mutex
	indices []uint64
}

// paletteBits is the current-format floor: at least 4 bits per index
// regardless of how few palette entries exist (§4.7, §8).
func paletteBits(paletteLen int) int {
	bits := packedbits.MinBitsForNStates(paletteLen)
	if bits < 4 {
		bits = 4
	}
	return bits
}

func (s *Section) ensureIndices() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indices != nil {
		return nil
	}
	bits := paletteBits(len(s.Palette))
	var idx []uint64
	var err error
	if s.legacyCross {
		idx, err = packedbits.UnpackPacked(bits, 4096, s.Data)
	} else {
		idx, err = packedbits.Unpack(bits, 4096, s.Data)
	}
	if err != nil {
		return fmt.Errorf("chunk: section y=%d: %w", s.Y, err)
	}
	s.indices = idx
	return nil
}

// BlockAt returns the palette entry for local coordinates (x,y,z),
// each in [0,16). A single-entry palette with no data array returns
// that entry for every position without consulting the index data at
// all, per §8.
func (s *Section) BlockAt(x, y, z int) (*Block, error) {
	if len(s.Palette) == 0 {
		return nil, nil
	}
	if s.indices == nil && len(s.Data) == 0 {
		return &s.Palette[0], nil
	}
	if err := s.ensureIndices(); err != nil {
		return nil, err
	}
	flat := y*256 + z*16 + x
	if flat < 0 || flat >= len(s.indices) {
		return nil, fmt.Errorf("chunk: section y=%d: block flat index %d out of range", s.Y, flat)
	}
	idx := s.indices[flat]
	if int(idx) >= len(s.Palette) {
		return nil, fmt.Errorf("chunk: section y=%d: palette index %d out of range (palette size %d)", s.Y, idx, len(s.Palette))
	}
	return &s.Palette[idx], nil
}

// SectionTower is the vertical stack of a chunk's sections, indexed by
// signed section Y within [minY, maxY].
type SectionTower struct {
	sections   map[int32]*Section
	minY, maxY int32
}

func newSectionTower(minY, maxY int32) *SectionTower {
	return &SectionTower{sections: make(map[int32]*Section), minY: minY, maxY: maxY}
}

func (t *SectionTower) add(s *Section) {
	t.sections[s.Y] = s
}

// Section returns the section at y, or (nil, false) when y is outside
// the tower's declared range or no section was stored for it.
func (t *SectionTower) Section(y int32) (*Section, bool) {
	if y < t.minY || y > t.maxY {
		return nil, false
	}
	s, ok := t.sections[y]
	return s, ok
}

// Range returns the tower's inclusive [minY, maxY] section-Y bounds.
func (t *SectionTower) Range() (minY, maxY int32) {
	return t.minY, t.maxY
}
