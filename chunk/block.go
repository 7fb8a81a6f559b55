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

// Package chunk decodes Minecraft chunk NBT into sections, a block
// palette, and bit-packed block-state indices, and exposes per-block
// lookup across the game's three historical on-disk layouts.
package chunk

import (
	"sort"
	"strings"
)

// filteredProperties are excluded from Block.Encoded so that visually
// equivalent block-state variants (a waterlogged fence vs a dry one, a
// powered rail vs an unpowered one) collapse to the same identity.
// They remain present in Properties.
var filteredProperties = map[string]bool{
	"waterlogged": true,
	"powered":     true,
}

// Block is a single palette entry: a block name and its state
// properties.
type Block struct {
	Name       string
	properties map[string]string
}

// NewBlock builds a Block from a name and a property set. The supplied
// map is copied; callers may reuse or mutate it afterward.
func NewBlock(name string, properties map[string]string) Block {
	cp := make(map[string]string, len(properties))
	for k, v := range properties {
		cp[k] = v
	}
	return Block{Name: name, properties: cp}
}

// Properties returns the block's full property set, including
// waterlogged and powered.
func (b Block) Properties() map[string]string {
	cp := make(map[string]string, len(b.properties))
	for k, v := range b.properties {
		cp[k] = v
	}
	return cp
}

// Encoded returns the block's canonical identity string:
// "<name>|k1=v1,k2=v2,...", properties sorted lexicographically by
// key, excluding waterlogged and powered (§4.7). The trailing "|" is
// always present, even with no surviving properties, matching the
// reference encoder exactly: this string is the lookup key into the
// palette resource bundle (§6/§4.11), so a property-less block like
// "minecraft:stone" must encode to "minecraft:stone|" to match bundle
// keys generated by that tool.
func (b Block) Encoded() string {
	keys := make([]string, 0, len(b.properties))
	for k := range b.properties {
		if filteredProperties[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteString(b.Name)
	sb.WriteByte('|')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(b.properties[k])
	}
	return sb.String()
}
