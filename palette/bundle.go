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

// Package palette reads the biome color-map resource bundle: a
// tar+gzip archive holding two 256x256 color-map PNGs and a JSON
// object mapping a block's canonical identity string (chunk.Block's
// Encoded form) to a packed 32-bit RGBA value.
package palette

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

const bundleSize = 256

// ErrMissingEntry is returned when a bundle is missing one of its three
// required members.
var ErrMissingEntry = errors.New("palette: bundle missing required entry")

// Bundle is a parsed palette resource bundle.
type Bundle struct {
	GrassColor   *image.RGBA
	FoliageColor *image.RGBA
	// BlockColors maps a block's canonical identity string (§4.7) to
	// its packed 0xRRGGBBAA color.
	BlockColors map[string]uint32
}

// Load reads a tar+gzip bundle from r. "grasscolor.png" and
// "foliagecolor.png" are decoded as color maps, resized to 256x256 if
// the bundle author supplied a different size; "blockcolors.json"
// decodes to a map[string]uint32 keyed by canonical block identity.
func Load(r io.Reader) (*Bundle, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("palette: gzip: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	b := &Bundle{}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("palette: tar: %w", err)
		}
		switch hdr.Name {
		case "grasscolor.png":
			b.GrassColor, err = decodeColorMap(tr)
		case "foliagecolor.png":
			b.FoliageColor, err = decodeColorMap(tr)
		case "blockcolors.json":
			b.BlockColors, err = decodeBlockColors(tr)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	if b.GrassColor == nil || b.FoliageColor == nil || b.BlockColors == nil {
		return nil, ErrMissingEntry
	}
	return b, nil
}

func decodeColorMap(r io.Reader) (*image.RGBA, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("palette: png: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() == bundleSize && bounds.Dy() == bundleSize {
		rgba := image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
		return rgba, nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bundleSize, bundleSize))
	xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), img, bounds, xdraw.Over, nil)
	return rgba, nil
}

func decodeBlockColors(r io.Reader) (map[string]uint32, error) {
	var m map[string]uint32
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("palette: block colors: %w", err)
	}
	return m, nil
}

// Color returns the RGBA color for a block's canonical identity
// string, and whether the bundle carries an entry for it.
func (b *Bundle) Color(blockEncoded string) (uint32, bool) {
	c, ok := b.BlockColors[blockEncoded]
	return c, ok
}
