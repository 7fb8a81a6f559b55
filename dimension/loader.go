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

// Package dimension caches open region.Region handles for a world
// (one Minecraft dimension's worth of region files), loading them on
// first access from a pluggable backing store.
package dimension

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/owengage/goanvil/region"
)

// RegionLoader opens the region file at (rx, rz), the region-file
// coordinates (not block or chunk coordinates). The second return
// value reports whether a region file exists there at all: a missing
// region is not an error, since most dimensions are sparse.
type RegionLoader interface {
	Region(rx, rz int32) (*region.Region, bool, error)
}

// FileLoader reads region files named "r.{rx}.{rz}.mca" from a
// directory on local disk, the on-disk layout of a Minecraft world's
// "region" folder.
type FileLoader struct {
	Dir string
}

func (f FileLoader) Region(rx, rz int32) (*region.Region, bool, error) {
	path := filepath.Join(f.Dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dimension: open %s: %w", path, err)
	}
	ext := region.DirExternalFiles{Dir: f.Dir}
	reg, err := region.Open(file, ext)
	if err != nil {
		file.Close()
		return nil, false, fmt.Errorf("dimension: open %s: %w", path, err)
	}
	return reg, true, nil
}
