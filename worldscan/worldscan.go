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

// Package worldscan walks a directory of Anvil region files and
// yields their region-file coordinates.
package worldscan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/owengage/goanvil/dimension"
)

var regionFileRe = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.mca$`)

// RegionFile is one region file found by Scan.
type RegionFile struct {
	Path   string
	RX, RZ int32
	Size   int64
}

// Scan walks dir (callers point it directly at a dimension's region
// folder) and returns every file matching "r.{rx}.{rz}.mca", parsed
// into canonical region coordinates.
//
// If idx is non-nil, a file whose size matches what idx last recorded
// for its coordinates is left out of the result. Every file is still
// walked and stat'ed; a size match is a heuristic, not a guarantee of
// byte-identical content. idx is updated with every
// file's current size either way, so the next Scan sees today's sizes
// as the baseline. A nil idx returns every matching file.
func Scan(dir string, idx *dimension.PersistentIndex) ([]RegionFile, error) {
	var out []RegionFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		m := regionFileRe.FindStringSubmatch(d.Name())
		if m == nil {
			return nil
		}
		rx, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("worldscan: %s: %w", path, err)
		}
		rz, err := strconv.Atoi(m[2])
		if err != nil {
			return fmt.Errorf("worldscan: %s: %w", path, err)
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("worldscan: %s: %w", path, err)
		}
		rf := RegionFile{Path: path, RX: int32(rx), RZ: int32(rz), Size: info.Size()}

		include := true
		if idx != nil {
			changed, err := idx.Changed(rf.RX, rf.RZ, rf.Size)
			if err != nil {
				return fmt.Errorf("worldscan: %s: %w", path, err)
			}
			include = changed
			if err := idx.Seen(rf.RX, rf.RZ, rf.Size); err != nil {
				return fmt.Errorf("worldscan: %s: %w", path, err)
			}
		}
		if include {
			out = append(out, rf)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
