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

package dimension

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/owengage/goanvil/region"
)

type coord struct{ rx, rz int32 }

// Dimension is a keyed, insert-only cache of open region.Region
// handles for one dimension's worth of region files. Entries are
// never evicted or replaced: once a region is loaded it stays open for
// the Dimension's lifetime, so callers holding a *region.Region from
// an earlier call keep seeing the same handle (§5).
type Dimension struct {
	loader RegionLoader

	mu      sync.Mutex
	regions map[coord]*region.Region

	group singleflight.Group
}

// New builds a Dimension backed by loader.
func New(loader RegionLoader) *Dimension {
	return &Dimension{
		loader:  loader,
		regions: make(map[coord]*region.Region),
	}
}

// Region returns the open region.Region at (rx, rz), loading it on
// first access. Concurrent callers requesting the same (rx, rz) for
// the first time share a single loader call via singleflight; callers
// requesting different coordinates proceed independently, since the
// loader's own I/O happens outside the Dimension's mutex.
func (d *Dimension) Region(rx, rz int32) (*region.Region, bool, error) {
	c := coord{rx, rz}

	d.mu.Lock()
	if reg, ok := d.regions[c]; ok {
		d.mu.Unlock()
		return reg, true, nil
	}
	d.mu.Unlock()

	key := fmt.Sprintf("%d,%d", rx, rz)
	v, err, _ := d.group.Do(key, func() (any, error) {
		reg, found, err := d.loader.Region(rx, rz)
		if err != nil {
			return nil, err
		}
		if !found {
			return (*region.Region)(nil), nil
		}
		d.mu.Lock()
		if existing, ok := d.regions[c]; ok {
			// Another singleflight generation raced us (e.g. the
			// group key collided and was reused after expiring);
			// prefer the one already cached so every caller converges
			// on the same handle.
			reg = existing
		} else {
			d.regions[c] = reg
		}
		d.mu.Unlock()
		return reg, nil
	})
	if err != nil {
		return nil, false, err
	}
	reg, _ := v.(*region.Region)
	return reg, reg != nil, nil
}
