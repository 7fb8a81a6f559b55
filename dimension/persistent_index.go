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

	"github.com/syndtr/goleveldb/leveldb"
)

// PersistentIndex is an optional on-disk record of the size each
// (rx, rz) region file had when a previous directory scan observed it.
// worldscan.Scan uses it to leave files whose size is unchanged out of
// its result; the scan still walks and stats every file.
type PersistentIndex struct {
	db *leveldb.DB
}

// OpenPersistentIndex opens (creating if absent) a leveldb database at
// path to back a PersistentIndex.
func OpenPersistentIndex(path string) (*PersistentIndex, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("dimension: open index %s: %w", path, err)
	}
	return &PersistentIndex{db: db}, nil
}

func indexKey(rx, rz int32) []byte {
	return []byte(fmt.Sprintf("r.%d.%d", rx, rz))
}

// Seen records that the region file at (rx, rz) was observed with the
// given size in bytes, so a later Changed call can detect whether it
// has grown or shrunk since.
func (p *PersistentIndex) Seen(rx, rz int32, size int64) error {
	return p.db.Put(indexKey(rx, rz), []byte(fmt.Sprintf("%d", size)), nil)
}

// Changed reports whether (rx, rz) is new or has a different recorded
// size than size. A region never before recorded counts as changed.
func (p *PersistentIndex) Changed(rx, rz int32, size int64) (bool, error) {
	val, err := p.db.Get(indexKey(rx, rz), nil)
	if err == leveldb.ErrNotFound {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("dimension: index lookup: %w", err)
	}
	return string(val) != fmt.Sprintf("%d", size), nil
}

// Close releases the underlying leveldb handle.
func (p *PersistentIndex) Close() error {
	return p.db.Close()
}
