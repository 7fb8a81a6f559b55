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
	"path/filepath"
	"testing"
)

func TestPersistentIndexUnseenIsChanged(t *testing.T) {
	idx, err := OpenPersistentIndex(filepath.Join(t.TempDir(), "index.ldb"))
	if err != nil {
		t.Fatalf("OpenPersistentIndex: %v", err)
	}
	defer idx.Close()

	changed, err := idx.Changed(1, 2, 4096)
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if !changed {
		t.Fatal("a region never recorded should count as changed")
	}
}

func TestPersistentIndexSeenThenUnchanged(t *testing.T) {
	idx, err := OpenPersistentIndex(filepath.Join(t.TempDir(), "index.ldb"))
	if err != nil {
		t.Fatalf("OpenPersistentIndex: %v", err)
	}
	defer idx.Close()

	if err := idx.Seen(1, 2, 8192); err != nil {
		t.Fatalf("Seen: %v", err)
	}
	changed, err := idx.Changed(1, 2, 8192)
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if changed {
		t.Fatal("a region recorded with the same size should not count as changed")
	}
	changed, err = idx.Changed(1, 2, 16384)
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if !changed {
		t.Fatal("a region recorded with a different size should count as changed")
	}
}
