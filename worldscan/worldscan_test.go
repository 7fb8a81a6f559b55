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

package worldscan

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/owengage/goanvil/dimension"
)

func writeFile(t *testing.T, dir, name string, size int) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644); err != nil {
		t.Fatalf("WriteFile(%s): %v", name, err)
	}
}

func TestScanFindsAndParsesRegionFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r.0.0.mca", 8192)
	writeFile(t, dir, "r.-3.5.mca", 4096)
	writeFile(t, dir, "session.lock", 0)
	writeFile(t, dir, "readme.txt", 0)

	files, err := Scan(dir, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("Scan found %d files, want 2: %v", len(files), files)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].RX < files[j].RX })
	if files[0].RX != -3 || files[0].RZ != 5 {
		t.Fatalf("files[0] = %+v, want RX=-3 RZ=5", files[0])
	}
	if files[1].RX != 0 || files[1].RZ != 0 {
		t.Fatalf("files[1] = %+v, want RX=0 RZ=0", files[1])
	}
}

func TestScanSkipsUnchangedWithIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "r.0.0.mca", 8192)

	idx, err := dimension.OpenPersistentIndex(filepath.Join(t.TempDir(), "index.ldb"))
	if err != nil {
		t.Fatalf("OpenPersistentIndex: %v", err)
	}
	defer idx.Close()

	first, err := Scan(dir, idx)
	if err != nil {
		t.Fatalf("Scan (first): %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first scan found %d files, want 1", len(first))
	}

	second, err := Scan(dir, idx)
	if err != nil {
		t.Fatalf("Scan (second): %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second scan found %d files, want 0 (unchanged)", len(second))
	}

	writeFile(t, dir, "r.0.0.mca", 16384)
	third, err := Scan(dir, idx)
	if err != nil {
		t.Fatalf("Scan (third): %v", err)
	}
	if len(third) != 1 {
		t.Fatalf("third scan found %d files, want 1 (grown file)", len(third))
	}
}
