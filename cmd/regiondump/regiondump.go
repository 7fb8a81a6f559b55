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

// Command regiondump extracts every chunk in an Anvil region file to
// "{x}.{z}.nbt" in the -out directory ("chunks" by default),
// decompressing as needed, for manual inspection of a world's region
// files during development.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/owengage/goanvil/compressor"
	"github.com/owengage/goanvil/region"
)

var flagOut = flag.String("out", "chunks", "directory to write extracted chunk NBT into")

func main() {
	log.SetFlags(0)
	log.SetPrefix("regiondump: ")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: regiondump <region file>")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	reg, err := region.Open(f, region.DirExternalFiles{Dir: filepath.Dir(flag.Arg(0))})
	if err != nil {
		log.Fatalf("open region: %v", err)
	}

	entries, err := reg.Iter()
	if err != nil {
		log.Fatalf("iterate region: %v", err)
	}

	if err := os.MkdirAll(*flagOut, 0755); err != nil {
		log.Fatal(err)
	}

	for _, e := range entries {
		r, err := compressor.Decompress(e.Scheme, bytes.NewReader(e.Payload))
		if err != nil {
			log.Printf("chunk (%d,%d): decompress: %v", e.X, e.Z, err)
			continue
		}
		data, err := io.ReadAll(r)
		if err != nil {
			log.Printf("chunk (%d,%d): read: %v", e.X, e.Z, err)
			continue
		}
		path := filepath.Join(*flagOut, fmt.Sprintf("%d.%d.nbt", e.X, e.Z))
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Printf("chunk (%d,%d): write: %v", e.X, e.Z, err)
			continue
		}
	}
}
