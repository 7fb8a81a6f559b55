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

// Command nbtdump pretty-prints an NBT file to stdout, for manual
// inspection of a chunk or level file during development.
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/owengage/goanvil/nbt"
)

var flagGzip = flag.Bool("gzip", true, "input is gzip-compressed, as chunk and level NBT normally are")

func main() {
	log.SetFlags(0)
	log.SetPrefix("nbtdump: ")
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	if *flagGzip {
		gz, err := gzip.NewReader(r)
		if err != nil {
			log.Fatalf("gzip: %v", err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatalf("read: %v", err)
	}

	root, err := nbt.Decode(data)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	dump(os.Stdout, nbt.Value(root), 0)
}

func dump(w io.Writer, v nbt.Value, indent int) {
	pad := strings.Repeat("  ", indent)
	switch val := v.(type) {
	case nbt.Compound:
		fmt.Fprintf(w, "%scompound {\n", pad)
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s  %q:\n", pad, k)
			dump(w, val[k], indent+2)
		}
		fmt.Fprintf(w, "%s}\n", pad)
	case nbt.List:
		fmt.Fprintf(w, "%slist[%d] {\n", pad, len(val.Items))
		for _, item := range val.Items {
			dump(w, item, indent+1)
		}
		fmt.Fprintf(w, "%s}\n", pad)
	default:
		fmt.Fprintf(w, "%s%v\n", pad, v)
	}
}
