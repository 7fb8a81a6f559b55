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

package compressor

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/owengage/goanvil/region"
)

func roundTrip(t *testing.T, scheme byte) {
	t.Helper()
	want := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 50)

	var buf bytes.Buffer
	wc, err := Compress(scheme, &buf)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if _, err := wc.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := wc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Decompress(scheme, &buf)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("round trip mismatch for scheme %d", scheme)
	}
}

func TestGzipRoundTrip(t *testing.T) { roundTrip(t, SchemeGzip) }
func TestZlibRoundTrip(t *testing.T) { roundTrip(t, SchemeZlib) }
func TestUncompressedRoundTrip(t *testing.T) { roundTrip(t, SchemeUncompressed) }

func TestUnknownSchemeErrors(t *testing.T) {
	if _, err := Decompress(99, bytes.NewReader(nil)); !errors.Is(err, region.ErrUnknownCompression) {
		t.Fatalf("Decompress(99) = %v, want ErrUnknownCompression", err)
	}
	if _, err := Compress(99, &bytes.Buffer{}); !errors.Is(err, region.ErrUnknownCompression) {
		t.Fatalf("Compress(99) = %v, want ErrUnknownCompression", err)
	}
}
