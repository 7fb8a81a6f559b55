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

// Package compressor implements the region chunk-payload compression
// schemes: gzip, zlib, and the uncompressed passthrough.
package compressor

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/owengage/goanvil/region"
)

const (
	SchemeGzip         byte = 1
	SchemeZlib         byte = 2
	SchemeUncompressed byte = 3
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// Decompress wraps r according to scheme, the same byte a region chunk
// entry's payload header carries. An unrecognized scheme returns
// region.ErrUnknownCompression so callers can share error handling with
// region.Region.Read.
func Decompress(scheme byte, r io.Reader) (io.Reader, error) {
	switch scheme {
	case SchemeGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compressor: gzip: %w", err)
		}
		return gr, nil
	case SchemeZlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("compressor: zlib: %w", err)
		}
		return zr, nil
	case SchemeUncompressed:
		return r, nil
	default:
		return nil, region.ErrUnknownCompression
	}
}

// Compress wraps w according to scheme. The returned WriteCloser must
// be closed to flush any trailing compressed bytes before the
// underlying payload buffer is handed to region.Region.Write.
func Compress(scheme byte, w io.Writer) (io.WriteCloser, error) {
	switch scheme {
	case SchemeGzip:
		return gzip.NewWriter(w), nil
	case SchemeZlib:
		return zlib.NewWriter(w), nil
	case SchemeUncompressed:
		return nopWriteCloser{w}, nil
	default:
		return nil, region.ErrUnknownCompression
	}
}
