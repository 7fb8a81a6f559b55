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

package region

import "errors"

// ErrChunkNotFound is returned when a location table entry is empty
// (offset 0, count 0).
var ErrChunkNotFound = errors.New("region: chunk not found")

// ErrInvalidOffset is returned when a location entry's sector offset
// falls inside the 8KiB header, or its count/offset pairing is
// malformed (zero count with a nonzero offset, or vice versa).
var ErrInvalidOffset = errors.New("region: invalid location offset")

// ErrUnknownCompression is returned for a compression scheme byte
// (after masking the external-file flag) other than 1 (gzip), 2
// (zlib), or 3 (uncompressed).
var ErrUnknownCompression = errors.New("region: unknown compression scheme")

// ErrChunkTooLarge is returned when the in-region part of a write
// would need more sectors than a single byte location-table entry can
// address (255 sectors, ~1MiB). Write moves payloads over that limit
// to a sibling .mcc file; without an ExternalFiles collaborator it
// fails with ErrNoExternalFiles instead.
var ErrChunkTooLarge = errors.New("region: chunk payload too large")

// ErrNoExternalFiles is returned when a write needs external overflow
// storage but the Region was opened without an ExternalFiles
// collaborator.
var ErrNoExternalFiles = errors.New("region: payload requires external storage but no ExternalFiles was configured")
