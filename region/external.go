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

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExternalFiles opens and creates the sibling c.{x}.{z}.mcc files used
// to hold chunk payloads too large to fit inline (§4.6, §6). x and z
// are the same region-local chunk coordinates passed to Region.Read /
// Region.Write.
type ExternalFiles interface {
	Open(x, z int) (io.ReadCloser, error)
	Create(x, z int) (io.WriteCloser, error)
}

// DirExternalFiles is the default ExternalFiles implementation: one
// directory holding c.{x}.{z}.mcc alongside the region file itself.
type DirExternalFiles struct {
	Dir string
}

func (d DirExternalFiles) path(x, z int) string {
	return filepath.Join(d.Dir, fmt.Sprintf("c.%d.%d.mcc", x, z))
}

func (d DirExternalFiles) Open(x, z int) (io.ReadCloser, error) {
	return os.Open(d.path(x, z))
}

func (d DirExternalFiles) Create(x, z int) (io.WriteCloser, error) {
	return os.Create(d.path(x, z))
}
