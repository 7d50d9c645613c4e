// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gogama/blocktree"
)

// A Scene is a named, ordered set of blocks.
type Scene struct {
	// Name is a free-form label for the scene.
	Name string
	// Blocks lists the scene's blocks in the order they are given to
	// blocktree.New.
	Blocks []Block
}

// Tree builds a blocktree.Tree from the scene's blocks. A scene with no
// blocks yields an error wrapping blocktree.ErrInvalidInput.
func (s *Scene) Tree() (*blocktree.Tree, error) {
	blocks := make([]blocktree.Block, len(s.Blocks))
	for i := range s.Blocks {
		blocks[i] = s.Blocks[i]
	}
	return blocktree.New(blocks)
}

// Load reads a scene from the named file. Files with a ".toml"
// extension are decoded with DecodeTOML and all others with Read.
func Load(name string) (s *Scene, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			s, err = nil, closeErr
		}
	}()

	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return DecodeTOML(f)
	}
	return Read(f)
}
