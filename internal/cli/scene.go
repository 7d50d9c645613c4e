// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogama/blocktree"
	"github.com/gogama/blocktree/scene"
	"github.com/spf13/cobra"
)

type encodeOpts struct {
	output string
}

func newEncodeCmd() *cobra.Command {
	opts := encodeOpts{}

	cmd := &cobra.Command{
		Use:   "encode [scene.toml]",
		Short: "Convert a TOML scene to the binary scene format",
		Long: `Encode reads a TOML scene and writes it in the binary scene format.

By default the output is written next to the input with a .blk extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")

	return cmd
}

func runEncode(ctx context.Context, input string, opts *encodeOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := scene.DecodeTOML(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".blk"
	}
	n, err := writeFile(output, func(w io.Writer) (int, error) {
		return scene.Write(w, s)
	})
	if err != nil {
		return err
	}

	prog.done("Encoded scene", "blocks", len(s.Blocks), "bytes", n)
	logger.Infof("Wrote %s", output)
	return nil
}

type decodeOpts struct {
	output string
}

func newDecodeCmd() *cobra.Command {
	opts := decodeOpts{}

	cmd := &cobra.Command{
		Use:   "decode [scene.blk]",
		Short: "Convert a binary scene to TOML",
		Long: `Decode reads a scene in the binary scene format and writes it as TOML.

The TOML is written to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runDecode(ctx context.Context, out io.Writer, input string, opts *decodeOpts) error {
	logger := loggerFromContext(ctx)

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := scene.Read(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	logger.Debug("Read scene", "name", s.Name, "blocks", len(s.Blocks))

	if opts.output == "" {
		return scene.EncodeTOML(out, s)
	}
	if _, err = writeFile(opts.output, func(w io.Writer) (int, error) {
		return 0, scene.EncodeTOML(w, s)
	}); err != nil {
		return err
	}
	logger.Infof("Wrote %s", opts.output)
	return nil
}

// writeFile creates the named file and passes it to write, reporting
// the first error from write or from closing the file.
func writeFile(name string, write func(io.Writer) (int, error)) (n int, err error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return write(f)
}

// loadTree loads the named scene file and builds its block tree. It
// returns ctx.Err() if ctx is done after either step.
func loadTree(ctx context.Context, name string) (*scene.Scene, *blocktree.Tree, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := scene.Load(name)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", name, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, nil, err
	}
	prog.done("Loaded scene", "file", name, "blocks", len(s.Blocks))

	prog = newProgress(logger)
	t, err := s.Tree()
	if err != nil {
		return nil, nil, fmt.Errorf("build tree for %s: %w", name, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, nil, err
	}
	prog.done("Built tree", "file", name, "depth", t.Depth())

	return s, t, nil
}
