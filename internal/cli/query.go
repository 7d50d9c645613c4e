// Copyright 2023 The blocktree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
)

type dumpOpts struct {
	offset string
}

func newDumpCmd() *cobra.Command {
	opts := dumpOpts{}

	cmd := &cobra.Command{
		Use:   "dump [scene]",
		Short: "Print the block tree built from a scene",
		Long: `Dump builds the block tree for a scene and prints it, one node per line.

Internal nodes print their bounding box and leaves print the block's
position and height. Each level of depth indents by three spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.offset, "offset", "0,0", "displacement applied to the tree, as x,y")

	return cmd
}

func runDump(ctx context.Context, out io.Writer, name string, opts *dumpOpts) error {
	d, err := parseVec(opts.offset)
	if err != nil {
		return fmt.Errorf("--offset: %w", err)
	}
	_, t, err := loadTree(ctx, name)
	if err != nil {
		return err
	}
	return t.Dump(out, d)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [scene]",
		Short: "Print summary statistics for a scene's block tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runStats(ctx context.Context, out io.Writer, name string) error {
	s, t, err := loadTree(ctx, name)
	if err != nil {
		return err
	}
	box := t.Box()
	_, err = fmt.Fprintf(out, "name:   %s\nblocks: %d\ndepth:  %d\nbox:    %s\narea:   %s\n",
		s.Name, t.NumBlocks(), t.Depth(), box, strconv.FormatFloat(box.Area(), 'g', -1, 64))
	return err
}

func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains [scene] [x] [y]",
		Short: "Test whether a point lies inside any block of a scene",
		Long: `Contains prints true if the point (x, y) lies inside, or on the
boundary of, at least one block of the scene, and false otherwise.

Use -- before negative coordinates so they are not parsed as flags.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContains(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], args[2])
		},
	}
}

func runContains(ctx context.Context, out io.Writer, name, xs, ys string) error {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return fmt.Errorf("invalid x coordinate %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return fmt.Errorf("invalid y coordinate %q: %w", ys, err)
	}
	_, t, err := loadTree(ctx, name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, t.Contains(mgl64.Vec2{x, y}))
	return err
}

type overlapsOpts struct {
	offsetA string
	offsetB string
}

func newOverlapsCmd() *cobra.Command {
	opts := overlapsOpts{}

	cmd := &cobra.Command{
		Use:   "overlaps [scene-a] [scene-b]",
		Short: "Test whether two displaced scenes collide",
		Long: `Overlaps prints true if some block of scene A, displaced by --offset-a,
overlaps some block of scene B, displaced by --offset-b. Blocks that
only touch along an edge or at a corner count as overlapping.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlaps(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.offsetA, "offset-a", "0,0", "displacement applied to scene A, as x,y")
	cmd.Flags().StringVar(&opts.offsetB, "offset-b", "0,0", "displacement applied to scene B, as x,y")

	return cmd
}

func runOverlaps(ctx context.Context, out io.Writer, nameA, nameB string, opts *overlapsOpts) error {
	da, err := parseVec(opts.offsetA)
	if err != nil {
		return fmt.Errorf("--offset-a: %w", err)
	}
	db, err := parseVec(opts.offsetB)
	if err != nil {
		return fmt.Errorf("--offset-b: %w", err)
	}
	_, a, err := loadTree(ctx, nameA)
	if err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}
	_, b, err := loadTree(ctx, nameB)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, a.Overlaps(da, b, db))
	return err
}

// parseVec parses a vector written as "x,y". Spaces around either
// component are ignored.
func parseVec(s string) (mgl64.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return mgl64.Vec2{}, fmt.Errorf("invalid vector %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("invalid vector %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return mgl64.Vec2{}, fmt.Errorf("invalid vector %q: %w", s, err)
	}
	return mgl64.Vec2{x, y}, nil
}
