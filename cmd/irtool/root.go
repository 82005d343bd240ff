// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aclements/go-ircfg/domtree"
	"github.com/aclements/go-ircfg/irdump"
	"github.com/aclements/go-ircfg/loopanalysis"
)

var rootCmd = &cobra.Command{
	Use:   "irtool",
	Short: "Dump the CFG, dominator tree, and natural loops of an IR procedure",
	Long: `irtool reads a procedure described as JSON, builds its in-memory
IR, and dumps the CFG text form, the dominator tree, and the natural
loops found in it.`,
	RunE: runDump,
}

func init() {
	rootCmd.Flags().String("input", "", "path to a procedure JSON file (required)")
	rootCmd.Flags().Bool("dump-loops", true, "also dump loop-analyzer results")
	rootCmd.Flags().String("format", "text", "output format: text or dot")
	rootCmd.MarkFlagRequired("input")
}

// Execute runs the root command; main's only job is to call this and
// translate a non-nil error into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func runDump(cmd *cobra.Command, _ []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	dumpLoops, _ := cmd.Flags().GetBool("dump-loops")
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "dot" {
		return fmt.Errorf("irtool: unsupported --format %q (want \"text\" or \"dot\")", format)
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("irtool: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	g, err := loadGraph(f)
	if err != nil {
		return err
	}
	slog.Info("loaded procedure", "run_id", g.RunID, "blocks", g.NumBlocks(), "instructions", g.NumInstructions())

	if format == "dot" {
		fmt.Print(irdump.DOT(g))
		return nil
	}

	fmt.Print(irdump.Graph(g))

	tree := domtree.Build(g)
	for _, bb := range g.Blocks() {
		fmt.Printf("Immediate children of BB_%d: ", bb.ID())
		for _, c := range tree.ImmediateChildren(bb) {
			fmt.Printf("BB_%d ", c.ID())
		}
		fmt.Println()
	}

	if dumpLoops {
		analysis := loopanalysis.Analyze(g)
		slog.Info("loop analysis complete", "run_id", g.RunID, "loops_found", len(analysis.Loops()))
		fmt.Print(irdump.Loops(analysis))
	}

	return nil
}
