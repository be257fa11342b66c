package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ponyfmt/internal/diag"
	"ponyfmt/internal/diagfmt"
	"ponyfmt/internal/parser"
	"ponyfmt/internal/source"
	"ponyfmt/internal/syntax"
)

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug [flags] <file>",
		Short: "Dump the syntax tree and parse diagnostics of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDebug,
	}
	cmd.Flags().String("output", "text", "diagnostics format (text|json)")
	cmd.Flags().Int8("context", 1, "source lines shown around each diagnostic")
	cmd.Flags().String("path-mode", "as-is", "diagnostic paths (as-is|absolute|basename)")
	cmd.Flags().Bool("no-tree", false, "print diagnostics only")
	cmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")
	cmd.Flags().String("min-severity", "info", "hide diagnostics below this severity (info|warning|error)")
	return cmd
}

func runDebug(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	flags := cmd.Flags()

	output, err := flags.GetString("output")
	if err != nil {
		return err
	}
	if output != "text" && output != "json" {
		return fmt.Errorf("debug: unsupported output format %q", output)
	}
	contextLines, err := flags.GetInt8("context")
	if err != nil {
		return err
	}
	pathModeStr, err := flags.GetString("path-mode")
	if err != nil {
		return err
	}
	pathMode, err := parsePathMode(pathModeStr)
	if err != nil {
		return err
	}
	noTree, err := flags.GetBool("no-tree")
	if err != nil {
		return err
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	minSeverityStr, err := flags.GetString("min-severity")
	if err != nil {
		return err
	}
	minSeverity, err := diag.ParseSeverity(minSeverityStr)
	if err != nil {
		return fmt.Errorf("debug: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	sf, err := loadSource(cmd, args[0])
	if err != nil {
		return fmt.Errorf("debug: %w", err)
	}
	bag := diag.NewBag(maxDiagnostics)
	parsed, err := parser.ParseFile(sf, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		return fmt.Errorf("debug: %w", err)
	}
	bag = bag.AtLeast(minSeverity)

	stdout := cmd.OutOrStdout()
	if !noTree {
		if err := syntax.Dump(stdout, parsed.Root, sf); err != nil {
			return err
		}
	}
	if output == "json" {
		return diagfmt.JSON(stdout, bag, sf)
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, sf, diagfmt.PrettyOpts{
		Color:    !color.NoColor,
		Context:  contextLines,
		PathMode: pathMode,
	})
	return nil
}

func loadSource(cmd *cobra.Command, path string) (*source.File, error) {
	fileSet := source.NewFileSet()
	var (
		id  source.FileID
		err error
	)
	if path == "-" {
		var data []byte
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		id, err = fileSet.AddVirtual("<stdin>", data)
	} else {
		id, err = fileSet.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return fileSet.Get(id), nil
}

func parsePathMode(s string) (diagfmt.PathMode, error) {
	switch s {
	case "as-is", "":
		return diagfmt.PathModeAsIs, nil
	case "absolute":
		return diagfmt.PathModeAbsolute, nil
	case "basename":
		return diagfmt.PathModeBasename, nil
	}
	return diagfmt.PathModeAsIs, fmt.Errorf("debug: unsupported path mode %q", s)
}
