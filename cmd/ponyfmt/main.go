package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ponyfmt/internal/version"
)

// newRootCmd собирает дерево команд; каждый вызов возвращает независимые флаги.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "ponyfmt",
		Short:             "Pony source formatter",
		Long:              `ponyfmt re-indents and re-spaces Pony source files, keeping every token and comment`,
		Version:           version.Version,
		SilenceErrors:     true,
		PersistentPreRunE: setupColor,
	}

	root.AddCommand(newFmtCmd())
	root.AddCommand(newDebugCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().String("trace", "", "write trace events to a file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|batch|file|pass)")
	root.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	root.PersistentFlags().Int("trace-ring-size", 0, "keep only the last N trace events and write them on exit")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to the file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to the file")
	return root
}

// main executes the root command and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupColor применяет --color до запуска любой подкоманды.
func setupColor(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
