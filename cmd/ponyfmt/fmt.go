package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ponyfmt/internal/config"
	"ponyfmt/internal/driver"
	"ponyfmt/internal/format"
	"ponyfmt/internal/observ"
)

var (
	errChangesRequired = errors.New("fmt: formatting changes required")
	errFailedFiles     = errors.New("fmt: failed to format some files")
)

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [flags] [path...]",
		Short: "Format Pony source files",
		Long: `Format Pony source files and directories (recursively collecting *.pony).
Without --write or --check the formatted text goes to stdout. Use - to read stdin.`,
		RunE: runFmt,
	}
	f := cmd.Flags()
	f.BoolP("write", "w", false, "rewrite files whose formatting differs")
	f.Bool("check", false, "list files whose formatting differs and exit non-zero")
	f.Int("indent", format.DefaultIndentWidth, "spaces per indentation level")
	f.Int("inline", format.DefaultInlineLimit, "maximum display width of an inline body")
	f.IntP("jobs", "j", 0, "files formatted concurrently (0 = GOMAXPROCS)")
	f.Bool("cache", false, "skip files already known to be formatted")
	f.String("output", "text", "report format for --write and --check (text|json)")
	f.String("config", "", "path to "+config.FileName+" (default: nearest above the working directory)")
	f.StringSlice("exclude", nil, "directory or file names skipped while walking")
	f.String("ui", "auto", "progress view for --write and --check (auto|on|off)")
	cmd.MarkFlagsMutuallyExclusive("write", "check")
	return cmd
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	opts, output, err := fmtOptions(cmd)
	if err != nil {
		return err
	}
	root := cmd.Root().PersistentFlags()
	quiet, err := root.GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := root.GetBool("timings")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	progressMode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if timings {
		opts.Timings = observ.NewTimer()
	}
	var results []driver.FormatResult
	if useFmtUI(progressMode, cmd, args, opts, output) {
		title := "fmt --" + opts.Options.Mode.String()
		results, err = runFmtWithUI(cmd.Context(), cmd.ErrOrStderr(), title, args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), opts.Timings.Summary())
	}

	var hasErrors, hasChanges bool
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	switch {
	case opts.Options.Mode == format.ModeStdout:
		hasErrors = renderFmtStdout(stdout, stderr, results)
	case output == "json":
		if err := renderFmtJSON(stdout, results, opts.Options.Mode); err != nil {
			return err
		}
		hasErrors, hasChanges = summarize(results)
	default:
		hasErrors, hasChanges = renderFmtText(stdout, stderr, results, opts.Options.Mode, quiet)
	}

	if hasErrors {
		return errFailedFiles
	}
	if opts.Options.Mode == format.ModeCheck && hasChanges {
		return errChangesRequired
	}
	return nil
}

// useFmtUI включает прогресс только для --write/--check с текстовым отчётом и без stdin.
func useFmtUI(mode uiMode, cmd *cobra.Command, args []string, opts driver.FormatOptions, output string) bool {
	if opts.Options.Mode == format.ModeStdout || output != "text" {
		return false
	}
	for _, arg := range args {
		if arg == driver.StdinPath {
			return false
		}
	}
	return shouldUseTUI(mode, cmd.ErrOrStderr())
}

// fmtOptions merges ponyfmt.toml with the flags that were set explicitly.
func fmtOptions(cmd *cobra.Command) (driver.FormatOptions, string, error) {
	var opts driver.FormatOptions
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return opts, "", err
	}
	wd, err := os.Getwd()
	if err != nil {
		return opts, "", fmt.Errorf("fmt: %w", err)
	}
	cfg, err := config.Resolve(configPath, wd)
	if err != nil {
		return opts, "", fmt.Errorf("fmt: %w", err)
	}
	opts.Options = cfg.Options()
	opts.Exclude = append(opts.Exclude, cfg.Files.Exclude...)

	for _, num := range []struct {
		name string
		dst  *int
	}{
		{"indent", &opts.Options.IndentWidth},
		{"inline", &opts.Options.InlineLimit},
	} {
		if !flags.Changed(num.name) {
			continue
		}
		v, err := flags.GetInt(num.name)
		if err != nil {
			return opts, "", err
		}
		if v <= 0 {
			return opts, "", fmt.Errorf("fmt: --%s must be positive, got %d", num.name, v)
		}
		*num.dst = v
	}

	write, err := flags.GetBool("write")
	if err != nil {
		return opts, "", err
	}
	check, err := flags.GetBool("check")
	if err != nil {
		return opts, "", err
	}
	switch {
	case write:
		opts.Options.Mode = format.ModeWrite
	case check:
		opts.Options.Mode = format.ModeCheck
	}

	output, err := flags.GetString("output")
	if err != nil {
		return opts, "", err
	}
	switch output {
	case "text":
	case "json":
		if opts.Options.Mode == format.ModeStdout {
			return opts, "", fmt.Errorf("fmt: --output json requires --write or --check")
		}
	default:
		return opts, "", fmt.Errorf("fmt: unsupported output format %q", output)
	}

	if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
		return opts, "", err
	}
	if opts.Jobs < 0 {
		return opts, "", fmt.Errorf("fmt: --jobs must not be negative")
	}
	exclude, err := flags.GetStringSlice("exclude")
	if err != nil {
		return opts, "", err
	}
	opts.Exclude = append(opts.Exclude, exclude...)

	useCache, err := flags.GetBool("cache")
	if err != nil {
		return opts, "", err
	}
	if useCache {
		if opts.Cache, err = driver.OpenDiskCache("ponyfmt"); err != nil {
			return opts, "", fmt.Errorf("fmt: %w", err)
		}
	}
	opts.Stdin = cmd.InOrStdin()
	return opts, output, nil
}

func renderFmtStdout(stdout, stderr io.Writer, results []driver.FormatResult) (hasErrors bool) {
	headers := len(results) > 1
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if headers {
			fmt.Fprintf(stdout, "===== %s =====\n", res.Path)
		}
		_, _ = stdout.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(stdout, stderr io.Writer, results []driver.FormatResult, mode format.Mode, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		hasChanges = hasChanges || res.Changed
		// stdin некуда переписывать: --write печатает его целиком
		if res.Path == driver.StdinPath && mode == format.ModeWrite {
			_, _ = stdout.Write(res.Formatted)
			continue
		}
		if !res.Changed || quiet {
			continue
		}
		if mode == format.ModeCheck {
			fmt.Fprintln(stdout, res.Path)
		} else {
			fmt.Fprintf(stdout, "reformatted %s\n", res.Path)
		}
	}
	return hasErrors, hasChanges
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		hasErrors = hasErrors || res.Err != nil
		hasChanges = hasChanges || res.Changed
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(w io.Writer, results []driver.FormatResult, mode format.Mode) error {
	type jsonResult struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
		Cached  bool   `json:"cached,omitempty"`
		Error   string `json:"error,omitempty"`
		Mode    string `json:"mode"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, Mode: mode.String()}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
