package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"ponyfmt/internal/format"
	"ponyfmt/internal/observ"
	"ponyfmt/internal/parser"
	"ponyfmt/internal/source"
	"ponyfmt/internal/trace"
)

// ErrNoFiles is returned when the paths expand to nothing.
var ErrNoFiles = errors.New("format: no source files found")

// FormatOptions configures a formatting batch.
type FormatOptions struct {
	Options format.Options
	// Jobs limits concurrent files; <= 0 means GOMAXPROCS.
	Jobs    int
	Exclude []string
	// Cache, when set, lets write and check modes skip contents already known to be canonical.
	Cache *DiskCache
	// Stdin is read for the "-" path; nil means os.Stdin.
	Stdin io.Reader
	// Progress receives queued/working/done events per file.
	Progress ProgressSink
	// Timings accumulates read/parse/render/write durations over all files.
	Timings *observ.Timer
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte // set in stdout mode and for stdin
}

// FormatPaths formats the given files and directories (recursively collecting .pony files).
// Per-file failures are stored in the results; the returned error is reserved for
// path collection failures and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts.Options = opts.Options.WithDefaults()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeBatch, "fmt", trace.ParentFrom(ctx))
	defer span.End(opts.Options.Mode.String())
	ctx = trace.WithSpan(ctx, span)

	files, err := collectSourceFiles(ctx, paths, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	span.WithExtra("files", strconv.Itoa(len(files)))
	emit(opts.Progress, Event{Status: StatusQueued, Total: len(files)})
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOne(gctx, path, &opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOne(ctx context.Context, path string, opts *FormatOptions) (res FormatResult) {
	res.Path = path
	started := time.Now()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.ParentFrom(ctx))
	defer func() {
		span.WithExtra("changed", strconv.FormatBool(res.Changed)).
			WithExtra("cached", strconv.FormatBool(res.Cached))
		evt := Event{File: path, Status: StatusDone, Changed: res.Changed, Cached: res.Cached, Elapsed: time.Since(started)}
		if res.Err != nil {
			span.WithExtra("error", res.Err.Error())
			evt.Status, evt.Err = StatusError, res.Err
		}
		span.End(path)
		emit(opts.Progress, evt)
	}()
	ctx = trace.WithSpan(ctx, span)

	stop := opts.stage(path, StageRead)
	data, err := readInput(path, opts.Stdin)
	stop()
	if err != nil {
		res.Err = err
		return res
	}

	mode := opts.Options.Mode
	useCache := opts.Cache != nil && path != StdinPath && mode != format.ModeStdout
	var key Digest
	if useCache {
		key = cacheKey(data, opts.Options)
		if opts.Cache.Canonical(key) {
			res.Cached = true
			trace.Point(trace.FromContext(ctx), trace.ScopePass, "cache", "hit", span.ID())
			return res
		}
	}

	formatted, err := formatBytes(ctx, path, data, opts)
	if err != nil {
		res.Err = err
		return res
	}
	res.Changed = !bytes.Equal(data, formatted)

	switch {
	case mode == format.ModeCheck:
	case mode == format.ModeWrite && path != StdinPath:
		if res.Changed {
			stop := opts.stage(path, StageWrite)
			err := writeKeepingMode(path, formatted)
			stop()
			if err != nil {
				res.Err = err
				return res
			}
		}
	default:
		res.Formatted = formatted
	}

	if useCache && !res.Changed {
		// кэш best-effort: ошибка записи не делает файл неудачным
		_ = opts.Cache.Remember(key, path, len(data))
	}
	return res
}

// stage reports that path entered s and times it until the returned func is called.
func (opts *FormatOptions) stage(path string, s Stage) func() {
	emit(opts.Progress, Event{File: path, Stage: s, Status: StatusWorking})
	return opts.Timings.Track(string(s))
}

// formatBytes parses and renders one file, tracing each pass.
func formatBytes(ctx context.Context, path string, data []byte, opts *FormatOptions) ([]byte, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.ParentFrom(ctx)

	fileSet := source.NewFileSet()
	content, flags := source.Normalize(data)
	fileID, err := fileSet.Add(path, content, flags)
	if err != nil {
		return nil, err
	}
	sf := fileSet.Get(fileID)

	stop := opts.stage(path, StageParse)
	parseSpan := trace.Begin(tracer, trace.ScopePass, "parse", parent)
	parsed, err := parser.ParseFile(sf, parser.Options{})
	stop()
	if err != nil {
		parseSpan.End("failed")
		return nil, err
	}
	parseSpan.WithExtra("errors", strconv.FormatUint(uint64(parsed.Errors), 10)).End("")

	stop = opts.stage(path, StageRender)
	renderSpan := trace.Begin(tracer, trace.ScopePass, "render", parent)
	out := format.Tree(sf.Content, parsed.Root, opts.Options)
	renderSpan.End("")
	stop()
	return out, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != StdinPath {
		// #nosec G304 -- path is provided by the caller
		return os.ReadFile(path)
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// writeKeepingMode rewrites path keeping its permission bits.
func writeKeepingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}
