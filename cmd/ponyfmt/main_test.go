package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	rawActor       = "actor A\nnew create() =>\nNone\n"
	formattedActor = "actor A\n  new create() =>\n    None\n"
)

// run executes the CLI in-process with colors off.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// workspace creates files in a temp dir and makes it the working directory.
func workspace(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
	return dir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestFmtStdout(t *testing.T) {
	workspace(t, map[string]string{"a.pony": rawActor, "b.pony": formattedActor})

	out, _, err := run(t, "", "fmt", "a.pony")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if diff := cmp.Diff(formattedActor, out); diff != "" {
		t.Fatalf("single file (-want +got):\n%s", diff)
	}

	out, _, err = run(t, "", "fmt", "b.pony", "a.pony")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	want := "===== a.pony =====\n" + formattedActor + "===== b.pony =====\n" + formattedActor
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("two files (-want +got):\n%s", diff)
	}
}

func TestFmtStdin(t *testing.T) {
	workspace(t, nil)
	out, _, err := run(t, "actor A\nnew create() =>\nNone", "fmt", "-")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if out != formattedActor {
		t.Fatalf("want %q got %q", formattedActor, out)
	}
}

func TestFmtCheck(t *testing.T) {
	dir := workspace(t, map[string]string{"src/a.pony": rawActor, "src/b.pony": formattedActor})

	out, _, err := run(t, "", "fmt", "--check", "src")
	if !errors.Is(err, errChangesRequired) {
		t.Fatalf("want errChangesRequired, got %v", err)
	}
	if want := filepath.Join("src", "a.pony") + "\n"; out != want {
		t.Fatalf("want %q got %q", want, out)
	}
	if got := readFile(t, filepath.Join(dir, "src", "a.pony")); got != rawActor {
		t.Fatalf("check must not modify files, got %q", got)
	}

	if _, _, err := run(t, "", "fmt", "--check", "--quiet", "src/b.pony"); err != nil {
		t.Fatalf("formatted file: %v", err)
	}
}

func TestFmtWrite(t *testing.T) {
	dir := workspace(t, map[string]string{"a.pony": rawActor})

	out, _, err := run(t, "", "fmt", "--write", ".")
	if err != nil {
		t.Fatalf("fmt --write: %v", err)
	}
	if out != "reformatted a.pony\n" {
		t.Fatalf("want %q got %q", "reformatted a.pony\n", out)
	}
	if got := readFile(t, filepath.Join(dir, "a.pony")); got != formattedActor {
		t.Fatalf("want %q got %q", formattedActor, got)
	}

	out, _, err = run(t, "", "fmt", "-w", ".")
	if err != nil || out != "" {
		t.Fatalf("second run: out %q err %v", out, err)
	}
}

func TestFmtJSON(t *testing.T) {
	workspace(t, map[string]string{"a.pony": rawActor})
	out, _, err := run(t, "", "fmt", "--check", "--output", "json", "a.pony")
	if !errors.Is(err, errChangesRequired) {
		t.Fatalf("want errChangesRequired, got %v", err)
	}
	var got []struct {
		Path    string `json:"path"`
		Changed bool   `json:"changed"`
		Mode    string `json:"mode"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Path != "a.pony" || !got[0].Changed || got[0].Mode != "check" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestFmtConfig(t *testing.T) {
	workspace(t, map[string]string{
		"ponyfmt.toml":     "[format]\nindent_width = 4\n\n[files]\nexclude = [\"_corral\"]\n",
		"a.pony":           rawActor,
		"_corral/dep.pony": "actor Dep\n",
	})

	out, _, err := run(t, "", "fmt", ".")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if want := "actor A\n    new create() =>\n        None\n"; out != want {
		t.Fatalf("config indent: want %q got %q", want, out)
	}

	out, _, err = run(t, "", "fmt", "--indent", "3", "a.pony")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if want := "actor A\n   new create() =>\n      None\n"; out != want {
		t.Fatalf("flag override: want %q got %q", want, out)
	}
}

func TestFmtFailures(t *testing.T) {
	workspace(t, map[string]string{"a.pony": rawActor, "bin.pony": "actor\x00"})

	out, errOut, err := run(t, "", "fmt", "a.pony", "bin.pony")
	if !errors.Is(err, errFailedFiles) {
		t.Fatalf("want errFailedFiles, got %v", err)
	}
	if out != "===== a.pony =====\n"+formattedActor {
		t.Fatalf("good files are still printed, got %q", out)
	}
	if !strings.HasPrefix(errOut, "fmt: bin.pony: ") {
		t.Fatalf("want per-file error, got %q", errOut)
	}
}

func TestFmtFlagErrors(t *testing.T) {
	workspace(t, map[string]string{"a.pony": rawActor})
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"write and check", []string{"fmt", "--write", "--check", "a.pony"}, "none of the others"},
		{"zero indent", []string{"fmt", "--indent", "0", "a.pony"}, "--indent must be positive"},
		{"negative jobs", []string{"fmt", "--jobs", "-1", "a.pony"}, "--jobs must not be negative"},
		{"json without mode", []string{"fmt", "--output", "json", "a.pony"}, "requires --write or --check"},
		{"unknown output", []string{"fmt", "--check", "--output", "xml", "a.pony"}, "unsupported output format"},
		{"missing config", []string{"fmt", "--config", "nope.toml", "a.pony"}, "nope.toml"},
		{"bad color", []string{"--color", "sometimes", "version"}, "invalid --color"},
		{"bad trace level", []string{"--trace-level", "loud", "fmt", "a.pony"}, "invalid trace level"},
		{"bad ui", []string{"fmt", "--check", "--ui", "fancy", "a.pony"}, "invalid --ui value"},
		{"bad min severity", []string{"debug", "--min-severity", "fatal", "a.pony"}, "unknown severity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, "", tc.args...)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestFmtTrace(t *testing.T) {
	workspace(t, map[string]string{"a.pony": rawActor})
	_, errOut, err := run(t, "", "--trace", "-", "--trace-level", "pass", "fmt", "a.pony")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	for _, want := range []string{"[batch] → fmt", "[file]", "→ file", "[pass]", "render"} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("trace output misses %q:\n%s", want, errOut)
		}
	}
}

func TestFmtTimingsAndProfiles(t *testing.T) {
	dir := workspace(t, map[string]string{"a.pony": rawActor})
	cpu := filepath.Join(dir, "cpu.pprof")
	_, errOut, err := run(t, "", "--timings", "--cpu-profile", cpu, "fmt", "--check", "--ui", "off", "a.pony")
	if !errors.Is(err, errChangesRequired) {
		t.Fatalf("want errChangesRequired, got %v", err)
	}
	for _, want := range []string{"timings:\n", "parse", "render", "total"} {
		if !strings.Contains(errOut, want) {
			t.Fatalf("timings output misses %q:\n%s", want, errOut)
		}
	}
	if info, err := os.Stat(cpu); err != nil || info.Size() == 0 {
		t.Fatalf("cpu profile not written: %v", err)
	}
}

func TestDebug(t *testing.T) {
	workspace(t, map[string]string{"bad.pony": "actor A\nlet s = \"oops\n"})

	out, errOut, err := run(t, "", "debug", "bad.pony")
	if err != nil {
		t.Fatalf("debug: %v", err)
	}
	if !strings.HasPrefix(out, "source_file@1:1") {
		t.Fatalf("want tree dump, got %q", out)
	}
	if !strings.Contains(errOut, "bad.pony:2:9: ERROR LEX1002") {
		t.Fatalf("want diagnostic, got %q", errOut)
	}

	out, _, err = run(t, "", "debug", "--no-tree", "--output", "json", "bad.pony")
	if err != nil {
		t.Fatalf("debug json: %v", err)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil || payload.Count == 0 {
		t.Fatalf("want diagnostics in %q (%v)", out, err)
	}

	_, errOut, err = run(t, "", "debug", "--no-tree", "--min-severity", "error", "bad.pony")
	if err != nil {
		t.Fatalf("debug min-severity: %v", err)
	}
	if !strings.Contains(errOut, "ERROR LEX1002") {
		t.Fatalf("errors must pass the error filter, got %q", errOut)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "ponyfmt" || payload.Version == "" || payload.GitCommit != "unknown" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	out, _, err = run(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "ponyfmt ") {
		t.Fatalf("pretty version: %q %v", out, err)
	}
}
