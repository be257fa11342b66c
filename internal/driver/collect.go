package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StdinPath names standard input among the paths.
const StdinPath = "-"

// SourceExt is the extension of files picked up from directories.
const SourceExt = ".pony"

// collectSourceFiles expands directories into their .pony files, skipping excluded entries.
// Files named explicitly are kept whatever their extension; the result is sorted with stdin first.
func collectSourceFiles(ctx context.Context, paths, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p == StdinPath {
			addFile(p)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(filepath.Clean(p))
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if path != p && excluded(p, path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && filepath.Ext(path) == SourceExt {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.SortFunc(files, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == StdinPath:
			return -1
		case b == StdinPath:
			return 1
		}
		return strings.Compare(a, b)
	})
	return files, nil
}

// excluded matches each pattern against the entry name and its slash path relative to root.
// Names and patterns are compared in NFC: some filesystems return decomposed names.
func excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	name := norm.NFC.String(filepath.Base(path))
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = norm.NFC.String(filepath.ToSlash(rel))
	for _, pat := range patterns {
		pat = norm.NFC.String(strings.TrimSuffix(filepath.ToSlash(pat), "/"))
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
