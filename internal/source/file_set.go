package source

import (
	"crypto/sha256"
	"fmt"
	"math"
	"os"
	"sync"

	"fortio.org/safecast"
)

// MaxFileSize is the largest content a span can address.
const MaxFileSize = math.MaxUint32

// FileSet manages a collection of source files. It is safe for concurrent use.
type FileSet struct {
	mu    sync.RWMutex
	files []*File
	index map[string]FileID // path -> последняя версия
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		index: make(map[string]FileID),
	}
}

// Add stores already normalized content, computes LineIdx and Hash, and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) (FileID, error) {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		return 0, fmt.Errorf("%s: file too large: %w", path, err)
	}
	file := &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	id, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		return 0, fmt.Errorf("len files overflow: %w", err)
	}
	file.ID = FileID(id)
	fileSet.files = append(fileSet.files, file)
	fileSet.index[file.Path] = file.ID
	return file.ID, nil
}

// Load reads a file from disk, normalizes BOM/CRLF, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := Normalize(content)
	return fileSet.Add(path, content, flags)
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) (FileID, error) {
	content, flags := Normalize(content)
	return fileSet.Add(name, content, flags|FileVirtual)
}

// Get returns the file for the given ID or nil when the ID is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return fileSet.files[id]
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Len returns the number of stored file versions.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	return f.Resolve(span)
}

// Resolve converts a span of this file into line and column positions.
// Offsets past the end are clamped to the content length.
func (f *File) Resolve(span Span) (start, end LineCol) {
	s, e := span.Clamp(len(f.Content))
	return toLineCol(f.LineIdx, uint32(s)), toLineCol(f.LineIdx, uint32(e)) //nolint:gosec // размер проверен в Add
}

// Text returns the content covered by span, clamped to the file.
func (f *File) Text(span Span) string {
	s, e := span.Clamp(len(f.Content))
	return string(f.Content[s:e])
}
