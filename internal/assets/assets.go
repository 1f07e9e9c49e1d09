// Package assets loads the text-art card faces the renderer composites.
// A face directory holds one file per rank (ace.txt through 2.txt), each
// a rectangle of identical dimensions across the whole set. Faces are
// immutable after loading and shared by every card of the same rank.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Names lists the rank face files in canonical order, matching the
// point values in Points below.
var Names = []string{"ace", "king", "queen", "jack", "10", "9", "8", "7", "6", "5", "4", "3", "2"}

// Points pairs Names with each rank's blackjack point value.
var Points = []int{11, 10, 10, 10, 10, 9, 8, 7, 6, 5, 4, 3, 2}

var (
	// ErrMissingAsset indicates a rank face file could not be read.
	ErrMissingAsset = errors.New("missing card asset")
	// ErrEmptyAsset indicates a face file contained no lines.
	ErrEmptyAsset = errors.New("empty card asset")
	// ErrRaggedAsset indicates lines within one face differ in width.
	ErrRaggedAsset = errors.New("ragged card asset")
	// ErrDimensionMismatch indicates a face whose size differs from the
	// first face loaded.
	ErrDimensionMismatch = errors.New("card asset dimensions differ")
)

// Face is one rank's renderable card art, pre-split into fixed-width
// lines so the renderer can index rows directly.
type Face struct {
	Name  string
	lines []string
}

// Line returns the row-th line of the face.
func (f *Face) Line(row int) string {
	return f.lines[row]
}

// Width returns the printable width of the face in characters.
func (f *Face) Width() int {
	return utf8.RuneCountInString(f.lines[0])
}

// Height returns the number of lines in the face.
func (f *Face) Height() int {
	return len(f.lines)
}

// Library holds the 13 rank faces with uniform dimensions.
type Library struct {
	faces  map[string]*Face
	width  int
	height int
}

// Face returns the face for a rank name ("ace", "king", ... "2").
func (l *Library) Face(name string) (*Face, bool) {
	f, ok := l.faces[name]
	return f, ok
}

// Width returns the shared face width in characters.
func (l *Library) Width() int { return l.width }

// Height returns the shared face height in lines.
func (l *Library) Height() int { return l.height }

// NewLibrary assembles a library from already-built faces. One face per
// rank name is required and all faces must share the same dimensions.
func NewLibrary(faces []*Face) (*Library, error) {
	lib := &Library{faces: make(map[string]*Face, len(Names))}
	for _, face := range faces {
		if lib.width == 0 && lib.height == 0 {
			lib.width = face.Width()
			lib.height = face.Height()
		} else if face.Width() != lib.width || face.Height() != lib.height {
			return nil, fmt.Errorf("%w: %s is %dx%d, want %dx%d",
				ErrDimensionMismatch, face.Name, face.Width(), face.Height(), lib.width, lib.height)
		}
		lib.faces[face.Name] = face
	}
	for _, name := range Names {
		if _, ok := lib.faces[name]; !ok {
			return nil, fmt.Errorf("%w: no face named %q", ErrMissingAsset, name)
		}
	}
	return lib, nil
}

// Load reads the 13 rank faces from dir and validates that every face
// is rectangular and that all faces share the same dimensions.
func Load(dir string) (*Library, error) {
	faces := make([]*Face, 0, len(Names))
	for _, name := range Names {
		path := filepath.Join(dir, name+".txt")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingAsset, path, err)
		}
		face, err := parseFace(name, string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		faces = append(faces, face)
	}
	return NewLibrary(faces)
}

func parseFace(name, content string) (*Face, error) {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, ErrEmptyAsset
	}
	lines := strings.Split(content, "\n")
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if utf8.RuneCountInString(line) != width {
			return nil, fmt.Errorf("%w: line %d is %d wide, want %d",
				ErrRaggedAsset, i+1, utf8.RuneCountInString(line), width)
		}
	}
	return &Face{Name: name, lines: lines}, nil
}

// NewFace builds a face directly from lines. Callers outside of tests
// normally go through Load; this exists so tooling and tests can build
// faces without touching the filesystem.
func NewFace(name string, lines ...string) *Face {
	return &Face{Name: name, lines: lines}
}
