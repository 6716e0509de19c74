package qml

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Source identifies where a document originates so callers can hand the
// orchestrator files, fs.FS entries, or in-memory text without leaking the
// loading strategy.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindString SourceKind = "string"
)

type fileSource struct {
	path string
}

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return s.path }

// SourceFromFile returns a Source pointing at an on-disk document.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return s.name }

// SourceFromFS returns a Source identifying a document inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type stringSource struct {
	text string
}

func (s stringSource) Kind() SourceKind { return SourceKindString }
func (s stringSource) Location() string { return "inline" }

// SourceFromString wraps an in-memory document.
func SourceFromString(text string) Source {
	return stringSource{text: text}
}

// Load parses the document identified by src. fsys is consulted for fs
// sources only and may be nil otherwise.
func Load(src Source, fsys fs.FS) (*Document, error) {
	switch s := src.(type) {
	case fileSource:
		return ParseFile(s.path)
	case fsSource:
		if fsys == nil {
			return nil, fmt.Errorf("qml: fs source %s requires a filesystem", s.name)
		}
		return ParseFS(fsys, s.name)
	case stringSource:
		return ParseString(s.text), nil
	case nil:
		return nil, fmt.Errorf("qml: source is required")
	default:
		return nil, fmt.Errorf("qml: unsupported source kind %q", src.Kind())
	}
}
