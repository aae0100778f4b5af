package model

import (
	"fmt"
	"strings"
)

// BufferSeparator separates a file name from a region name in buffer ids.
const BufferSeparator = "@"

// BufferID identifies a buffer inside one workspace request. An empty Region
// denotes the whole file.
type BufferID struct {
	FileName string `yaml:"fileName"`
	Region   string `yaml:"region,omitempty"`
}

// ParseBufferID parses "file" or "file@region".
func ParseBufferID(s string) (BufferID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return BufferID{}, fmt.Errorf("empty buffer id")
	}

	idx := strings.LastIndex(s, BufferSeparator)
	if idx < 0 {
		return BufferID{FileName: s}, nil
	}

	id := BufferID{FileName: s[:idx], Region: s[idx+1:]}
	if id.FileName == "" || id.Region == "" {
		return BufferID{}, fmt.Errorf("malformed buffer id %q", s)
	}

	return id, nil
}

// IsWholeFile reports whether the buffer covers its entire file.
func (id BufferID) IsWholeFile() bool {
	return id.Region == ""
}

// WholeFile returns the id of the file that owns the buffer.
func (id BufferID) WholeFile() BufferID {
	return BufferID{FileName: id.FileName}
}

func (id BufferID) String() string {
	if id.Region == "" {
		return id.FileName
	}

	return id.FileName + BufferSeparator + id.Region
}

// SourceFile is a host file whose regions buffers may replace.
type SourceFile struct {
	Name string
	Text string
}

// Buffer is caller supplied text for a whole file or one region of it.
// Position is the caller's cursor inside Content.
type Buffer struct {
	ID       BufferID
	Content  string
	Position int
}

// Workspace is one request: host files, buffers and pass-through directives.
type Workspace struct {
	Type           string
	Files          []SourceFile
	Buffers        []Buffer
	Usings         []string
	ActiveBufferID BufferID
}

// ActiveBuffer returns the buffer the cursor lives in. Without an explicit
// active id the first buffer is used.
func (w Workspace) ActiveBuffer() (Buffer, bool) {
	if len(w.Buffers) == 0 {
		return Buffer{}, false
	}

	if w.ActiveBufferID == (BufferID{}) {
		return w.Buffers[0], true
	}

	for _, b := range w.Buffers {
		if b.ID == w.ActiveBufferID {
			return b, true
		}
	}

	return Buffer{}, false
}
