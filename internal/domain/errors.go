package domain

import (
	"errors"
	"fmt"

	m "github.com/dystudio/try/internal/model"
)

// Error kinds reported by the assembler and the remapper.
var (
	ErrRegionNotFound    = errors.New("region not found")
	ErrDuplicateRegion   = errors.New("duplicate region")
	ErrUnknownBuffer     = errors.New("unknown buffer")
	ErrConflictingRegion = errors.New("conflicting region")
	ErrUnmapped          = errors.New("position is not mapped to a buffer")
)

// BufferError reports a malformed request for one buffer.
type BufferError struct {
	Kind   error
	Buffer m.BufferID
	Detail string
}

func (e *BufferError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Buffer, e.Kind)
	}

	return fmt.Sprintf("%s: %v: %s", e.Buffer, e.Kind, e.Detail)
}

// Unwrap exposes the kind to errors.Is.
func (e *BufferError) Unwrap() error {
	return e.Kind
}

func bufferError(kind error, id m.BufferID, format string, args ...any) *BufferError {
	return &BufferError{Kind: kind, Buffer: id, Detail: fmt.Sprintf(format, args...)}
}
