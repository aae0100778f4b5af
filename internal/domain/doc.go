/*
Package domain composes caller buffers into engine-ready documents and maps
engine results back to buffer coordinates.

A request flows through the Assembler (region location and splicing), an
engine, and the Translator, which asks a Remapper to move every position
from composed-document coordinates back into the buffer that owns it.
Orchestrator ties these steps together for a single workspace, Workflow
drives them for the command line.
*/
package domain

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("try")
}
