// Package adapter contains the engines and the infrastructure behind the
// workflow: request loading, report storage and file watching.
package adapter

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("try")
}
