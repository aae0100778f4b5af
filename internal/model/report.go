package model

// Path represents a file system path.
type Path string

// Report is a persisted run of one request file.
type Report struct {
	Request   Path
	Workspace string
	Result    RunResult
}

// BatchEntry is the outcome of one request in a batch.
type BatchEntry struct {
	Request   Path
	Workspace string
	Result    RunResult
	Err       error
}
