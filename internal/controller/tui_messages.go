package controller

import m "github.com/dystudio/try/internal/model"

// Message types.
type reportsMsg struct {
	reports []m.Report
}

// List item types.
type reportItem struct {
	index       int
	path        string
	succeeded   bool
	diagnostics int
}

func (r reportItem) FilterValue() string {
	return r.path
}
