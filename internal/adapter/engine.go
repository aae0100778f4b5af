package adapter

import (
	"context"

	m "github.com/dystudio/try/internal/model"
)

// ExecutionEngine runs or checks composed documents. Positions in its
// results are expressed in composed-document coordinates.
type ExecutionEngine interface {
	// Execute runs every document of the request in order.
	Execute(ctx context.Context, req m.EngineRequest) (m.RawRunResult, error)
	// Compile checks the documents without running them.
	Compile(ctx context.Context, req m.EngineRequest) ([]m.RawDiagnostic, error)
}

// LanguageEngine answers editor queries at a composed offset.
type LanguageEngine interface {
	Complete(ctx context.Context, req m.EngineRequest, document string, offset int) (m.RawCompletionList, error)
	SignatureHelp(ctx context.Context, req m.EngineRequest, document string, offset int) (m.RawSignatureHelp, error)
}
