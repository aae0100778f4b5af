package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dystudio/try/internal/adapter"
	m "github.com/dystudio/try/internal/model"
)

// Orchestrator carries one workspace through composition, an engine call
// and translation back to buffer coordinates.
type Orchestrator interface {
	Compose(ws m.Workspace) (*m.Composition, error)
	Run(ctx context.Context, ws m.Workspace) (m.RunResult, error)
	Compile(ctx context.Context, ws m.Workspace) (m.RunResult, error)
	Complete(ctx context.Context, ws m.Workspace) (m.CompletionList, error)
	SignatureHelp(ctx context.Context, ws m.Workspace) (m.SignatureHelp, error)
}

type orchestrator struct {
	assembler Assembler
	exec      adapter.ExecutionEngine
	lang      adapter.LanguageEngine
	policy    UnmappedPolicy
	timeout   time.Duration
	newID     func() string
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestrator)

// WithUnmappedPolicy selects how unmappable diagnostics are reported.
func WithUnmappedPolicy(policy UnmappedPolicy) OrchestratorOption {
	return func(o *orchestrator) {
		o.policy = policy
	}
}

// WithTimeout bounds every engine call. Zero means no bound.
func WithTimeout(timeout time.Duration) OrchestratorOption {
	return func(o *orchestrator) {
		o.timeout = timeout
	}
}

// WithRequestIDs replaces the request id generator.
func WithRequestIDs(newID func() string) OrchestratorOption {
	return func(o *orchestrator) {
		o.newID = newID
	}
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// assembler and engines.
func NewOrchestrator(assembler Assembler, exec adapter.ExecutionEngine, lang adapter.LanguageEngine, opts ...OrchestratorOption) Orchestrator {
	o := &orchestrator{
		assembler: assembler,
		exec:      exec,
		lang:      lang,
		policy:    PolicyReanchor,
		newID:     uuid.NewString,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *orchestrator) Compose(ws m.Workspace) (*m.Composition, error) {
	comp, err := o.assembler.Assemble(ws)
	if err != nil {
		return nil, fmt.Errorf("failed to compose workspace: %w", err)
	}

	return comp, nil
}

func (o *orchestrator) Run(ctx context.Context, ws m.Workspace) (m.RunResult, error) {
	comp, req, err := o.prepare(ws)
	if err != nil {
		return m.RunResult{}, err
	}

	id := o.newID()
	tracer().P("request", id).Infof("executing %d document(s)", len(req.Documents))

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	raw, err := o.exec.Execute(ctx, req)
	if err != nil {
		tracer().P("request", id).Errorf("execution failed: %v", err)

		return m.RunResult{}, fmt.Errorf("failed to execute workspace: %w", err)
	}

	result := NewTranslator(NewRemapper(comp), o.policy).Run(raw)
	result.RequestID = id

	return result, nil
}

func (o *orchestrator) Compile(ctx context.Context, ws m.Workspace) (m.RunResult, error) {
	comp, req, err := o.prepare(ws)
	if err != nil {
		return m.RunResult{}, err
	}

	id := o.newID()
	tracer().P("request", id).Infof("compiling %d document(s)", len(req.Documents))

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	diags, err := o.exec.Compile(ctx, req)
	if err != nil {
		return m.RunResult{}, fmt.Errorf("failed to compile workspace: %w", err)
	}

	result := NewTranslator(NewRemapper(comp), o.policy).Run(m.RawRunResult{
		Output:      []string{},
		Diagnostics: diags,
	})
	result.RequestID = id
	result.Succeeded = !hasErrors(result.Diagnostics)

	return result, nil
}

// hasErrors reports whether any diagnostic kept for the caller is an error.
func hasErrors(diags []m.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == m.SeverityError {
			return true
		}
	}

	return false
}

func (o *orchestrator) Complete(ctx context.Context, ws m.Workspace) (m.CompletionList, error) {
	comp, req, err := o.prepare(ws)
	if err != nil {
		return m.CompletionList{}, err
	}

	remapper := NewRemapper(comp)

	active, doc, offset, err := o.cursor(ws, remapper)
	if err != nil {
		return m.CompletionList{}, err
	}

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	raw, err := o.lang.Complete(ctx, req, doc, offset)
	if err != nil {
		return m.CompletionList{}, fmt.Errorf("failed to complete in %s: %w", active, err)
	}

	list := NewTranslator(remapper, o.policy).Completions(active, raw)
	list.RequestID = o.newID()

	return list, nil
}

func (o *orchestrator) SignatureHelp(ctx context.Context, ws m.Workspace) (m.SignatureHelp, error) {
	comp, req, err := o.prepare(ws)
	if err != nil {
		return m.SignatureHelp{}, err
	}

	remapper := NewRemapper(comp)

	active, doc, offset, err := o.cursor(ws, remapper)
	if err != nil {
		return m.SignatureHelp{}, err
	}

	ctx, cancel := o.withTimeout(ctx)
	defer cancel()

	raw, err := o.lang.SignatureHelp(ctx, req, doc, offset)
	if err != nil {
		return m.SignatureHelp{}, fmt.Errorf("failed to get signature help in %s: %w", active, err)
	}

	help := NewTranslator(remapper, o.policy).SignatureHelp(active, raw)
	help.RequestID = o.newID()

	return help, nil
}

func (o *orchestrator) prepare(ws m.Workspace) (*m.Composition, m.EngineRequest, error) {
	comp, err := o.Compose(ws)
	if err != nil {
		return nil, m.EngineRequest{}, err
	}

	req := m.EngineRequest{WorkspaceType: ws.Type, Usings: ws.Usings}
	for _, doc := range comp.Documents() {
		req.Documents = append(req.Documents, m.EngineDocument{Name: doc.Name(), Text: doc.Text})
	}

	return comp, req, nil
}

// cursor maps the active buffer's cursor into the composed document.
func (o *orchestrator) cursor(ws m.Workspace, remapper *Remapper) (m.BufferID, string, int, error) {
	active, ok := ws.ActiveBuffer()
	if !ok {
		return m.BufferID{}, "", 0, bufferError(ErrUnknownBuffer, ws.ActiveBufferID, "active buffer is not part of the workspace")
	}

	doc, offset, err := remapper.ToComposedOffset(active.ID, active.Position)
	if err != nil {
		return m.BufferID{}, "", 0, fmt.Errorf("failed to locate cursor: %w", err)
	}

	return active.ID, doc, offset, nil
}

func (o *orchestrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, o.timeout)
}
