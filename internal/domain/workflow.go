package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dystudio/try/internal/adapter"
	"github.com/dystudio/try/internal/controller"
	m "github.com/dystudio/try/internal/model"
)

// RunArgs selects one request to run. Compile only checks it. A non-empty
// Reports directory receives the result.
type RunArgs struct {
	Request m.Path
	Compile bool
	Reports m.Path
}

// ComposeArgs selects one request to compose.
type ComposeArgs struct {
	Request m.Path
}

// QueryArgs selects a cursor for completion or signature help. Buffer and
// Position override the request's active buffer and its cursor; a negative
// Position keeps the cursor from the request.
type QueryArgs struct {
	Request  m.Path
	Buffer   string
	Position int
}

// BatchArgs runs every request found under Paths.
type BatchArgs struct {
	Paths           []m.Path
	Reports         m.Path
	Compile         bool
	Threads         int
	ShardIndex      int
	TotalShardCount int
}

// ViewArgs selects a reports directory.
type ViewArgs struct {
	Reports m.Path
}

// WatchArgs re-runs Request whenever files next to it change.
type WatchArgs struct {
	RunArgs
}

// ErrBatchFailed is returned when at least one request of a batch could not
// be processed.
var ErrBatchFailed = errors.New("batch failed")

// Workflow implements the CLI level operations.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Compose(args ComposeArgs) error
	Complete(ctx context.Context, args QueryArgs) error
	Signature(ctx context.Context, args QueryArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	View(args ViewArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	loader  adapter.WorkspaceLoader
	store   adapter.ReportStore
	watcher adapter.Watcher
	ui      controller.UI
	orch    Orchestrator
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	loader adapter.WorkspaceLoader,
	store adapter.ReportStore,
	watcher adapter.Watcher,
	ui controller.UI,
	orch Orchestrator,
) Workflow {
	return &workflow{
		loader:  loader,
		store:   store,
		watcher: watcher,
		ui:      ui,
		orch:    orch,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	report, err := w.runRequest(ctx, args.Request, args.Compile)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayRun(args.Request, report.Result); err != nil {
		return err
	}

	return w.saveReports(args.Reports, []m.Report{report})
}

func (w *workflow) Compose(args ComposeArgs) error {
	ws, err := w.loader.Load(args.Request)
	if err != nil {
		return err
	}

	comp, err := w.orch.Compose(ws)
	if err != nil {
		return err
	}

	return w.ui.DisplayComposition(args.Request, comp)
}

func (w *workflow) Complete(ctx context.Context, args QueryArgs) error {
	ws, err := w.queryWorkspace(args)
	if err != nil {
		return err
	}

	list, err := w.orch.Complete(ctx, ws)
	if err != nil {
		return err
	}

	return w.ui.DisplayCompletions(list)
}

func (w *workflow) Signature(ctx context.Context, args QueryArgs) error {
	ws, err := w.queryWorkspace(args)
	if err != nil {
		return err
	}

	help, err := w.orch.SignatureHelp(ctx, ws)
	if err != nil {
		return err
	}

	return w.ui.DisplaySignatureHelp(help)
}

// Batch runs the discovered requests of this shard with a worker pool.
// Entries are reported in discovery order whatever the scheduling.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	requests, err := w.loader.Discover(args.Paths)
	if err != nil {
		return err
	}

	requests = shardRequests(requests, args.ShardIndex, args.TotalShardCount)
	entries := w.runBatch(ctx, requests, args.Threads, args.Compile)

	var (
		reports []m.Report
		failed  int
	)

	for _, entry := range entries {
		if entry.Err != nil {
			failed++

			continue
		}

		reports = append(reports, m.Report{Request: entry.Request, Workspace: entry.Workspace, Result: entry.Result})
	}

	if err := w.ui.DisplayBatch(entries); err != nil {
		return err
	}

	if err := w.saveReports(args.Reports, reports); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d request(s)", ErrBatchFailed, failed, len(entries))
	}

	return nil
}

func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}

	return w.ui.DisplayReports(reports)
}

// Watch runs the request once, then again after every change until ctx is
// done. Failed re-runs are traced and do not stop watching.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.Run(ctx, args.RunArgs); err != nil {
		return err
	}

	return w.watcher.Watch(ctx, []m.Path{args.Request}, func(changed []m.Path) {
		tracer().Infof("%d file(s) changed, re-running %s", len(changed), args.Request)

		if err := w.Run(ctx, args.RunArgs); err != nil {
			tracer().Errorf("re-running %s: %v", args.Request, err)
		}
	})
}

func (w *workflow) runRequest(ctx context.Context, request m.Path, compile bool) (m.Report, error) {
	ws, err := w.loader.Load(request)
	if err != nil {
		return m.Report{}, err
	}

	var result m.RunResult
	if compile {
		result, err = w.orch.Compile(ctx, ws)
	} else {
		result, err = w.orch.Run(ctx, ws)
	}

	if err != nil {
		return m.Report{}, fmt.Errorf("%s: %w", request, err)
	}

	return m.Report{Request: request, Workspace: ws.Type, Result: result}, nil
}

func (w *workflow) queryWorkspace(args QueryArgs) (m.Workspace, error) {
	ws, err := w.loader.Load(args.Request)
	if err != nil {
		return m.Workspace{}, err
	}

	if args.Buffer != "" {
		id, err := m.ParseBufferID(args.Buffer)
		if err != nil {
			return m.Workspace{}, err
		}

		ws.ActiveBufferID = id
	}

	if args.Position < 0 {
		return ws, nil
	}

	active, ok := ws.ActiveBuffer()
	if !ok {
		return m.Workspace{}, bufferError(ErrUnknownBuffer, ws.ActiveBufferID, "active buffer is not part of the workspace")
	}

	for i := range ws.Buffers {
		if ws.Buffers[i].ID == active.ID {
			ws.Buffers[i].Position = args.Position
		}
	}

	return ws, nil
}

func (w *workflow) saveReports(dir m.Path, reports []m.Report) error {
	if dir == "" || len(reports) == 0 {
		return nil
	}

	if err := w.store.SaveReports(dir, reports); err != nil {
		return fmt.Errorf("failed to save reports: %w", err)
	}

	if err := w.store.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("failed to regenerate report index: %w", err)
	}

	return nil
}

type batchJob struct {
	index   int
	request m.Path
}

func (w *workflow) runBatch(ctx context.Context, requests []m.Path, threads int, compile bool) []m.BatchEntry {
	if threads <= 0 {
		threads = 1
	}

	entries := make([]m.BatchEntry, len(requests))
	jobs := make(chan batchJob, len(requests))

	var wg sync.WaitGroup

	for i := 0; i < threads; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for job := range jobs {
				report, err := w.runRequest(ctx, job.request, compile)
				entries[job.index] = m.BatchEntry{Request: job.request, Workspace: report.Workspace, Result: report.Result, Err: err}
			}
		}()
	}

	for i, request := range requests {
		jobs <- batchJob{index: i, request: request}
	}

	close(jobs)
	wg.Wait()

	return entries
}

// shardRequests keeps every request whose position modulo total equals index.
func shardRequests(requests []m.Path, index, total int) []m.Path {
	if total <= 1 {
		return requests
	}

	var shard []m.Path

	for i, request := range requests {
		if i%total == index {
			shard = append(shard, request)
		}
	}

	return shard
}
