package domain_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/dystudio/try/internal/adapter/mocks"
	controllermocks "github.com/dystudio/try/internal/controller/mocks"
	"github.com/dystudio/try/internal/domain"
	domainmocks "github.com/dystudio/try/internal/domain/mocks"
	m "github.com/dystudio/try/internal/model"
)

type workflowMocks struct {
	loader  *adaptermocks.MockWorkspaceLoader
	store   *adaptermocks.MockReportStore
	watcher *adaptermocks.MockWatcher
	ui      *controllermocks.MockUI
	orch    *domainmocks.MockOrchestrator
}

func newMockedWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		loader:  adaptermocks.NewMockWorkspaceLoader(t),
		store:   adaptermocks.NewMockReportStore(t),
		watcher: adaptermocks.NewMockWatcher(t),
		ui:      controllermocks.NewMockUI(t),
		orch:    domainmocks.NewMockOrchestrator(t),
	}

	wf := domain.NewWorkflow(mocks.loader, mocks.store, mocks.watcher, mocks.ui, mocks.orch)

	return wf, mocks
}

var sampleWorkspace = m.Workspace{
	Type:    "script",
	Buffers: []m.Buffer{{ID: m.BufferID{FileName: "main.lua"}, Content: "return 1", Position: 3}},
}

func TestWorkflow_Run(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	result := m.RunResult{RequestID: "r1", Succeeded: true, ReturnValue: int64(1)}

	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(sampleWorkspace, nil)
	mocks.orch.EXPECT().Run(mock.Anything, sampleWorkspace).Return(result, nil)
	mocks.ui.EXPECT().DisplayRun(m.Path("a.try.yaml"), result).Return(nil)

	err := wf.Run(context.Background(), domain.RunArgs{Request: "a.try.yaml"})
	require.NoError(t, err)
}

func TestWorkflow_RunCompileSavesReport(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	result := m.RunResult{RequestID: "r1", Succeeded: true}

	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(sampleWorkspace, nil)
	mocks.orch.EXPECT().Compile(mock.Anything, sampleWorkspace).Return(result, nil)
	mocks.ui.EXPECT().DisplayRun(m.Path("a.try.yaml"), result).Return(nil)
	mocks.store.EXPECT().SaveReports(m.Path("out"), []m.Report{{Request: "a.try.yaml", Workspace: "script", Result: result}}).Return(nil)
	mocks.store.EXPECT().RegenerateIndex(m.Path("out")).Return(nil)

	err := wf.Run(context.Background(), domain.RunArgs{Request: "a.try.yaml", Compile: true, Reports: "out"})
	require.NoError(t, err)
}

func TestWorkflow_RunErrors(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)
		loadErr := errors.New("no such file")

		mocks.loader.EXPECT().Load(mock.Anything).Return(m.Workspace{}, loadErr)

		err := wf.Run(context.Background(), domain.RunArgs{Request: "a.try.yaml"})
		assert.ErrorIs(t, err, loadErr)
	})

	t.Run("orchestrator", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.loader.EXPECT().Load(mock.Anything).Return(sampleWorkspace, nil)
		mocks.orch.EXPECT().Run(mock.Anything, mock.Anything).Return(m.RunResult{}, domain.ErrRegionNotFound)

		err := wf.Run(context.Background(), domain.RunArgs{Request: "a.try.yaml"})
		require.ErrorIs(t, err, domain.ErrRegionNotFound)
		assert.Contains(t, err.Error(), "a.try.yaml")
	})

	t.Run("save", func(t *testing.T) {
		wf, mocks := newMockedWorkflow(t)

		mocks.loader.EXPECT().Load(mock.Anything).Return(sampleWorkspace, nil)
		mocks.orch.EXPECT().Run(mock.Anything, mock.Anything).Return(m.RunResult{}, nil)
		mocks.ui.EXPECT().DisplayRun(mock.Anything, mock.Anything).Return(nil)
		mocks.store.EXPECT().SaveReports(mock.Anything, mock.Anything).Return(errors.New("disk full"))

		err := wf.Run(context.Background(), domain.RunArgs{Request: "a.try.yaml", Reports: "out"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save reports")
	})
}

func TestWorkflow_Compose(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	comp := m.NewComposition()

	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(sampleWorkspace, nil)
	mocks.orch.EXPECT().Compose(sampleWorkspace).Return(comp, nil)
	mocks.ui.EXPECT().DisplayComposition(m.Path("a.try.yaml"), comp).Return(nil)

	require.NoError(t, wf.Compose(domain.ComposeArgs{Request: "a.try.yaml"}))
}

func TestWorkflow_CompleteOverridesCursor(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	list := m.CompletionList{RequestID: "r1"}

	ws := sampleWorkspace
	ws.Buffers = []m.Buffer{
		{ID: m.BufferID{FileName: "main.lua"}, Content: "return 1", Position: 3},
		{ID: m.BufferID{FileName: "host.lua", Region: "body"}, Content: "pri", Position: 0},
	}

	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(ws, nil)
	mocks.orch.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(got m.Workspace) bool {
		active, ok := got.ActiveBuffer()

		return ok && active.ID.String() == "host.lua@body" && active.Position == 3 &&
			got.Buffers[0].Position == 3
	})).Return(list, nil)
	mocks.ui.EXPECT().DisplayCompletions(list).Return(nil)

	err := wf.Complete(context.Background(), domain.QueryArgs{Request: "a.try.yaml", Buffer: "host.lua@body", Position: 3})
	require.NoError(t, err)
}

func TestWorkflow_SignatureKeepsRequestCursor(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	help := m.SignatureHelp{RequestID: "r1"}

	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(sampleWorkspace, nil)
	mocks.orch.EXPECT().SignatureHelp(mock.Anything, sampleWorkspace).Return(help, nil)
	mocks.ui.EXPECT().DisplaySignatureHelp(help).Return(nil)

	err := wf.Signature(context.Background(), domain.QueryArgs{Request: "a.try.yaml", Position: -1})
	require.NoError(t, err)
}

func TestWorkflow_QueryUnknownBuffer(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	mocks.loader.EXPECT().Load(mock.Anything).Return(sampleWorkspace, nil)

	err := wf.Complete(context.Background(), domain.QueryArgs{Request: "a.try.yaml", Buffer: "other.lua", Position: 0})
	assert.ErrorIs(t, err, domain.ErrUnknownBuffer)
}

func TestWorkflow_Batch(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	requests := []m.Path{"a.try.yaml", "b.try.yaml", "c.try.yaml", "d.try.yaml"}
	loadErr := errors.New("broken request")

	mocks.loader.EXPECT().Discover([]m.Path{"./..."}).Return(requests, nil)
	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(sampleWorkspace, nil)
	mocks.loader.EXPECT().Load(m.Path("c.try.yaml")).Return(m.Workspace{}, loadErr)
	mocks.orch.EXPECT().Run(mock.Anything, sampleWorkspace).Return(m.RunResult{Succeeded: true}, nil)

	mocks.ui.EXPECT().DisplayBatch(mock.MatchedBy(func(entries []m.BatchEntry) bool {
		return len(entries) == 2 &&
			entries[0].Request == "a.try.yaml" && entries[0].Err == nil && entries[0].Workspace == "script" &&
			entries[1].Request == "c.try.yaml" && errors.Is(entries[1].Err, loadErr)
	})).Return(nil)
	mocks.store.EXPECT().SaveReports(m.Path("out"), mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 1 && reports[0].Request == "a.try.yaml"
	})).Return(nil)
	mocks.store.EXPECT().RegenerateIndex(m.Path("out")).Return(nil)

	err := wf.Batch(context.Background(), domain.BatchArgs{
		Paths:           []m.Path{"./..."},
		Reports:         "out",
		Threads:         3,
		ShardIndex:      0,
		TotalShardCount: 2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBatchFailed)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestWorkflow_BatchKeepsDiscoveryOrder(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)

	var requests []m.Path
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		requests = append(requests, m.Path(name+".try.yaml"))
	}

	var mu sync.Mutex

	loaded := 0

	mocks.loader.EXPECT().Discover(mock.Anything).Return(requests, nil)
	mocks.loader.EXPECT().Load(mock.Anything).RunAndReturn(func(path m.Path) (m.Workspace, error) {
		mu.Lock()
		loaded++
		mu.Unlock()

		return m.Workspace{Type: string(path)}, nil
	})
	mocks.orch.EXPECT().Compile(mock.Anything, mock.Anything).Return(m.RunResult{Succeeded: true}, nil)
	mocks.ui.EXPECT().DisplayBatch(mock.MatchedBy(func(entries []m.BatchEntry) bool {
		if len(entries) != len(requests) {
			return false
		}

		for i, entry := range entries {
			if entry.Request != requests[i] || entry.Workspace != string(requests[i]) {
				return false
			}
		}

		return true
	})).Return(nil)

	err := wf.Batch(context.Background(), domain.BatchArgs{Paths: []m.Path{"./..."}, Compile: true, Threads: 4})
	require.NoError(t, err)
	assert.Equal(t, len(requests), loaded)
}

func TestWorkflow_View(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	reports := []m.Report{{Request: "a.try.yaml"}}

	mocks.store.EXPECT().LoadReports(m.Path("out")).Return(reports, nil)
	mocks.ui.EXPECT().DisplayReports(reports).Return(nil)

	require.NoError(t, wf.View(domain.ViewArgs{Reports: "out"}))

	wf, mocks = newMockedWorkflow(t)
	mocks.store.EXPECT().LoadReports(m.Path("out")).Return(nil, errors.New("bad yaml"))

	err := wf.View(domain.ViewArgs{Reports: "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load reports")
}

func TestWorkflow_Watch(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	result := m.RunResult{Succeeded: true}

	mocks.loader.EXPECT().Load(m.Path("a.try.yaml")).Return(sampleWorkspace, nil).Times(3)
	mocks.orch.EXPECT().Run(mock.Anything, sampleWorkspace).Return(result, nil).Once()
	mocks.orch.EXPECT().Run(mock.Anything, sampleWorkspace).Return(m.RunResult{}, errors.New("flaky")).Once()
	mocks.orch.EXPECT().Run(mock.Anything, sampleWorkspace).Return(result, nil).Once()
	mocks.ui.EXPECT().DisplayRun(m.Path("a.try.yaml"), result).Return(nil).Times(2)
	mocks.watcher.EXPECT().Watch(mock.Anything, []m.Path{"a.try.yaml"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []m.Path, onChange func([]m.Path)) error {
			onChange([]m.Path{"program.lua"})
			onChange([]m.Path{"program.lua"})

			return nil
		})

	err := wf.Watch(context.Background(), domain.WatchArgs{RunArgs: domain.RunArgs{Request: "a.try.yaml"}})
	require.NoError(t, err)
}

func TestWorkflow_WatchInitialRunFails(t *testing.T) {
	wf, mocks := newMockedWorkflow(t)
	loadErr := errors.New("missing")

	mocks.loader.EXPECT().Load(mock.Anything).Return(m.Workspace{}, loadErr)

	err := wf.Watch(context.Background(), domain.WatchArgs{RunArgs: domain.RunArgs{Request: "a.try.yaml"}})
	assert.ErrorIs(t, err, loadErr)
}
