package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dystudio/try/internal/domain"
	domainmocks "github.com/dystudio/try/internal/domain/mocks"
)

func TestRunCmd_PassesRequest(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, domain.RunArgs{Request: "hello.try.yaml"}).Return(nil)

	cmd.SetArgs(withConfig(absentConfig(t), "run", "hello.try.yaml"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_CompileAndSave(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow, newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, domain.RunArgs{
		Request: "hello.try.yaml",
		Compile: true,
		Reports: "out",
	}).Return(nil)

	cmd.SetArgs(withConfig(absentConfig(t), "run", "-c", "--save", "-r", "out", "hello.try.yaml"))
	require.NoError(t, cmd.Execute())
}

func TestRunCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow, newRunCmd())

	boom := errors.New("boom")
	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(boom)

	cmd.SetArgs(withConfig(absentConfig(t), "run", "hello.try.yaml"))
	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRunCmd_RequiresOneRequest(t *testing.T) {
	cmd := newTestRoot(t, domainmocks.NewMockWorkflow(t), newRunCmd())

	cmd.SetArgs(withConfig(absentConfig(t), "run"))
	assert.Error(t, cmd.Execute())

	cmd.SetArgs(withConfig(absentConfig(t), "run", "a.try.yaml", "b.try.yaml"))
	assert.Error(t, cmd.Execute())
}

func TestComposeCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow, newComposeCmd())

	mockWorkflow.EXPECT().Compose(domain.ComposeArgs{Request: "hello.try.yaml"}).Return(nil)

	cmd.SetArgs(withConfig(absentConfig(t), "compose", "hello.try.yaml"))
	require.NoError(t, cmd.Execute())
}

func TestWatchCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd := newTestRoot(t, mockWorkflow, newWatchCmd())

	mockWorkflow.EXPECT().Watch(mock.Anything, domain.WatchArgs{RunArgs: domain.RunArgs{
		Request: "hello.try.yaml",
		Compile: true,
	}}).Return(nil)

	cmd.SetArgs(withConfig(absentConfig(t), "watch", "--compile", "hello.try.yaml"))
	require.NoError(t, cmd.Execute())
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run <request.try.yaml>", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("compile"))
	assert.NotNil(t, cmd.Flags().Lookup("save"))
	assert.Equal(t, "c", cmd.Flags().Lookup("compile").Shorthand)
}
