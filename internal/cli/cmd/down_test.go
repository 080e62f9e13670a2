package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labpod/labpod/internal/cli"
	"github.com/labpod/labpod/internal/container"
)

// fakeRuntime records lifecycle calls so command tests can assert on
// which operations ran and in what order.
type fakeRuntime struct {
	stopErr   error
	removeErr error
	calls     []string
}

func (f *fakeRuntime) Probe(ctx context.Context, name string) (bool, bool, error) {
	f.calls = append(f.calls, "probe")
	return false, false, nil
}

func (f *fakeRuntime) Create(ctx context.Context, opts container.CreateOptions) (string, error) {
	f.calls = append(f.calls, "create")
	return "deadbeef", nil
}

func (f *fakeRuntime) Start(ctx context.Context, name string) error {
	f.calls = append(f.calls, "start")
	return nil
}

func (f *fakeRuntime) Stop(ctx context.Context, name string) error {
	f.calls = append(f.calls, "stop")
	return f.stopErr
}

func (f *fakeRuntime) Remove(ctx context.Context, name string) error {
	f.calls = append(f.calls, "remove")
	return f.removeErr
}

func runDown(t *testing.T, rt *fakeRuntime, args ...string) error {
	t.Helper()
	// Keep the journal away from the real history database.
	t.Setenv("HOME", t.TempDir())

	a := cli.NewAppWithRuntime(cli.BuildInfo{Version: "test"}, rt)
	t.Cleanup(a.Close)

	downCmd := NewDownCommand(a)
	downCmd.SetArgs(args)
	return downCmd.Execute()
}

func TestDownStopsWithoutRemoving(t *testing.T) {
	rt := &fakeRuntime{}

	require.NoError(t, runDown(t, rt, "--name", "labpod"))
	assert.Equal(t, []string{"stop"}, rt.calls)
}

func TestDownWithRmStopsThenRemoves(t *testing.T) {
	rt := &fakeRuntime{}

	require.NoError(t, runDown(t, rt, "--name", "labpod", "--rm"))
	assert.Equal(t, []string{"stop", "remove"}, rt.calls, "stop must precede remove")
}

func TestDownWithRmRemovesEvenWhenStopFails(t *testing.T) {
	rt := &fakeRuntime{stopErr: errors.New("engine hiccup")}

	require.NoError(t, runDown(t, rt, "--name", "labpod", "--rm"))
	assert.Equal(t, []string{"stop", "remove"}, rt.calls,
		"a failed stop is surfaced but must not skip removal")
}

func TestDownWithRmRemoveFailureStillCompletes(t *testing.T) {
	rt := &fakeRuntime{removeErr: errors.New("in use")}

	require.NoError(t, runDown(t, rt, "--name", "labpod", "--rm"))
	assert.Equal(t, []string{"stop", "remove"}, rt.calls)
}
