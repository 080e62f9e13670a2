// Package cli holds the application state shared by the commands.
package cli

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/labpod/labpod/internal/container"
	"github.com/labpod/labpod/internal/journal"
)

// BuildInfo carries the ldflags-injected version metadata.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// App is constructed once in main and handed to every command.
type App struct {
	Build BuildInfo

	runtime container.Runtime
	journal *journal.Journal
}

func NewApp(build BuildInfo) *App {
	return &App{Build: build}
}

// NewAppWithRuntime wires a pre-built runtime instead of dialing the
// daemon (for testing).
func NewAppWithRuntime(build BuildInfo, rt container.Runtime) *App {
	return &App{Build: build, runtime: rt}
}

// Runtime lazily connects to the Docker daemon. Connection failure is
// fatal to the invocation, so the error propagates to the command.
func (a *App) Runtime(ctx context.Context) (container.Runtime, error) {
	if a.runtime == nil {
		rt, err := container.NewDockerRuntime(ctx)
		if err != nil {
			return nil, err
		}
		a.runtime = rt
	}
	return a.runtime, nil
}

// Journal opens the history database on first use. The journal is
// advisory: failure to open it disables journaling with a warning instead
// of failing the session.
func (a *App) Journal() *journal.Journal {
	if a.journal == nil {
		path, err := journal.DefaultPath()
		if err != nil {
			log.Warn("Journal disabled", "error", err)
			return nil
		}
		j, err := journal.Open(path)
		if err != nil {
			log.Warn("Journal disabled", "error", err)
			return nil
		}
		a.journal = j
	}
	return a.journal
}

// Close releases held resources at process end.
func (a *App) Close() {
	if a.journal != nil {
		a.journal.Close()
	}
}
