package session

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/labpod/labpod/internal/config"
	"github.com/labpod/labpod/internal/container"
	"github.com/labpod/labpod/internal/env"
)

// Recorder receives lifecycle events for the advisory journal. A nil
// Recorder disables journaling.
type Recorder interface {
	Record(sessionID, containerName, action, detail string) error
}

// Confirmer asks the operator a yes/no question. Only an affirmative
// answer returns true; any error is treated by callers as a decline.
type Confirmer func(message string, def bool) (bool, error)

// Progress wraps a long call with user-visible feedback. The default runs
// the call directly.
type Progress func(label string, fn func() error) error

// Session drives one invocation's lifecycle against the runtime.
type Session struct {
	Runtime container.Runtime
	Config  config.Session

	// EnvPath is where the environment artifact is looked for. Empty
	// means the conventional name in the working directory.
	EnvPath      string
	PublishSpecs []string

	Journal     Recorder
	Confirm     Confirmer
	AutoConfirm bool
	Progress    Progress

	id       string
	shutdown shutdownGuard
}

// ID returns the session's journal identifier, generating it on first use.
func (s *Session) ID() string {
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s.id
}

func (s *Session) envPath() string {
	if s.EnvPath != "" {
		return s.EnvPath
	}
	return env.ArtifactName
}

func (s *Session) progress(label string, fn func() error) error {
	if s.Progress != nil {
		return s.Progress(label, fn)
	}
	return fn()
}

// Launch probes the runtime and executes exactly one planned action. Any
// runtime failure is returned as-is: launches are not retried and no
// partially created container is cleaned up.
func (s *Session) Launch(ctx context.Context) (Action, error) {
	exists, running, err := s.Runtime.Probe(ctx, s.Config.ContainerName)
	if err != nil {
		return "", err
	}

	haveEnv := env.DetectAt(s.envPath())
	action := Plan(exists, running, haveEnv)

	switch action {
	case ActionAttach:
		log.Info("Container already running, reusing it", "name", s.Config.ContainerName)

	case ActionRestart:
		log.Info("Container exists but is stopped, starting it", "name", s.Config.ContainerName)
		if err := s.Runtime.Start(ctx, s.Config.ContainerName); err != nil {
			return "", err
		}

	case ActionCreate, ActionCreateEnv:
		opts := container.CreateOptions{
			Name:         s.Config.ContainerName,
			Image:        s.Config.Image,
			MountPath:    s.Config.MountPath,
			WorkspaceDir: config.WorkspaceDir,
			PublishSpecs: s.PublishSpecs,
		}
		if action == ActionCreateEnv {
			pairs, err := env.Load(s.envPath())
			if err != nil {
				return "", err
			}
			opts.Env = pairs
			log.Info("Creating container with environment file",
				"name", s.Config.ContainerName, "env_file", s.envPath())
		} else {
			log.Info("Creating container", "name", s.Config.ContainerName)
		}

		err := s.progress("Creating container "+s.Config.ContainerName, func() error {
			_, createErr := s.Runtime.Create(ctx, opts)
			return createErr
		})
		if err != nil {
			return "", err
		}
	}

	s.record(string(action), "image="+s.Config.Image)
	return action, nil
}

// Run is the whole session: launch, attach guidance, block until an
// interrupt arrives, then tear down. It returns nil after a completed
// shutdown so the process can exit zero.
func (s *Session) Run(ctx context.Context, interrupts <-chan os.Signal) error {
	if _, err := s.Launch(ctx); err != nil {
		return err
	}

	s.PrintAttachHint()
	s.WaitForInterrupt(interrupts)

	fmt.Println()
	s.Shutdown(ctx)
	return nil
}

// record writes a journal event, logging and otherwise ignoring failures.
func (s *Session) record(action, detail string) {
	if s.Journal == nil {
		return
	}
	if err := s.Journal.Record(s.ID(), s.Config.ContainerName, action, detail); err != nil {
		log.Warn("Could not write journal entry", "action", action, "error", err)
	}
}
