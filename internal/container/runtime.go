// Package container abstracts the container runtime behind a small
// interface so the lifecycle logic can be tested without a live daemon.
package container

import "context"

// Status is the observable lifecycle state of the named container.
type Status string

const (
	StatusAbsent  Status = "absent"
	StatusStopped Status = "stopped"
	StatusRunning Status = "running"
)

// CreateOptions carries everything a new workspace container needs. The
// container always runs detached with a TTY and all GPUs requested; these
// are properties of the workspace, not options.
type CreateOptions struct {
	Name      string
	Image     string
	MountPath string
	// WorkspaceDir is the in-container path the mount binds to.
	WorkspaceDir string
	// Env holds KEY=VALUE pairs from the environment artifact, nil when
	// no artifact was found.
	Env []string
	// PublishSpecs are optional docker-style port specs ("8888:8888").
	PublishSpecs []string
}

// Runtime is the set of operations the orchestrator needs from a container
// runtime. Implementations must treat the name as the sole identifier.
type Runtime interface {
	// Probe reports whether a container with the name exists in any
	// state, and whether it is currently running. Running implies exists.
	Probe(ctx context.Context, name string) (exists, running bool, err error)

	// Create creates the named container from opts and starts it
	// detached, returning the runtime identifier.
	Create(ctx context.Context, opts CreateOptions) (string, error)

	Start(ctx context.Context, name string) error
	Stop(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}
