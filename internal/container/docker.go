package container

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
)

// gpuDeviceRequests requires Docker engine 19.03 or newer.
const minEngineVersion = "19.03.0"

// stopTimeoutSeconds bounds how long the engine waits before killing the
// container's shell on stop.
const stopTimeoutSeconds = 30

// DockerRuntime implements Runtime against the Docker API.
type DockerRuntime struct {
	client client.APIClient
}

// NewDockerRuntime connects to the Docker daemon and verifies it is
// reachable. An unreachable daemon is fatal to the whole invocation, so the
// error is returned rather than retried.
func NewDockerRuntime(ctx context.Context) (*DockerRuntime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	d := &DockerRuntime{client: cli}
	if _, err := cli.Ping(ctx); err != nil {
		return nil, fmt.Errorf("Docker daemon not reachable: %w", err)
	}
	d.checkEngineVersion(ctx)

	return d, nil
}

// NewDockerRuntimeWithClient wraps an existing API client (for testing).
func NewDockerRuntimeWithClient(cli client.APIClient) *DockerRuntime {
	return &DockerRuntime{client: cli}
}

// checkEngineVersion warns when the engine predates GPU device requests.
// The create call's own error stays authoritative; this only gives the
// operator an earlier, clearer hint.
func (d *DockerRuntime) checkEngineVersion(ctx context.Context) {
	version, err := d.client.ServerVersion(ctx)
	if err != nil {
		log.Warn("Could not get Docker engine version", "error", err)
		return
	}

	v, err := semver.NewVersion(version.Version)
	if err != nil {
		log.Warn("Could not parse Docker engine version", "version", version.Version, "error", err)
		return
	}
	if v.LessThan(semver.MustParse(minEngineVersion)) {
		log.Warn("Docker engine is older than required for GPU access",
			"version", version.Version, "minimum", minEngineVersion)
	} else {
		log.Debug("Docker engine connected", "version", version.Version)
	}
}

// Probe answers existence and running state for the named container as of
// a single inspect call.
func (d *DockerRuntime) Probe(ctx context.Context, name string) (bool, bool, error) {
	resp, err := d.client.ContainerInspect(ctx, name)
	if err != nil {
		if client.IsErrNotFound(err) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to inspect container %s: %w", name, err)
	}

	running := resp.State != nil && resp.State.Running
	return true, running, nil
}

// Create creates and starts the workspace container: detached, interactive
// TTY running a shell, all GPUs, the host directory bound at the workspace
// path, plus any published ports.
func (d *DockerRuntime) Create(ctx context.Context, opts CreateOptions) (string, error) {
	cfg, hostCfg, err := buildCreateConfig(opts)
	if err != nil {
		return "", err
	}

	resp, err := d.client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, opts.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create container %s: %w", opts.Name, err)
	}

	if err := d.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container %s: %w", opts.Name, err)
	}

	log.Info("Container created", "name", opts.Name, "image", opts.Image, "id", shortID(resp.ID))
	return resp.ID, nil
}

// Start starts an existing stopped container. Image and mount parameters
// are fixed at creation time and cannot be changed here.
func (d *DockerRuntime) Start(ctx context.Context, name string) error {
	if err := d.client.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", name, err)
	}

	log.Info("Container started", "name", name)
	return nil
}

// Stop stops the named container.
func (d *DockerRuntime) Stop(ctx context.Context, name string) error {
	timeout := stopTimeoutSeconds
	if err := d.client.ContainerStop(ctx, name, container.StopOptions{Timeout: &timeout}); err != nil {
		return fmt.Errorf("failed to stop container %s: %w", name, err)
	}

	log.Info("Container stopped", "name", name)
	return nil
}

// Remove removes the named container. Callers stop it first; Remove never
// forces.
func (d *DockerRuntime) Remove(ctx context.Context, name string) error {
	if err := d.client.ContainerRemove(ctx, name, container.RemoveOptions{}); err != nil {
		return fmt.Errorf("failed to remove container %s: %w", name, err)
	}

	log.Info("Container removed", "name", name)
	return nil
}

// buildCreateConfig translates CreateOptions into the Docker API config
// pair. Kept free of client calls so the translation is unit-testable.
func buildCreateConfig(opts CreateOptions) (*container.Config, *container.HostConfig, error) {
	exposedPorts := nat.PortSet{}
	portBindings := nat.PortMap{}
	if len(opts.PublishSpecs) > 0 {
		var err error
		exposedPorts, portBindings, err = nat.ParsePortSpecs(opts.PublishSpecs)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid publish spec: %w", err)
		}
	}

	cfg := &container.Config{
		Image:        opts.Image,
		Cmd:          []string{"bash"},
		Tty:          true,
		OpenStdin:    true,
		WorkingDir:   opts.WorkspaceDir,
		Env:          opts.Env,
		ExposedPorts: exposedPorts,
	}

	hostCfg := &container.HostConfig{
		PortBindings: portBindings,
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: opts.MountPath,
				Target: opts.WorkspaceDir,
			},
		},
		Resources: container.Resources{
			DeviceRequests: []container.DeviceRequest{
				{
					Driver:       "nvidia",
					Count:        -1, // all GPUs
					Capabilities: [][]string{{"gpu"}},
				},
			},
		},
	}

	return cfg, hostCfg, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
