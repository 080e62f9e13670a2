// Package session implements the lifecycle of the single workspace
// container: probe, launch decision, the blocking wait, and the
// interrupt-driven teardown.
package session

// Action is the single lifecycle action chosen for one invocation.
type Action string

const (
	// ActionAttach means a running container already backs the session;
	// nothing is issued against the runtime.
	ActionAttach Action = "attach"
	// ActionRestart starts an existing stopped container. Image and
	// mount are fixed at creation time, so none are applied here.
	ActionRestart Action = "restart"
	// ActionCreate creates a fresh container from image defaults only.
	ActionCreate Action = "create"
	// ActionCreateEnv creates a fresh container seeded from the
	// environment artifact.
	ActionCreateEnv Action = "create+env"
)

// Plan picks exactly one action from the probe results and the artifact
// flag. Precedence: running wins over merely existing, existing wins over
// creating. The artifact is only consulted on the create branch.
func Plan(exists, running, haveEnv bool) Action {
	switch {
	case running:
		return ActionAttach
	case exists:
		return ActionRestart
	case haveEnv:
		return ActionCreateEnv
	default:
		return ActionCreate
	}
}
