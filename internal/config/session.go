package config

import (
	"github.com/AlecAivazis/survey/v2"
)

// Session is the resolved, immutable configuration for one invocation.
type Session struct {
	ContainerName string
	Image         string
	MountPath     string
}

// PromptOverrides are values supplied on the command line. A non-empty
// field skips the corresponding prompt entirely.
type PromptOverrides struct {
	ContainerName string
	Image         string
	MountPath     string
}

// PromptSession asks for each field not already overridden, pre-filling the
// default so an empty answer keeps it. With assumeDefaults set, all prompts
// are skipped and defaults (or overrides) are used as-is.
func PromptSession(d Defaults, o PromptOverrides, assumeDefaults bool) (Session, error) {
	s := Session{
		ContainerName: Resolve(o.ContainerName, d.ContainerName),
		Image:         Resolve(o.Image, d.Image),
		MountPath:     Resolve(o.MountPath, d.MountPath),
	}
	if assumeDefaults {
		return s, s.Validate()
	}

	fields := []struct {
		message  string
		override string
		target   *string
	}{
		{"Container name:", o.ContainerName, &s.ContainerName},
		{"Image name:", o.Image, &s.Image},
		{"Host directory to mount:", o.MountPath, &s.MountPath},
	}

	for _, f := range fields {
		if f.override != "" {
			continue
		}
		var answer string
		prompt := &survey.Input{
			Message: f.message,
			Default: *f.target,
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return Session{}, err
		}
		*f.target = Resolve(answer, *f.target)
	}

	return s, s.Validate()
}
