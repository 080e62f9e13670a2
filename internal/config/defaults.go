// Package config resolves the three session parameters: container name,
// image name and host mount path. Compiled-in defaults can be overridden by
// an optional config file, then by one line of operator input per field.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const (
	DefaultContainerName = "labpod"
	DefaultImage         = "labpod:cuda"

	// WorkspaceDir is where the host mount appears inside the container.
	WorkspaceDir = "/workspace"
)

// Defaults holds the pre-prompt values for the three session fields.
// The config file (if any) is read-only input; labpod never writes it.
type Defaults struct {
	ContainerName string `yaml:"container_name"`
	Image         string `yaml:"image"`
	MountPath     string `yaml:"mount_path"`
}

// ConfigFilePath returns the conventional location of the optional
// defaults file.
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "labpod", "config.yml")
}

// LoadDefaults returns the compiled-in defaults, overlaid with any values
// from the config file. The mount path default is the invoking working
// directory. A missing file is fine; an unreadable or malformed one is
// reported but never fatal, since every field has a fallback.
func LoadDefaults() Defaults {
	d := Defaults{
		ContainerName: DefaultContainerName,
		Image:         DefaultImage,
	}
	if wd, err := os.Getwd(); err == nil {
		d.MountPath = wd
	} else {
		d.MountPath = "."
	}

	path := ConfigFilePath()
	if path == "" {
		return d
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Could not read config file", "path", path, "error", err)
		}
		return d
	}

	var file Defaults
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Warn("Ignoring malformed config file", "path", path, "error", err)
		return d
	}

	d.ContainerName = Resolve(file.ContainerName, d.ContainerName)
	d.Image = Resolve(file.Image, d.Image)
	d.MountPath = Resolve(file.MountPath, d.MountPath)
	return d
}

// Resolve returns raw unless it is empty or whitespace-only, in which case
// the default wins. Non-empty input is used verbatim.
func Resolve(raw, def string) string {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return raw
}

// Validate rejects a session whose fields ended up empty. With non-empty
// defaults this cannot happen through normal resolution; it guards direct
// construction in code.
func (s Session) Validate() error {
	if s.ContainerName == "" {
		return fmt.Errorf("container name must not be empty")
	}
	if s.Image == "" {
		return fmt.Errorf("image name must not be empty")
	}
	if s.MountPath == "" {
		return fmt.Errorf("mount path must not be empty")
	}
	return nil
}
