package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  string
		want string
	}{
		{
			name: "empty input falls back to default",
			raw:  "",
			def:  "labpod",
			want: "labpod",
		},
		{
			name: "whitespace-only input falls back to default",
			raw:  "   \t ",
			def:  "labpod:cuda",
			want: "labpod:cuda",
		},
		{
			name: "non-empty input is used verbatim",
			raw:  "experiments",
			def:  "labpod",
			want: "experiments",
		},
		{
			name: "input with inner spaces is not trimmed",
			raw:  " /data/my experiments ",
			def:  "/workspace",
			want: " /data/my experiments ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw, tt.def))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	d := LoadDefaults()

	assert.Equal(t, DefaultContainerName, d.ContainerName)
	assert.Equal(t, DefaultImage, d.Image)
	assert.NotEmpty(t, d.MountPath, "mount path default must resolve to the working directory")
}

func TestPromptSessionAssumeDefaults(t *testing.T) {
	d := Defaults{
		ContainerName: "labpod",
		Image:         "labpod:cuda",
		MountPath:     "/home/op/experiments",
	}

	s, err := PromptSession(d, PromptOverrides{}, true)
	require.NoError(t, err)
	assert.Equal(t, "labpod", s.ContainerName)
	assert.Equal(t, "labpod:cuda", s.Image)
	assert.Equal(t, "/home/op/experiments", s.MountPath)
}

func TestPromptSessionOverridesSkipPrompts(t *testing.T) {
	d := Defaults{
		ContainerName: "labpod",
		Image:         "labpod:cuda",
		MountPath:     "/home/op/experiments",
	}
	o := PromptOverrides{
		ContainerName: "ddpm-dev",
		Image:         "pytorch/pytorch:2.4.0-cuda12.4-cudnn9-runtime",
		MountPath:     "/data/runs",
	}

	// With every field overridden no prompt fires, so this is safe
	// without stdin even when assumeDefaults is false.
	s, err := PromptSession(d, o, false)
	require.NoError(t, err)
	assert.Equal(t, "ddpm-dev", s.ContainerName)
	assert.Equal(t, "pytorch/pytorch:2.4.0-cuda12.4-cudnn9-runtime", s.Image)
	assert.Equal(t, "/data/runs", s.MountPath)
}

func TestSessionValidate(t *testing.T) {
	s := Session{ContainerName: "labpod", Image: "labpod:cuda", MountPath: "/tmp"}
	require.NoError(t, s.Validate())

	assert.Error(t, Session{Image: "i", MountPath: "/m"}.Validate())
	assert.Error(t, Session{ContainerName: "c", MountPath: "/m"}.Validate())
	assert.Error(t, Session{ContainerName: "c", Image: "i"}.Validate())
}
