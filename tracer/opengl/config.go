package opengl

import (
	"path/filepath"

	"github.com/achilleasa/glray/tracer"
)

// Shader stages.
type Stage uint8

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// A named shader source and the stage it is compiled for.
type ShaderSource struct {
	Name  string
	Stage Stage
}

// Config selects the capability level the device targets and the shader
// sources its programs are built from.
type Config struct {
	// The minimum GL context version.
	ContextMajor int
	ContextMinor int

	// The version directive prepended to shader sources that lack one.
	GLSLVersion string

	// The uniform block binding for the camera parameters.
	CameraBlockBinding uint32

	// Program sources. Names are resolved with asset.NewResource.
	RayTracingSources []ShaderSource
	PresentSources    []ShaderSource
}

// Get the default configuration: a GL 3.3 core context and the shader
// sources embedded in the binary.
func DefaultConfig() Config {
	return Config{
		ContextMajor:       3,
		ContextMinor:       3,
		GLSLVersion:        "330 core",
		CameraBlockBinding: tracer.CameraBlockBinding,
		RayTracingSources: []ShaderSource{
			{"builtin://shaders/quad.vs.glsl", VertexStage},
			{"builtin://shaders/raytracing.fs.glsl", FragmentStage},
			{"builtin://shaders/random.glsl", FragmentStage},
			{"builtin://shaders/random_common.glsl", FragmentStage},
		},
		PresentSources: []ShaderSource{
			{"builtin://shaders/quad.vs.glsl", VertexStage},
			{"builtin://shaders/quad.fs.glsl", FragmentStage},
		},
	}
}

// Get a copy of the config that loads shader sources with the same base
// names from dir.
func (c Config) WithShaderDir(dir string) Config {
	rebase := func(sources []ShaderSource) []ShaderSource {
		out := make([]ShaderSource, len(sources))
		for i, src := range sources {
			out[i] = ShaderSource{
				Name:  filepath.Join(dir, filepath.Base(src.Name)),
				Stage: src.Stage,
			}
		}
		return out
	}

	c.RayTracingSources = rebase(c.RayTracingSources)
	c.PresentSources = rebase(c.PresentSources)
	return c
}
