package opengl

import (
	"fmt"
	"regexp"

	"github.com/achilleasa/glray/tracer"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var (
	indentRegex = regexp.MustCompile("(?m)^")
)

// Information about the GL implementation backing the current context.
type Capabilities struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string

	Major int
	Minor int

	// True if RGBA32F textures can be attached as color targets.
	FloatTargets bool

	// The number of uniform buffer binding points.
	UniformBufferBindings int
}

// Query the capabilities of the GL context that is current on the calling
// thread.
func QueryCapabilities() (*Capabilities, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl device: could not init opengl: %s", err)
	}

	var major, minor, bindings int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	gl.GetIntegerv(gl.MAX_UNIFORM_BUFFER_BINDINGS, &bindings)

	return &Capabilities{
		Vendor:                gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:              gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:               gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion:           gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		Major:                 int(major),
		Minor:                 int(minor),
		FloatTargets:          probeFloatTarget(),
		UniformBufferBindings: int(bindings),
	}, nil
}

// Check that the capabilities satisfy cfg.
func (c *Capabilities) Check(cfg Config) error {
	if c.Major < cfg.ContextMajor || (c.Major == cfg.ContextMajor && c.Minor < cfg.ContextMinor) {
		return fmt.Errorf("%w: OpenGL %d.%d required; context provides %d.%d", tracer.ErrCapabilityMissing, cfg.ContextMajor, cfg.ContextMinor, c.Major, c.Minor)
	}
	if !c.FloatTargets {
		return fmt.Errorf("%w: RGBA32F render targets are not supported", tracer.ErrCapabilityMissing)
	}
	if uint32(c.UniformBufferBindings) <= cfg.CameraBlockBinding {
		return fmt.Errorf("%w: uniform buffer binding %d not available (%d bindings)", tracer.ErrCapabilityMissing, cfg.CameraBlockBinding, c.UniformBufferBindings)
	}
	return nil
}

// Allocate a 1x1 RGBA32F render target and report whether it is complete.
func probeFloatTarget() bool {
	var tex, fbo uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, 1, 1, 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	complete := gl.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	gl.DeleteFramebuffers(1, &fbo)
	gl.DeleteTextures(1, &tex)
	return complete
}
