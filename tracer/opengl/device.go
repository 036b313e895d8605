package opengl

import (
	"fmt"

	"github.com/achilleasa/glray/log"
	"github.com/achilleasa/glray/scene"
	"github.com/achilleasa/glray/tracer"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Uniform locations of the ray tracing program.
type rayUniforms struct {
	time        int32
	blendFactor int32
	bounceCount int32
	width       int32
	height      int32
	framebuffer int32
}

// Device implements tracer.Device on top of an OpenGL context. All methods
// must be invoked from the thread that owns the context.
type Device struct {
	logger log.Logger
	cfg    Config
	caps   *Capabilities

	rayProgram     uint32
	presentProgram uint32
	uniforms       rayUniforms

	cameraUBO uint32
	sampler   uint32
	quad      *fullScreenQuad
}

// Create a device using the GL context that is current on the calling
// thread. The device verifies that the context satisfies cfg and builds the
// ray tracing and presentation programs.
func NewDevice(cfg Config) (*Device, error) {
	d := &Device{
		logger: log.New("opengl device"),
		cfg:    cfg,
	}

	var err error
	if d.caps, err = QueryCapabilities(); err != nil {
		return nil, err
	}
	d.logger.Infof("using %s (%s); OpenGL %s, GLSL %s", d.caps.Renderer, d.caps.Vendor, d.caps.Version, d.caps.GLSLVersion)
	if err = d.caps.Check(cfg); err != nil {
		return nil, err
	}

	if d.rayProgram, err = d.buildProgram("raytracing", cfg.RayTracingSources); err != nil {
		d.Close()
		return nil, err
	}
	if d.presentProgram, err = d.buildProgram("present", cfg.PresentSources); err != nil {
		d.Close()
		return nil, err
	}

	if err = d.initRayProgram(); err != nil {
		d.Close()
		return nil, err
	}
	d.initPresentProgram()
	d.initCameraBuffer()
	d.initSampler()
	d.quad = newFullScreenQuad()

	return d, nil
}

// Get the capabilities of the underlying context.
func (d *Device) Capabilities() *Capabilities {
	return d.caps
}

func (d *Device) initRayProgram() error {
	d.uniforms = rayUniforms{
		time:        uniformLocation(d.rayProgram, "time"),
		blendFactor: uniformLocation(d.rayProgram, "blendFactor"),
		bounceCount: uniformLocation(d.rayProgram, "bounceCount"),
		width:       uniformLocation(d.rayProgram, "width"),
		height:      uniformLocation(d.rayProgram, "height"),
		framebuffer: uniformLocation(d.rayProgram, "framebuffer"),
	}

	blockIndex := gl.GetUniformBlockIndex(d.rayProgram, gl.Str("CameraSettings\x00"))
	if blockIndex == gl.INVALID_INDEX {
		return fmt.Errorf("%w: raytracing program does not declare the CameraSettings block", tracer.ErrProgramLink)
	}
	gl.UniformBlockBinding(d.rayProgram, blockIndex, d.cfg.CameraBlockBinding)

	var blockSize int32
	gl.GetActiveUniformBlockiv(d.rayProgram, blockIndex, gl.UNIFORM_BLOCK_DATA_SIZE, &blockSize)
	if blockSize > scene.ParamBlockBytes {
		return fmt.Errorf("%w: CameraSettings block is %d bytes; at most %d can be uploaded", tracer.ErrProgramLink, blockSize, scene.ParamBlockBytes)
	}

	gl.UseProgram(d.rayProgram)
	gl.Uniform1i(d.uniforms.framebuffer, 0)
	gl.UseProgram(0)
	return nil
}

func (d *Device) initPresentProgram() {
	gl.UseProgram(d.presentProgram)
	gl.Uniform1i(uniformLocation(d.presentProgram, "tex"), 0)
	gl.UseProgram(0)
}

func (d *Device) initCameraBuffer() {
	gl.GenBuffers(1, &d.cameraUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, d.cameraUBO)
	gl.BufferData(gl.UNIFORM_BUFFER, scene.ParamBlockBytes, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (d *Device) initSampler() {
	gl.GenSamplers(1, &d.sampler)
	gl.SamplerParameteri(d.sampler, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.SamplerParameteri(d.sampler, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
}

// Implements tracer.SampleGenerator. The previous contents of the target
// surface are sampled and blended with the new sample using the request's
// blend weight.
func (d *Device) Generate(req *tracer.FrameRequest) error {
	target, err := asSurface(req.Target)
	if err != nil {
		return err
	}

	gl.UseProgram(d.rayProgram)
	gl.Uniform1f(d.uniforms.time, float32(req.Elapsed.Seconds()))
	gl.Uniform1f(d.uniforms.blendFactor, req.BlendWeight)
	gl.Uniform1i(d.uniforms.bounceCount, int32(req.BounceCount))
	gl.Uniform1f(d.uniforms.width, float32(req.Width))
	gl.Uniform1f(d.uniforms.height, float32(req.Height))

	gl.BindBuffer(gl.UNIFORM_BUFFER, d.cameraUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, scene.ParamBlockBytes, gl.Ptr(&req.Camera[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, d.cfg.CameraBlockBinding, d.cameraUBO)

	gl.BindFramebuffer(gl.FRAMEBUFFER, target.fbo)
	gl.Viewport(0, 0, int32(target.width), int32(target.height))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, target.texture)
	gl.BindSampler(0, d.sampler)

	d.quad.draw()

	gl.BindSampler(0, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, d.cfg.CameraBlockBinding, 0)
	gl.UseProgram(0)

	return checkError("generate")
}

// Implements tracer.Presenter.
func (d *Device) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Implements tracer.Presenter. The surface is drawn to the default
// framebuffer using nearest filtering.
func (d *Device) Present(src tracer.Surface) error {
	s, err := asSurface(src)
	if err != nil {
		return err
	}

	gl.UseProgram(d.presentProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.BindSampler(0, d.sampler)

	d.quad.draw()

	gl.BindSampler(0, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	return checkError("present")
}

// Release all GL objects owned by the device. Surfaces are owned by their
// callers and are not released.
func (d *Device) Close() {
	if d.quad != nil {
		d.quad.release()
		d.quad = nil
	}
	if d.sampler != 0 {
		gl.DeleteSamplers(1, &d.sampler)
		d.sampler = 0
	}
	if d.cameraUBO != 0 {
		gl.DeleteBuffers(1, &d.cameraUBO)
		d.cameraUBO = 0
	}
	if d.presentProgram != 0 {
		gl.DeleteProgram(d.presentProgram)
		d.presentProgram = 0
	}
	if d.rayProgram != 0 {
		gl.DeleteProgram(d.rayProgram)
		d.rayProgram = 0
	}
}

func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl device: %s failed (error 0x%x)", op, code)
	}
	return nil
}
