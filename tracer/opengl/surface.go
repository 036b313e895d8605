package opengl

import (
	"fmt"

	"github.com/achilleasa/glray/tracer"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// A floating-point accumulation surface: an RGBA32F texture and the
// framebuffer object that renders into it.
type surface struct {
	width   int
	height  int
	texture uint32
	fbo     uint32
}

func (s *surface) Width() int  { return s.width }
func (s *surface) Height() int { return s.height }

// Release the texture and framebuffer object.
func (s *surface) Release() {
	if s.fbo != 0 {
		gl.DeleteFramebuffers(1, &s.fbo)
		s.fbo = 0
	}
	if s.texture != 0 {
		gl.DeleteTextures(1, &s.texture)
		s.texture = 0
	}
}

// Implements tracer.SurfaceFactory.
func (d *Device) CreateSurface(width, height int) (tracer.Surface, error) {
	s := &surface{width: width, height: height}

	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, s.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.texture, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		s.Release()
		return nil, fmt.Errorf("%w: %dx%d (status 0x%x)", tracer.ErrSurfaceIncomplete, width, height, status)
	}

	d.logger.Debugf("allocated %dx%d RGBA32F surface (texture %d, fbo %d)", width, height, s.texture, s.fbo)
	return s, nil
}

func asSurface(s tracer.Surface) (*surface, error) {
	surf, ok := s.(*surface)
	if !ok || surf.fbo == 0 {
		return nil, fmt.Errorf("opengl device: surface %T was not allocated by this device", s)
	}
	return surf, nil
}
