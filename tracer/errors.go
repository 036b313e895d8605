package tracer

import "errors"

var (
	ErrShaderCompile     = errors.New("tracer: could not compile shader")
	ErrProgramLink       = errors.New("tracer: could not link program")
	ErrSurfaceIncomplete = errors.New("tracer: accumulation framebuffer is incomplete")
	ErrCapabilityMissing = errors.New("tracer: required capability is not available")
)
