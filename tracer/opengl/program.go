package opengl

import (
	"fmt"
	"strings"

	"github.com/achilleasa/glray/asset"
	"github.com/achilleasa/glray/tracer"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Attribute and output names shared by all programs.
const (
	vertexAttribName = "vertex\x00"
	colorOutputName  = "color\x00"

	vertexAttribLocation uint32 = 0
	colorOutputLocation  uint32 = 0
)

// Prepend a version directive to src unless it already declares one.
func withVersionDirective(src, version string) string {
	if strings.HasPrefix(strings.TrimSpace(src), "#version") {
		return src
	}
	return "#version " + version + "\n" + src
}

func (s Stage) glType() uint32 {
	if s == VertexStage {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

// Build a program by compiling and linking the supplied sources. Non-empty
// compiler or linker logs are reported as warnings even when the build
// succeeds.
func (d *Device) buildProgram(name string, sources []ShaderSource) (uint32, error) {
	shaders := make([]uint32, 0, len(sources))
	defer func() {
		for _, shader := range shaders {
			gl.DeleteShader(shader)
		}
	}()

	for _, src := range sources {
		shader, err := d.compileShader(src)
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, shader)
	}

	program := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	gl.BindAttribLocation(program, vertexAttribLocation, gl.Str(vertexAttribName))
	gl.BindFragDataLocation(program, colorOutputLocation, gl.Str(colorOutputName))
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	infoLog := programInfoLog(program)
	if infoLog != "" {
		d.logger.Warningf("program %q link log:\n%s", name, indent(infoLog))
	}

	for _, shader := range shaders {
		gl.DetachShader(program, shader)
	}

	if status == gl.FALSE {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: program %q:\n%s", tracer.ErrProgramLink, name, indent(infoLog))
	}

	return program, nil
}

func (d *Device) compileShader(src ShaderSource) (uint32, error) {
	source, err := asset.ReadAll(src.Name, nil)
	if err != nil {
		return 0, err
	}
	source = withVersionDirective(source, d.cfg.GLSLVersion)

	shader := gl.CreateShader(src.Stage.glType())
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	infoLog := shaderInfoLog(shader)
	if infoLog != "" {
		d.logger.Warningf("%s shader %q compile log:\n%s", src.Stage, src.Name, indent(infoLog))
	}

	if status == gl.FALSE {
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s shader %q:\n%s", tracer.ErrShaderCompile, src.Stage, src.Name, indent(infoLog))
	}

	return shader, nil
}

func shaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}

	buf := make([]byte, logLen)
	gl.GetShaderInfoLog(shader, logLen, nil, &buf[0])
	return strings.TrimSpace(gl.GoStr(&buf[0]))
}

func programInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 1 {
		return ""
	}

	buf := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
	return strings.TrimSpace(gl.GoStr(&buf[0]))
}

func indent(text string) string {
	return indentRegex.ReplaceAllString(text, "  ")
}
