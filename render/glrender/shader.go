package glrender

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jmigpin/glfwdemo/render"
)

type program struct {
	id     uint32
	vs, fs uint32
}

func compileShader(src *render.ShaderSource, typ uint32) (uint32, error) {
	shader := gl.CreateShader(typ)
	csrc, free := gl.Strs(src.CString())
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &buf[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %v: %v", src.Name(), infoLog(buf))
	}
	return shader, nil
}

func linkProgram(vsrc, fsrc *render.ShaderSource) (*program, error) {
	vs, err := compileShader(vsrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(fsrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.BindFragDataLocation(id, 0, gl.Str(render.ColorOutput+"\x00"))
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		buf := make([]byte, n+1)
		gl.GetProgramInfoLog(id, n, nil, &buf[0])
		p := &program{id: id, vs: vs, fs: fs}
		p.delete()
		return nil, fmt.Errorf("link program: %v", infoLog(buf))
	}
	return &program{id: id, vs: vs, fs: fs}, nil
}

func (p *program) delete() {
	gl.DeleteProgram(p.id)
	gl.DeleteShader(p.fs)
	gl.DeleteShader(p.vs)
}

func (p *program) attribLocation(name string) (uint32, error) {
	loc := gl.GetAttribLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("attribute not found: %v", name)
	}
	return uint32(loc), nil
}

//----------

func infoLog(b []byte) string {
	s := strings.TrimRight(string(b), "\x00")
	return strings.TrimSpace(s)
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return fmt.Sprintf("0x%x", code)
}
