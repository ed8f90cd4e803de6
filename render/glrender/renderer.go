// Package glrender draws the demo frames with OpenGL 3.2 core. All calls
// must come from the thread where the window context is current.
package glrender

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jmigpin/glfwdemo/render"
	"github.com/jmigpin/glfwdemo/util/logutil"
	"github.com/pkg/errors"
)

type Options struct {
	// Draw the triangle. Otherwise only clears the screen.
	Triangle bool

	// Directory with triangle.vert/triangle.frag overriding the built-in
	// sources. Changes are picked up at the next frame.
	ShaderDir string

	// Function loader of the current context. Uses the default gl loader if nil.
	ProcAddr func(name string) unsafe.Pointer

	// Framebuffer size, used to keep the viewport in sync.
	Size func() image.Point
}

type Renderer struct {
	opt Options
	rel render.Releaser

	prog     *program
	vao, vbo uint32
	vd       *render.VertexData
	viewport image.Point

	reload *shaderReload
}

func New(opt *Options) (*Renderer, error) {
	r := &Renderer{opt: *opt}
	if err := r.init(); err != nil {
		_ = r.rel.ReleaseAll()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) init() error {
	// context must be current
	if r.opt.ProcAddr != nil {
		if err := gl.InitWithProcAddrFunc(r.opt.ProcAddr); err != nil {
			return errors.Wrap(err, "gl init")
		}
	} else if err := gl.Init(); err != nil {
		return errors.Wrap(err, "gl init")
	}
	logutil.Logger().Info("gl loaded",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	if !r.opt.Triangle {
		return nil
	}

	vs, fs, vd, err := render.Triangle()
	if err != nil {
		return err
	}
	r.vd = vd

	if r.opt.ShaderDir != "" {
		sr, err := newShaderReload(r.opt.ShaderDir)
		if err != nil {
			return err
		}
		r.reload = sr
		r.rel.Push("shader watcher", sr.Close)
		if vs2, fs2, ok := sr.load(vs, fs); ok {
			vs, fs = vs2, fs2
		}
	}

	prog, err := linkProgram(vs, fs)
	if err != nil {
		return err
	}
	r.prog = prog
	r.rel.Push("program", func() error {
		r.prog.delete()
		return nil
	})

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	r.rel.Push("vertex array", func() error {
		gl.DeleteVertexArrays(1, &r.vao)
		return nil
	})

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vd.ByteLen(), gl.Ptr(vd.Floats()), gl.STATIC_DRAW)
	r.rel.Push("vertex buffer", func() error {
		gl.DeleteBuffers(1, &r.vbo)
		return nil
	})

	if err := r.useProgram(r.prog); err != nil {
		return err
	}
	return checkError("setup")
}

func (r *Renderer) useProgram(p *program) error {
	gl.UseProgram(p.id)
	loc, err := p.attribLocation(render.PositionAttrib)
	if err != nil {
		return err
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, int32(r.vd.Components()), gl.FLOAT, false, 0, 0)
	return nil
}

//----------

func (r *Renderer) Render() error {
	r.updateViewport()
	if r.reload != nil {
		r.reloadProgram()
	}

	gl.ClearColor(render.ClearColorF())
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if r.prog != nil {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(r.vd.Count()))
	}
	return checkError("render")
}

func (r *Renderer) updateViewport() {
	if r.opt.Size == nil {
		return
	}
	sz := r.opt.Size()
	if sz == r.viewport {
		return
	}
	r.viewport = sz
	gl.Viewport(0, 0, int32(sz.X), int32(sz.Y))
}

// Compile errors keep the current program.
func (r *Renderer) reloadProgram() {
	vs, fs, ok := r.reload.changed()
	if !ok {
		return
	}
	prog, err := linkProgram(vs, fs)
	if err == nil {
		err = r.useProgram(prog)
		if err != nil {
			prog.delete()
		}
	}
	if err != nil {
		logutil.Logger().Warn("shader reload", "err", err)
		_ = r.useProgram(r.prog) // old program was working
		return
	}
	old := r.prog
	r.prog = prog
	old.delete()
	logutil.Logger().Info("shaders reloaded", "dir", r.opt.ShaderDir)
}

func (r *Renderer) Close() error {
	return r.rel.ReleaseAll()
}

//----------

func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl %v: %v", op, errorString(code))
	}
	return nil
}
