package glrender

import (
	"os"
	"path/filepath"

	"github.com/jmigpin/glfwdemo/render"
	"github.com/jmigpin/glfwdemo/util/fswatcher"
	"github.com/jmigpin/glfwdemo/util/logutil"
)

// Watches the shader directory. Events are only consumed from the render
// thread, without blocking.
type shaderReload struct {
	dir string
	w   *fswatcher.Watcher

	vs, fs *render.ShaderSource // last sources in use
}

func newShaderReload(dir string) (*shaderReload, error) {
	w, err := fswatcher.New(fswatcher.Create | fswatcher.Write | fswatcher.Rename)
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	return &shaderReload{dir: dir, w: w}, nil
}

func (sr *shaderReload) Close() error {
	return sr.w.Close()
}

// Replaces the given sources with the ones found in the directory.
func (sr *shaderReload) load(vs, fs *render.ShaderSource) (*render.ShaderSource, *render.ShaderSource, bool) {
	sr.vs, sr.fs = vs, fs
	changed := false
	if s, ok := sr.readFile(render.VertexShaderFile); ok {
		sr.vs, changed = s, true
	}
	if s, ok := sr.readFile(render.FragmentShaderFile); ok {
		sr.fs, changed = s, true
	}
	return sr.vs, sr.fs, changed
}

func (sr *shaderReload) readFile(name string) (*render.ShaderSource, bool) {
	filename := filepath.Join(sr.dir, name)
	s, err := render.ReadShaderSource(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			logutil.Logger().Warn("shader source", "err", err)
		}
		return nil, false
	}
	return s, true
}

// Drains pending watcher events. Returns the new sources if a shader file
// changed.
func (sr *shaderReload) changed() (*render.ShaderSource, *render.ShaderSource, bool) {
	dirty := false
loop:
	for {
		select {
		case ev, ok := <-sr.w.Events():
			if !ok {
				break loop
			}
			if ev.Err != nil {
				logutil.Logger().Warn("shader watcher", "err", ev.Err)
				continue
			}
			if isShaderFileEvent(ev) {
				dirty = true
			}
		default:
			break loop
		}
	}
	if !dirty {
		return nil, nil, false
	}
	return sr.load(sr.vs, sr.fs)
}

func isShaderFileEvent(ev fswatcher.Event) bool {
	if !ev.Op.HasAny(fswatcher.Create | fswatcher.Write | fswatcher.Rename) {
		return false
	}
	switch filepath.Base(ev.Name) {
	case render.VertexShaderFile, render.FragmentShaderFile:
		return true
	}
	return false
}
