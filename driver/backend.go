package driver

import (
	"fmt"

	"github.com/jmigpin/glfwdemo/driver/glfwdriver"
	"github.com/jmigpin/glfwdemo/driver/xdriver"
	"github.com/pkg/errors"
)

const (
	BackendGLFW = "glfw"
	BackendX11  = "x11"
)

func Backends() []string {
	return []string{BackendGLFW, BackendX11}
}

// Creates the native window and makes its context current on the calling
// thread.
func NewWindow(backend string, opt *Options) (Window, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	switch backend {
	case BackendGLFW, "":
		gopt := &glfwdriver.Options{
			Width:         opt.Width,
			Height:        opt.Height,
			Title:         opt.Title,
			Major:         opt.Context.Major,
			Minor:         opt.Context.Minor,
			ForwardCompat: opt.Context.ForwardCompat,
			CoreProfile:   opt.Context.CoreProfile,
			SwapInterval:  opt.SwapInterval,
		}
		win, err := glfwdriver.NewWindow(gopt)
		if err != nil {
			return nil, errors.Wrap(err, "glfw")
		}
		return win, nil
	case BackendX11:
		xopt := &xdriver.Options{
			Width:  opt.Width,
			Height: opt.Height,
			Title:  opt.Title,
		}
		win, err := xdriver.NewWindow(xopt)
		if err != nil {
			return nil, errors.Wrap(err, "x11")
		}
		return win, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}
