package democonf

import (
	"fmt"

	"github.com/jmigpin/glfwdemo/driver"
	"github.com/jmigpin/glfwdemo/driver/glfwdriver"
	"github.com/jmigpin/glfwdemo/driver/xdriver"
	"github.com/jmigpin/glfwdemo/render"
	"github.com/jmigpin/glfwdemo/render/glrender"
	"github.com/jmigpin/glfwdemo/render/softrender"
	"github.com/jmigpin/glfwdemo/session"
)

type Scene int

const (
	SceneNone     Scene = iota // frames are only presented
	SceneClear                 // grey screen
	SceneTriangle              // grey screen with a white triangle
)

// Picks the renderer matching the window backend.
func (opt *Options) RendererFactory(scene Scene) session.RendererFactory {
	if scene == SceneNone {
		return nil
	}
	triangle := scene == SceneTriangle
	return func(win driver.Window) (render.Renderer, error) {
		switch t := win.(type) {
		case *glfwdriver.Window:
			gopt := &glrender.Options{
				Triangle: triangle,
				ProcAddr: t.ProcAddress,
				Size:     t.Size,
			}
			if triangle {
				gopt.ShaderDir = opt.ShaderDir
			}
			return glrender.New(gopt)
		case *xdriver.Window:
			sopt := &softrender.Options{
				Triangle: triangle,
				Label:    opt.Title,
				FontSize: 14,
			}
			return softrender.New(t, sopt)
		default:
			return nil, fmt.Errorf("no renderer for window %T", win)
		}
	}
}
