// Draws a white triangle on grey. Escape closes. With -shaders the shader
// sources are read from a directory and reloaded when they change.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/jmigpin/glfwdemo/demo/democonf"
	"github.com/jmigpin/glfwdemo/session"
)

// window context must stay on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	opt, err := democonf.Parse(os.Args[0], os.Args[1:], democonf.Defaults("Hurro"))
	if err != nil {
		log.Fatal(err)
	}
	opt.SetupLogger()

	s, err := session.Initialize(
		string(opt.Backend),
		opt.DriverOptions(),
		session.WithRendererFactory(opt.RendererFactory(democonf.SceneTriangle)),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
}
