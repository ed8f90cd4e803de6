// Opens a window that stays open until the window manager closes it.
package main

import (
	"log"
	"os"
	"runtime"

	"github.com/jmigpin/glfwdemo/demo/democonf"
	"github.com/jmigpin/glfwdemo/session"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

// window context must stay on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	log.SetFlags(0)
	opt, err := democonf.Parse(os.Args[0], os.Args[1:], democonf.Defaults("Hello, I am a window."))
	if err != nil {
		log.Fatal(err)
	}
	opt.SetupLogger()

	s, err := session.Initialize(
		string(opt.Backend),
		opt.DriverOptions(),
		session.WithRendererFactory(opt.RendererFactory(democonf.SceneNone)),
		session.WithFilter(ignoreAll),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
}

func ignoreAll(event.Event) session.Action {
	return session.Ignore
}
