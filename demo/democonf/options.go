// Package democonf holds the command line options shared by the demo
// programs.
package democonf

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jmigpin/glfwdemo/driver"
	"github.com/jmigpin/glfwdemo/util/logutil"
)

type Options struct {
	Backend   BackendOpt
	Width     int
	Height    int
	Title     string
	ShaderDir string
	LogLevel  LogLevelOpt
	VSync     bool
}

func Defaults(title string) *Options {
	return &Options{
		Backend:  BackendOpt(driver.BackendGLFW),
		Width:    800,
		Height:   600,
		Title:    title,
		LogLevel: LogLevelOpt(slog.LevelWarn),
		VSync:    true,
	}
}

// Registers the flags on fs, using the current values as defaults.
func (opt *Options) Register(fs *flag.FlagSet) {
	fs.Var(&opt.Backend, "backend", "window backend: "+strings.Join(driver.Backends(), ", "))
	fs.IntVar(&opt.Width, "width", opt.Width, "window width")
	fs.IntVar(&opt.Height, "height", opt.Height, "window height")
	fs.StringVar(&opt.Title, "title", opt.Title, "window title")
	fs.StringVar(&opt.ShaderDir, "shaders", opt.ShaderDir, "directory with triangle.vert/triangle.frag, reloaded on change")
	fs.Var(&opt.LogLevel, "loglevel", "log level: debug, info, warn, error")
	fs.BoolVar(&opt.VSync, "vsync", opt.VSync, "wait for vertical sync on buffer swap")
}

func (opt *Options) Validate() error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf("bad window size: %vx%v", opt.Width, opt.Height)
	}
	if err := validBackend(string(opt.Backend)); err != nil {
		return err
	}
	if opt.ShaderDir != "" {
		fi, err := os.Stat(opt.ShaderDir)
		if err != nil {
			return err
		}
		if !fi.IsDir() {
			return fmt.Errorf("not a directory: %v", opt.ShaderDir)
		}
	}
	return nil
}

// Parses args into a copy of def and validates the result.
func Parse(name string, args []string, def *Options) (*Options, error) {
	opt := *def
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opt.Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return &opt, nil
}

//----------

func (opt *Options) DriverOptions() *driver.Options {
	dopt := &driver.Options{
		Width:   opt.Width,
		Height:  opt.Height,
		Title:   opt.Title,
		Context: driver.DefaultContextHints(),
	}
	if opt.VSync {
		dopt.SwapInterval = 1
	}
	return dopt
}

// Installs a text logger on stderr at the chosen level.
func (opt *Options) SetupLogger() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(opt.LogLevel)})
	logutil.SetLogger(slog.New(h))
}

//----------

// implements flag.Value interface
type BackendOpt string

func (b *BackendOpt) Set(s string) error {
	if err := validBackend(s); err != nil {
		return err
	}
	*b = BackendOpt(s)
	return nil
}
func (b *BackendOpt) String() string {
	return string(*b)
}

func validBackend(s string) error {
	for _, u := range driver.Backends() {
		if s == u {
			return nil
		}
	}
	return fmt.Errorf("unknown backend: %q", s)
}

//----------

// implements flag.Value interface
type LogLevelOpt slog.Level

func (l *LogLevelOpt) Set(s string) error {
	v, err := logutil.ParseLevel(s)
	if err != nil {
		return err
	}
	*l = LogLevelOpt(v)
	return nil
}
func (l *LogLevelOpt) String() string {
	return strings.ToLower(slog.Level(*l).String())
}
