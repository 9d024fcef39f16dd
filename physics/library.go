// Package physics is the rigid-body collaborator of the physics suite.
//
// The engine is brought up with a fixed, one-time sequence: load the
// library, register the default allocator, install the default assert and
// trace handlers, create the factory and register the shape types. After
// that a System can be constructed and bodies created through its
// BodyInterface. Init runs the sequence exactly once per process.
package physics

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// Library identity reported by PrintLibraryInfo
const (
	Version   = "0.4.0"
	BuildType = "Release"
)

// TraceFunc receives diagnostic messages from the engine
type TraceFunc func(msg string)

// AssertFunc receives a failed engine invariant.
// Returning true aborts the calling operation with a panic.
type AssertFunc func(expr, msg, file string, line int) bool

// LibraryInfo describes the loaded engine build
type LibraryInfo struct {
	Version         string `json:"version"`
	BuildType       string `json:"build_type"`
	DoublePrecision bool   `json:"double_precision"`
	Platform        string `json:"platform"`
}

// Library holds the process-wide engine state created by Init
type Library struct {
	info    LibraryInfo
	logger  *slog.Logger
	trace   TraceFunc
	assert  AssertFunc
	alloc   *Allocator
	factory *Factory
}

// Allocator counts the engine objects handed out
type Allocator struct {
	shapes atomic.Int64
	bodies atomic.Int64
}

// Shapes returns the number of shapes allocated
func (a *Allocator) Shapes() int64 { return a.shapes.Load() }

// Bodies returns the number of bodies allocated
func (a *Allocator) Bodies() int64 { return a.bodies.Load() }

var (
	initOnce sync.Once
	shared   *Library
	initErr  error
)

// Init loads the engine and runs the one-time setup sequence.
// Later calls return the library created by the first call; logger is
// only used by that first call.
func Init(logger *slog.Logger) (*Library, error) {
	initOnce.Do(func() {
		shared, initErr = load(logger)
	})
	return shared, initErr
}

func load(logger *slog.Logger) (*Library, error) {
	lib := newLibrary(logger)

	lib.RegisterDefaultAllocator()
	lib.InstallDefaultAssertHandler()
	lib.InstallDefaultTraceHandler()
	if err := lib.NewFactory(); err != nil {
		return nil, fmt.Errorf("failed to create physics factory: %w", err)
	}
	if err := lib.RegisterTypes(); err != nil {
		return nil, fmt.Errorf("failed to register physics types: %w", err)
	}

	lib.Trace(fmt.Sprintf("engine %s-%s loaded for %s", lib.info.Version, lib.info.BuildType, lib.info.Platform))
	return lib, nil
}

// newLibrary returns a library with nothing installed
func newLibrary(logger *slog.Logger) *Library {
	if logger == nil {
		logger = slog.Default()
	}
	return &Library{
		info: LibraryInfo{
			Version:         Version,
			BuildType:       BuildType,
			DoublePrecision: false,
			Platform:        Platform(runtime.GOOS, runtime.GOARCH),
		},
		logger: logger.With("component", "physics"),
	}
}

// Platform maps a Go target to the native library directory naming
func Platform(goos, goarch string) string {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86-64"
	case "arm64":
		arch = "aarch64"
	case "arm":
		arch = "armhf"
	}

	osName := goos
	if goos == "darwin" {
		osName = "osx"
	}
	return osName + "/" + arch
}

// Info returns the library identity
func (l *Library) Info() LibraryInfo {
	return l.info
}

// Allocator returns the installed allocator, or nil
func (l *Library) Allocator() *Allocator {
	return l.alloc
}

// RegisterDefaultAllocator installs a fresh allocator
func (l *Library) RegisterDefaultAllocator() {
	l.alloc = &Allocator{}
}

// InstallDefaultTraceHandler routes trace messages to the debug log
func (l *Library) InstallDefaultTraceHandler() {
	l.trace = func(msg string) {
		l.logger.Debug("physics trace", "msg", msg)
	}
}

// InstallDefaultAssertHandler logs failed invariants and aborts
func (l *Library) InstallDefaultAssertHandler() {
	l.assert = func(expr, msg, file string, line int) bool {
		l.logger.Error("physics assertion failed",
			"expr", expr,
			"msg", msg,
			"file", file,
			"line", line)
		return true
	}
}

// Trace emits a diagnostic message through the installed handler
func (l *Library) Trace(msg string) {
	if l.trace != nil {
		l.trace(msg)
	}
}

// check reports a failed invariant to the assert handler
func (l *Library) check(ok bool, expr, msg string) {
	if ok || l.assert == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	if l.assert(expr, msg, file, line) {
		panic(fmt.Sprintf("physics: assertion %q failed: %s", expr, msg))
	}
}

// NewFactory creates the shape factory. It fails if one already exists.
func (l *Library) NewFactory() error {
	if l.factory != nil {
		return ErrFactoryExists
	}
	l.factory = &Factory{registered: make(map[ShapeType]bool)}
	return nil
}

// RegisterTypes registers every built-in shape type with the factory
func (l *Library) RegisterTypes() error {
	if l.factory == nil {
		return ErrNoFactory
	}
	l.factory.register(ShapeBox)
	return nil
}

// Factory tracks which shape types may be instantiated
type Factory struct {
	registered map[ShapeType]bool
}

func (f *Factory) register(t ShapeType) {
	f.registered[t] = true
}

// IsRegistered reports whether shapes of type t can be used
func (f *Factory) IsRegistered(t ShapeType) bool {
	return f != nil && f.registered[t]
}

// PrintLibraryInfo writes the startup banner
func (l *Library) PrintLibraryInfo(w io.Writer) {
	precision := "Sp"
	if l.info.DoublePrecision {
		precision = "Dp"
	}
	fmt.Fprintf(w, "Physics engine version %s-%s%s (%s) initializing...\n\n",
		l.info.Version, l.info.BuildType, precision, l.info.Platform)
}
