// Package harness runs one configured driver operation end to end:
// allocate the target and source buffers, clear them, dispatch the named
// function, wait for the driver, save the target and free both buffers.
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/gogpu/vgbuf"
	"github.com/gogpu/vgbuf/config"
	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/internal/imageio"
	"github.com/gogpu/vgbuf/internal/logger"
	"github.com/gogpu/vgbuf/render"
)

// Background colors applied before the function under test runs.
const (
	TargetClearColor render.Color = 0xFFFFFFFF
)

// Session is the state handed to a test function.
type Session struct {
	Config config.Config
	Driver render.Driver
	Target *vgbuf.Buffer
	Source *vgbuf.Buffer
}

// Func is a named test function.
type Func func(ctx context.Context, r *Session) error

// CustomFunction is the name of the user hook, a no-op unless replaced
// with Register.
const CustomFunction = "vg_lite_draw_custom"

var (
	registryMu sync.RWMutex
	registry   = map[string]Func{
		"vg_lite_clear":        runClear,
		"vg_lite_blit":         runBlit,
		"vg_lite_blit_rect":    runBlitRect,
		"vg_lite_draw":         runDraw,
		"vg_lite_draw_pattern": runDrawPattern,
		CustomFunction:         func(context.Context, *Session) error { return nil },
	}
)

// Register installs fn under name, replacing any existing function.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Functions returns the registered names in order.
func Functions() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func runClear(_ context.Context, r *Session) error {
	return r.Driver.Clear(r.Target, &r.Config.Rect, r.Config.Color)
}

func runBlit(_ context.Context, r *Session) error {
	c := &r.Config
	return r.Driver.Blit(r.Target, r.Source, &c.Matrix, c.Blend, c.Color, c.Filter)
}

func runBlitRect(_ context.Context, r *Session) error {
	c := &r.Config
	return r.Driver.BlitRect(r.Target, r.Source, &c.Rect, &c.Matrix, c.Blend, c.Color, c.Filter)
}

func runDraw(_ context.Context, r *Session) error {
	c := &r.Config
	return r.Driver.Draw(r.Target, &c.Path, c.FillRule, &c.Matrix, c.Blend, c.Color)
}

func runDrawPattern(_ context.Context, r *Session) error {
	c := &r.Config
	return r.Driver.DrawPattern(r.Target, &c.Path, c.FillRule, &c.Matrix,
		r.Source, &c.PatternMatrix, c.Blend, c.PatternMode, c.PatternColor, c.Color, c.Filter)
}

// BufferSource hands out and takes back buffers. *vgbuf.Pool satisfies
// it; Direct adapts a plain *vgbuf.Allocator.
type BufferSource interface {
	Get(width, height int, f format.PixelFormat) (*vgbuf.Buffer, error)
	Put(buf *vgbuf.Buffer) error
}

// Direct returns a BufferSource that allocates on Get and frees on Put.
func Direct(a *vgbuf.Allocator) BufferSource {
	return direct{a}
}

type direct struct {
	alloc *vgbuf.Allocator
}

func (d direct) Get(width, height int, f format.PixelFormat) (*vgbuf.Buffer, error) {
	b := &vgbuf.Buffer{Width: width, Height: height, Format: f}
	if err := d.alloc.Allocate(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (d direct) Put(buf *vgbuf.Buffer) error {
	return d.alloc.Free(buf)
}

// Deps are the collaborators of Run.
type Deps struct {
	Buffers BufferSource
	Driver  render.Driver
	Logger  *slog.Logger

	// Save writes the target; nil means imageio.Save.
	Save func(path string, t render.RenderTarget) error
}

// Result reports what a run did.
type Result struct {
	Function string
	Output   string

	// Skipped is set when the function name is not registered.
	Skipped bool

	// FuncErr is the error of the function under test. The run still
	// finishes and saves the target when it is set.
	FuncErr error

	Target vgbuf.Buffer
}

// Run executes cfg.
//
// Allocation failures abort before anything is drawn. A failing test
// function is reported in Result.FuncErr and the target is still saved,
// so its state can be inspected. Both buffers are returned to the source
// exactly once whatever happens.
func Run(ctx context.Context, cfg config.Config, deps Deps) (res Result, err error) {
	log := deps.Logger
	if log == nil {
		log = logger.Get()
	}
	save := deps.Save
	if save == nil {
		save = imageio.Save
	}
	res = Result{Function: cfg.Function, Output: cfg.Output}

	target, err := deps.Buffers.Get(cfg.Target.Width, cfg.Target.Height, cfg.Target.Format)
	if err != nil {
		return res, fmt.Errorf("harness: target: %w", err)
	}
	defer release(deps.Buffers, target, log, &err)

	source, err := deps.Buffers.Get(cfg.Source.Width, cfg.Source.Height, cfg.Source.Format)
	if err != nil {
		return res, fmt.Errorf("harness: source: %w", err)
	}
	defer release(deps.Buffers, source, log, &err)

	log.Info("running test function", "func", cfg.Function,
		"target", target.String(), "source", source.String())

	if err := ctx.Err(); err != nil {
		return res, err
	}

	drv := deps.Driver
	if err := drv.Clear(target, nil, TargetClearColor); err != nil {
		return res, fmt.Errorf("harness: clear target: %w", err)
	}
	if err := drv.Clear(source, nil, cfg.SourceColor); err != nil {
		return res, fmt.Errorf("harness: clear source: %w", err)
	}
	if s := cfg.Scissor; s != nil {
		if !drv.QueryFeature(render.FeatureScissor) {
			log.Warn("scissor is not supported by the driver")
		} else if err := drv.SetScissor(s.X, s.Y, s.Right, s.Bottom); err != nil {
			return res, fmt.Errorf("harness: scissor: %w", err)
		}
	}

	fn, ok := Lookup(cfg.Function)
	if !ok {
		log.Warn("unknown function name", "func", cfg.Function)
		res.Skipped = true
	} else if ferr := fn(ctx, &Session{Config: cfg, Driver: drv, Target: target, Source: source}); ferr != nil {
		log.Warn("test function failed", "func", cfg.Function, "error", ferr)
		res.FuncErr = ferr
	}

	if err := drv.Finish(); err != nil {
		return res, fmt.Errorf("harness: finish: %w", err)
	}
	log.Info("test finished", "func", cfg.Function)

	res.Target = *target
	res.Target.Memory = nil
	out, err := render.NewBufferTarget(target)
	if err != nil {
		return res, fmt.Errorf("harness: save: %w", err)
	}
	if err := save(cfg.Output, out); err != nil {
		return res, fmt.Errorf("harness: save: %w", err)
	}
	return res, nil
}

func release(src BufferSource, buf *vgbuf.Buffer, log *slog.Logger, err *error) {
	if perr := src.Put(buf); perr != nil {
		log.Warn("buffer release failed", "buffer", buf.String(), "error", perr)
		*err = errors.Join(*err, fmt.Errorf("harness: release: %w", perr))
	}
}
