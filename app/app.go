// Package app holds the startup sequence shared by the window and terminal
// binaries: flags, logging, config, theme resolution and services.
package app

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/antigravity/audio"
	"github.com/lixenwraith/antigravity/config"
	"github.com/lixenwraith/antigravity/logger"
	"github.com/lixenwraith/antigravity/parameter"
	"github.com/lixenwraith/antigravity/scene"
	"github.com/lixenwraith/antigravity/service"
	"github.com/lixenwraith/antigravity/status"
	"github.com/lixenwraith/antigravity/theme"
)

// ReducedMotionEnv disables the particle field when set to 1
const ReducedMotionEnv = "ANTIGRAVITY_REDUCED_MOTION"

// Flags are the command-line options common to every host
type Flags struct {
	Config        string
	Theme         string
	ThemeFile     string
	MetricsAddr   string
	LogLevel      string
	Debug         bool
	Sound         bool
	ReducedMotion bool
	Seed          uint64
}

// RegisterFlags binds the common flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "TOML tuning file")
	fs.StringVar(&f.Theme, "theme", "", "Theme: light, dark (default: saved preference, then system)")
	fs.StringVar(&f.ThemeFile, "theme-file", "", "Theme preference file (default: user config dir)")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	fs.StringVar(&f.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.BoolVar(&f.Debug, "debug", false, "Write logs to "+filepath.Join(parameter.LogDir, parameter.LogFileName))
	fs.BoolVar(&f.Sound, "sound", false, "Play chirps on attract and release")
	fs.BoolVar(&f.ReducedMotion, "reduced-motion", false, "Disable the particle field")
	fs.Uint64Var(&f.Seed, "seed", 0, "Seed the particle layout (0: random)")
	return f
}

// Runtime is everything a host needs after startup
type Runtime struct {
	Session string
	Logger  *zap.Logger
	Config  config.Config
	Theme   theme.Theme
	Store   *theme.Store
	Watcher *theme.Watcher
	Metrics *status.Registry
	Audio   *audio.AudioService
	Hub     *service.Hub

	reducedMotion bool
	rng           *rand.Rand
	sound         bool
	closeLog      func() error

	// applier receives watcher updates once a scene is bound
	applier theme.Applier
}

// Setup runs the startup sequence up to, but not including, service start
func Setup(f *Flags, name string, getenv func(string) string) (*Runtime, error) {
	rt := &Runtime{
		Session:       uuid.NewString(),
		reducedMotion: f.ReducedMotion || getenv(ReducedMotionEnv) == "1",
		sound:         f.Sound,
	}

	l, closeLog, err := logger.New(logger.Config{
		Debug:   f.Debug,
		Level:   f.LogLevel,
		Service: name,
		Session: rt.Session,
	})
	if err != nil {
		return nil, err
	}
	rt.Logger, rt.closeLog = l, closeLog

	cfg, err := config.Load(f.Config)
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.Config = cfg

	path := f.ThemeFile
	if path == "" {
		if path, err = theme.DefaultPath(); err != nil {
			rt.Logger.Warn("theme preference disabled", zap.Error(err))
		}
	}
	if path != "" {
		rt.Store = theme.NewStore(path)
	}

	rt.Theme, err = theme.Resolve(f.Theme, rt.Store, getenv, rt.Logger)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("resolve theme: %w", err)
	}

	if f.Seed != 0 {
		rt.rng = rand.New(rand.NewPCG(f.Seed, f.Seed^0x9e3779b97f4a7c15))
	}

	rt.Metrics = status.NewRegistry()
	rt.Audio = audio.NewService(rt.Logger)
	rt.Hub = service.NewHub(rt.Logger)

	services := []service.Service{
		status.NewService(rt.Metrics, f.MetricsAddr, rt.Logger),
		rt.Audio,
	}
	if rt.Store != nil {
		rt.Watcher = theme.NewWatcher(rt.Store, rt, rt.Theme, rt.Logger)
		services = append(services, rt.Watcher)
	}
	for _, svc := range services {
		if err := rt.Hub.Register(svc); err != nil {
			rt.Close()
			return nil, err
		}
	}

	rt.Logger.Info("startup",
		zap.String("config", f.Config),
		zap.Stringer("theme", rt.Theme),
		zap.Bool("reduced_motion", rt.reducedMotion),
		zap.String("metrics_addr", f.MetricsAddr),
		zap.Uint64("seed", f.Seed),
	)
	return rt, nil
}

// SceneOptions returns the scene wiring for this runtime
func (rt *Runtime) SceneOptions() scene.Options {
	return scene.Options{
		Config:        rt.Config,
		Theme:         rt.Theme,
		ReducedMotion: rt.reducedMotion,
		Rand:          rt.rng,
		Logger:        rt.Logger,
		Metrics:       rt.Metrics,
		Store:         rt.Store,
		Watcher:       rt.Watcher,
		Player:        rt.Audio,
	}
}

// Bind routes watcher updates to a; call before Start
func (rt *Runtime) Bind(a theme.Applier) {
	rt.applier = a
}

// ApplyTheme implements theme.Applier by forwarding to the bound target
func (rt *Runtime) ApplyTheme(t theme.Theme) {
	if rt.applier != nil {
		rt.applier.ApplyTheme(t)
	}
}

// Start initializes and starts every service
func (rt *Runtime) Start() error {
	if err := rt.Hub.InitAll(rt.sound); err != nil {
		return err
	}
	return rt.Hub.StartAll()
}

// Stop halts services
func (rt *Runtime) Stop() {
	if err := rt.Hub.StopAll(); err != nil {
		rt.Logger.Warn("service shutdown", zap.Error(err))
	}
}

// Close flushes and closes the log file
func (rt *Runtime) Close() {
	if rt.closeLog != nil {
		_ = rt.closeLog()
	}
}

// Fatal prints err and exits non-zero
func Fatal(name string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
	os.Exit(1)
}
