package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/rebound/internal/chain"
	"github.com/olivier-w/rebound/internal/driver"
	"github.com/olivier-w/rebound/internal/spring"
	"github.com/olivier-w/rebound/internal/store"
	"github.com/olivier-w/rebound/internal/ui"
)

type config struct {
	springs    int
	fps        int
	tension    float64
	friction   float64
	bounciness float64
	speed      float64
	configName string
	dbPath     string
	logPath    string
	trace      bool
	headless   bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.springs, "springs", 7, "number of springs in the chain")
	flag.IntVar(&cfg.fps, "fps", 60, "frames per second")
	flag.Float64Var(&cfg.tension, "tension", 0, "origami tension of the control spring (0 keeps the default)")
	flag.Float64Var(&cfg.friction, "friction", 0, "origami friction of the control spring (0 keeps the default)")
	flag.Float64Var(&cfg.bounciness, "bounciness", -1, "bounciness of the control spring; overrides -tension and -friction")
	flag.Float64Var(&cfg.speed, "speed", -1, "speed of the control spring; overrides -tension and -friction")
	flag.StringVar(&cfg.configName, "config", "", "saved config to use for the control spring (needs -db)")
	flag.StringVar(&cfg.dbPath, "db", envOrDefault("REBOUND_DB", ""), "sqlite file holding saved configs")
	flag.StringVar(&cfg.logPath, "log", envOrDefault("REBOUND_LOG", ""), "file to write debug logs to")
	flag.BoolVar(&cfg.trace, "trace", false, "print the trajectory of one spring from 0 to 1 as CSV and exit")
	flag.BoolVar(&cfg.headless, "headless", false, "run the chain in real time without a UI, logging rest events")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	if cfg.springs < 1 {
		return fmt.Errorf("invalid -springs %d: need at least one spring", cfg.springs)
	}
	if cfg.fps < 1 {
		return fmt.Errorf("invalid -fps %d", cfg.fps)
	}

	logger, closeLog, err := setupLogging(cfg.logPath, cfg.headless)
	if err != nil {
		return err
	}
	defer closeLog()

	registry := spring.NewConfigRegistry(true)
	var st *store.Store
	if cfg.dbPath != "" {
		st, err = store.Open(cfg.dbPath)
		if err != nil {
			return fmt.Errorf("opening config store: %w", err)
		}
		defer st.Close()
		n, err := st.LoadInto(registry)
		if err != nil {
			return fmt.Errorf("loading saved configs: %w", err)
		}
		logger.Info("saved configs loaded", "count", n, "db", cfg.dbPath)
	}

	mainCfg, err := mainConfig(cfg, registry)
	if err != nil {
		return err
	}

	switch {
	case cfg.trace:
		c := spring.DefaultConfig
		if mainCfg != nil {
			c = *mainCfg
		}
		return runTrace(os.Stdout, c, cfg.fps, logger)
	case cfg.headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return runHeadless(ctx, cfg, mainCfg, logger)
	}

	model := ui.New(ui.Options{
		Springs:  cfg.springs,
		FPS:      cfg.fps,
		Main:     mainCfg,
		Registry: registry,
		Store:    st,
		Logger:   logger,
		Seed:     time.Now().UnixNano(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// mainConfig resolves the control spring config from flags. A nil config
// keeps the chain default.
func mainConfig(cfg config, registry *spring.ConfigRegistry) (*spring.Config, error) {
	switch {
	case cfg.configName != "":
		c, ok := registry.Get(cfg.configName)
		if !ok {
			return nil, fmt.Errorf("unknown config %q", cfg.configName)
		}
		return &c, nil
	case cfg.bounciness >= 0 || cfg.speed >= 0:
		bounciness, speed := max(cfg.bounciness, 0), cfg.speed
		if speed < 0 {
			speed = 12
		}
		c := spring.FromBouncinessAndSpeed(bounciness, speed)
		return &c, nil
	case cfg.tension > 0 || cfg.friction > 0:
		tension, friction := cfg.tension, cfg.friction
		if tension <= 0 {
			tension = 40
		}
		if friction <= 0 {
			friction = 6
		}
		c := spring.FromOrigamiTensionAndFriction(tension, friction)
		return &c, nil
	}
	return nil, nil
}

// setupLogging sends logs to path when set. Without a path the TUI keeps
// the terminal to itself, while the headless mode logs to stderr.
func setupLogging(path string, headless bool) (*slog.Logger, func(), error) {
	var logger *slog.Logger
	closeLog := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeLog = func() { f.Close() }
	case headless:
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	default:
		logger = slog.New(slog.DiscardHandler)
	}
	slog.SetDefault(logger)
	return logger, closeLog, nil
}

// runTrace integrates one spring from 0 to 1 at a fixed frame rate and
// writes frame,value,velocity rows.
func runTrace(w io.Writer, c spring.Config, fps int, logger *slog.Logger) error {
	out := bufio.NewWriter(w)
	looper := &spring.SynchronousLooper{TimeStep: time.Second / time.Duration(fps), MaxFrames: 100000}
	sys := spring.NewSystem(looper, spring.WithLogger(logger))
	s := sys.CreateSpring().SetConfig(c)

	var werr error
	frame := 0
	s.AddListener(&spring.ListenerFuncs{Update: func(sp *spring.Spring) {
		frame++
		if werr == nil {
			_, werr = fmt.Fprintf(out, "%d,%.6f,%.6f\n", frame, sp.CurrentValue(), sp.Velocity())
		}
	}})

	if _, err := fmt.Fprintln(out, "frame,value,velocity"); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	s.SetEndValue(1)
	if werr != nil {
		return fmt.Errorf("writing trace: %w", werr)
	}
	if !s.IsAtRest() {
		logger.Warn("trace stopped before the spring settled", "frames", looper.Frames())
	}
	return out.Flush()
}

// runHeadless moves the control spring of a chain across the range in
// real time and returns once every spring has settled.
func runHeadless(ctx context.Context, cfg config, mainCfg *spring.Config, logger *slog.Logger) error {
	ticker := driver.NewTicker(time.Second / time.Duration(cfg.fps))
	opts := []chain.Option{chain.WithLogger(logger)}
	if mainCfg != nil {
		opts = append(opts, chain.WithMainConfig(*mainCfg))
	}
	c := chain.New(ticker, opts...)
	for i := range cfg.springs {
		c.AddSpring(&spring.ListenerFuncs{AtRest: func(s *spring.Spring) {
			logger.Info("spring at rest", "index", i, "value", s.CurrentValue())
		}})
	}
	c.SetControlSpringIndex(cfg.springs / 2)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.System().AddListener(&spring.SystemListenerFuncs{After: func(sys *spring.System) {
		if sys.IsIdle() {
			cancel()
		}
	}})

	errc := make(chan error, 1)
	go func() { errc <- ticker.Run(runCtx) }()

	start := time.Now()
	if err := ticker.Do(runCtx, func() { c.ControlSpring().SetEndValue(100) }); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	err := <-errc
	if !errors.Is(err, context.Canceled) {
		return err
	}
	if ctx.Err() != nil {
		logger.Info("interrupted", "frames", ticker.Frames())
		return nil
	}
	logger.Info("chain settled", "frames", ticker.Frames(), "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
