//go:build !js

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"gol-web/internal/app"
	"gol-web/internal/pattern"
	"gol-web/internal/sched"
	"gol-web/internal/term"
)

type envOptions struct {
	interactive bool
	logFile     string
	interval    time.Duration
}

func main() {
	cfg, eo := initOptions()

	logger, closeLog := openLog(eo)
	defer closeLog()

	eng, err := app.NewEngine(cfg, 0, 0, logger)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if eo.interactive {
		console, err := term.NewConsole(eng.Ctrl, logger)
		if err != nil {
			log.Fatal(err)
		}
		if err := console.Run(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}
	runBatch(ctx, eng)
}

func initOptions() (*app.Config, *envOptions) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.Cell = 60, 30, 1
	cfg.Fill = "random"
	eo := &envOptions{interactive: true, interval: cfg.StepInterval()}

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Width, "x", "width", "Width of the field")
	flaggy.Int(&cfg.Height, "y", "height", "Height of the field")
	flaggy.Duration(&eo.interval, "i", "interval", "Interval between the steps, for example 150ms")
	flaggy.String(&cfg.Boundary, "b", "boundary", "Edge policy [dead|wrap]")
	flaggy.String(&cfg.Fill, "f", "fill", "Initial fill [empty|random|pattern]")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Pattern name or file ["+strings.Join(pattern.Names(), "|")+"]")
	flaggy.Float64(&cfg.Density, "d", "density", "Live-cell probability for random fills")
	flaggy.Int64(&cfg.Seed, "", "seed", "Seed for random fills (0 picks one)")
	flaggy.Int(&cfg.Workers, "w", "workers", "Row bands stepped in parallel")
	flaggy.Int(&cfg.MaxGen, "s", "maxSteps", "Stop after this many generations")
	flaggy.Bool(&cfg.StopStable, "", "stop-stable", "Stop once the field stops changing")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the interactive screen (false prints progress)")
	flaggy.String(&eo.logFile, "l", "log", "Write the action log to this file")
	flaggy.Parse()

	cfg.Interval = int(eo.interval / time.Millisecond)
	if cfg.Fill == "random" && cfg.Pattern != "" {
		cfg.Fill = "pattern"
	}
	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if !eo.interactive && cfg.MaxGen == 0 && !cfg.StopStable {
		flaggy.ShowHelpAndExit("batch mode needs --maxSteps or --stop-stable")
	}
	return cfg, eo
}

// openLog keeps the action log off the terminal while the screen is drawn.
func openLog(eo *envOptions) (*log.Logger, func()) {
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		return log.New(f, "", log.LstdFlags), func() { _ = f.Close() }
	}
	if eo.interactive {
		return log.New(io.Discard, "", 0), func() {}
	}
	return log.Default(), func() {}
}

func runBatch(ctx context.Context, eng *app.Engine) {
	fmt.Println("Running configuration:")
	size := eng.Sim.Size()
	fmt.Printf("  Dimension: %v x %v\n", size.W, size.H)
	fmt.Printf("  Boundary: %v\n", eng.Sim.Boundary())
	fmt.Printf("  Interval: %v\n", eng.Sched.Interval())
	fmt.Printf("  Seed: %v\n", eng.Seed)
	fmt.Println("\nSimulation started...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = eng.Sched.Run(ctx) }()

	start := time.Now()
	eng.Sched.Play()
	ticker := time.NewTicker(eng.Sched.Interval())
	defer ticker.Stop()
	var reported uint64
	for eng.Sched.State() == sched.Running {
		select {
		case <-ctx.Done():
			eng.Sched.Pause()
		case <-ticker.C:
			if gen := eng.Sim.Generation(); gen/10 > reported/10 {
				fmt.Printf("  Generations done: %v\n", gen)
				reported = gen
			}
		}
	}
	fmt.Println("\nFinished:")
	fmt.Printf("  Generation: %v\n", eng.Sim.Generation())
	fmt.Printf("  Live cells: %v\n", eng.Sim.Population())
	fmt.Printf("  Total time: %v\n", time.Since(start).Round(time.Millisecond))
}
