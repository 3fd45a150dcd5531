package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/srodi/proctop/pkg/collector/cpu"
	"github.com/srodi/proctop/pkg/monitor"
	"github.com/srodi/proctop/pkg/ui"
)

type runConfig struct {
	mode      ui.Mode
	nameWidth int
	color     bool
	logLevel  hclog.Level
}

// defaultConfig is the only configuration: the dashboard takes no flags,
// environment or files.
func defaultConfig(interactive bool) runConfig {
	return runConfig{
		mode:      ui.ModeCursorRewind,
		nameWidth: ui.DefaultNameWidth,
		color:     interactive,
		logLevel:  hclog.Warn,
	}
}

func main() {
	os.Exit(run())
}

func run() int {
	stdoutFD := int(os.Stdout.Fd())
	cfg := defaultConfig(ui.IsTerminal(stdoutFD))

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "proctop",
		Level:  cfg.logLevel,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	restore, err := ui.PrepareTerminal(os.Stdout, stdoutFD, int(os.Stdin.Fd()))
	if err != nil {
		logger.Warn("terminal setup incomplete", "error", err)
	}
	defer restore()

	renderer := ui.NewRenderer(os.Stdout, ui.Options{
		Mode:      cfg.mode,
		NameWidth: cfg.nameWidth,
		Color:     cfg.color,
	})
	defer func() {
		if err := renderer.Finish(); err != nil {
			logger.Debug("leaving final frame", "error", err)
		}
	}()

	sampler := cpu.NewSampler(cpu.NewHostTable(), logger)
	rows := func() int { return ui.RowBudget(ui.VisibleRows(stdoutFD)) }

	logger.Debug("dashboard starting", "mode", cfg.mode, "interval", cpu.CycleInterval())
	if err := monitor.NewLoop(sampler, renderer, rows, logger).Run(ctx); err != nil {
		logger.Error("dashboard stopped", "error", err)
		return 1
	}
	return 0
}
