//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"monolcd/app"
	"monolcd/hal"
	"monolcd/internal/state"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run parses args and drives the selected host until it stops. Deferred
// cleanup, including closing the state store, runs before it returns.
func run(ctx context.Context, args []string) error {
	var (
		headless hal.HeadlessConfig
		host     hal.HostConfig
		appCfg   app.Config
		tui      bool
		scale    int
		hz       int
		stateDB  string
	)
	fs := flag.NewFlagSet("monolcd", flag.ContinueOnError)
	fs.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	fs.IntVar(&hz, "hz", 60, "Step rate in headless and terminal mode.")
	fs.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	fs.BoolVar(&tui, "tui", false, "Render the panel in the terminal.")
	fs.BoolVar(&appCfg.Console, "console", false, "Show the app log on the panel.")
	fs.BoolVar(&appCfg.Animate, "animate", false, "Advance the progress bar over time.")
	fs.IntVar(&scale, "scale", hal.DefaultScale, "Window pixel scale.")
	fs.IntVar(&host.Width, "width", hal.DefaultWidth, "Panel width in pixels.")
	fs.IntVar(&host.Height, "height", hal.DefaultHeight, "Panel height in pixels.")
	fs.StringVar(&stateDB, "state", "monolcd.db", "sqlite file for UI state (empty disables).")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if stateDB != "" {
		st, err := state.Open(ctx, stateDB)
		if err != nil {
			return err
		}
		defer st.Close()
		appCfg.Store = st
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	var err error
	switch {
	case headless.Enabled:
		headless.Host = host
		headless.Hz = hz
		err = hal.RunHeadless(ctx, newApp, headless)
	case tui:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Host: host, Hz: hz})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Host: host, Scale: scale})
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
