//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"monolcd/mono"
	"monolcd/mono/fb"
)

// TerminalConfig controls the terminal emulator host.
type TerminalConfig struct {
	Host HostConfig
	Hz   int
}

// RunTerminal shows the framebuffer in the terminal using half-block cells,
// two pixel rows per character. Escape or Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	h := newHost(cfg.Host)
	step := newApp(h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go forwardEvents(ctx, screen.PollEvent, events)

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]byte, len(h.fb.front))
	var drawn uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
					return nil
				}
				if ke, ok := keyFromTcell(ev); ok {
					h.kbd.push(ke)
				}
			case *tcell.EventResize:
				screen.Sync()
				drawn = 0
			}
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if frames := h.fb.snapshot(scratch); frames != drawn {
				drawn = frames
				view, err := h.fb.view(scratch)
				if err != nil {
					return err
				}
				drawHalfBlocks(screen, view)
				screen.Show()
			}
		}
	}
}

// forwardEvents copies polled events to out until poll returns nil or ctx is
// done.
func forwardEvents(ctx context.Context, poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func keyFromTcell(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyTab:
		return KeyEvent{Code: KeyTab, Press: true}, true
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	}
	return KeyEvent{}, false
}

// halfBlock returns the cell for a pair of stacked pixels.
func halfBlock(top, bottom mono.Color) (rune, tcell.Style) {
	lit := tcell.ColorWhite
	unlit := tcell.ColorBlack
	fg, bg := unlit, unlit
	if top == mono.Black {
		fg = lit
	}
	if bottom == mono.Black {
		bg = lit
	}
	return '▀', tcell.StyleDefault.Foreground(fg).Background(bg)
}

func drawHalfBlocks(screen tcell.Screen, f *fb.Framebuffer) {
	for y := 0; y < f.Height(); y += 2 {
		for x := 0; x < f.Width(); x++ {
			r, style := halfBlock(f.GetPixel(x, y), f.GetPixel(x, y+1))
			screen.SetContent(x, y/2, r, nil, style)
		}
	}
}
