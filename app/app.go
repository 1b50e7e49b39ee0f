// Package app is the LCD emulator application: it keeps the demo scene state,
// applies key presses and renders one pass into the host framebuffer per step.
package app

import (
	"context"
	"fmt"
	"image"

	"monolcd/hal"
	"monolcd/mono"
	"monolcd/mono/fb"
)

// Store persists scene values between runs.
type Store interface {
	Load(ctx context.Context) (map[string]int, error)
	Save(ctx context.Context, values map[string]int) error
}

type Config struct {
	// Console shows the app log on the panel instead of the scene.
	Console bool
	// Animate advances the progress bar every AnimateTicks host ticks.
	Animate      bool
	AnimateTicks uint64
	Store        Store
	Picture      image.Image
	Initial      *State
}

type system struct {
	h     hal.HAL
	cfg   Config
	log   hal.Logger
	fb    hal.Framebuffer
	view  *fb.Framebuffer
	con   *console
	state State
	dirty bool

	lastTick uint64
	animAcc  uint64
}

// New initializes the emulator with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the emulator and returns its step function. A
// setup failure is logged and reported by every step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		if h != nil && h.Logger() != nil {
			h.Logger().WriteLineString("app: " + err.Error())
		}
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: %w: no display", hal.ErrNotImplemented)
	}
	if cfg.AnimateTicks == 0 {
		cfg.AnimateTicks = 100
	}
	hfb := h.Display().Framebuffer()
	if hfb.Format() != hal.PixelFormatMonoPage {
		return nil, fmt.Errorf("app: unsupported pixel format %d", hfb.Format())
	}
	view, err := fb.NewWithConfig(hfb.Buffer(), fb.Config{
		Width:     hfb.Width(),
		Height:    hfb.Height(),
		RowHeight: hfb.RowHeight(),
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	s := &system{h: h, cfg: cfg, log: h.Logger(), fb: hfb, view: view, state: DefaultState, dirty: true}
	if cfg.Initial != nil {
		s.state = cfg.Initial.Clamp()
	}
	if cfg.Console {
		s.con = newConsole(view, hfb.Present)
		s.log = &teeLogger{base: h.Logger(), con: s.con}
	}
	if cfg.Store != nil {
		values, err := cfg.Store.Load(context.Background())
		if err != nil {
			s.logf("state: load failed: %v", err)
		} else {
			s.state = stateFromValues(s.state, values)
		}
	}
	s.logf("monolcd %dx%d, %s = %d", hfb.Width(), hfb.Height(), s.state.Focus, s.state.Get(s.state.Focus))
	return s, nil
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (s *system) step() error {
	changed := s.pollKeys()
	if s.pollTicks() {
		changed = true
	}
	if changed {
		s.dirty = true
		s.persist()
	}
	if !s.dirty {
		return nil
	}
	s.dirty = false

	if s.con != nil {
		return s.con.Flush()
	}
	return s.render()
}

// render draws one full pass of the scene and publishes it.
func (s *system) render() error {
	s.view.Clear(mono.White)
	Scene{State: s.state, Picture: s.cfg.Picture}.Draw(s.view)
	if err := s.fb.Present(); err != nil {
		return fmt.Errorf("app: present: %w", err)
	}
	return nil
}

func (s *system) pollKeys() bool {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return false
	}
	events := in.Keyboard().Events()
	changed := false
	for {
		select {
		case ev := <-events:
			next, ok := applyKey(s.state, ev)
			if !ok {
				continue
			}
			if next.Focus != s.state.Focus {
				s.logf("focus: %s", next.Focus)
			} else {
				s.logf("%s = %d", next.Focus, next.Get(next.Focus))
			}
			s.state = next
			changed = true
		default:
			return changed
		}
	}
}

// pollTicks drains the tick stream and advances the animation.
func (s *system) pollTicks() bool {
	t := s.h.Time()
	if t == nil || t.Ticks() == nil {
		return false
	}
	ticks := t.Ticks()
drain:
	for {
		select {
		case seq := <-ticks:
			if s.lastTick != 0 && seq > s.lastTick {
				s.animAcc += seq - s.lastTick
			}
			s.lastTick = seq
		default:
			break drain
		}
	}
	if !s.cfg.Animate || s.animAcc < s.cfg.AnimateTicks {
		return false
	}
	steps := int(s.animAcc / s.cfg.AnimateTicks)
	s.animAcc %= s.cfg.AnimateTicks
	s.state.Progress = (s.state.Progress + steps) % 101
	return true
}

func (s *system) persist() {
	if s.cfg.Store == nil {
		return
	}
	if err := s.cfg.Store.Save(context.Background(), s.state.values()); err != nil {
		s.logf("state: save failed: %v", err)
	}
}
