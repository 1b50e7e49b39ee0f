package app

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"monolcd/hal"
	"monolcd/mono"
	"monolcd/mono/coord"
	"monolcd/mono/fb"
)

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) RowHeight() int          { return fb.DefaultRowHeight }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatMonoPage }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }

type fakeHAL struct {
	log   *fakeLogger
	fb    *fakeFB
	keys  chan hal.KeyEvent
	ticks chan uint64
}

func newFakeHAL() *fakeHAL {
	w, h := hal.DefaultWidth, hal.DefaultHeight
	return &fakeHAL{
		log:   &fakeLogger{},
		fb:    &fakeFB{w: w, h: h, buf: make([]byte, fb.BufferLen(w, h, fb.DefaultRowHeight))},
		keys:  make(chan hal.KeyEvent, 16),
		ticks: make(chan uint64, 16),
	}
}

func (h *fakeHAL) Logger() hal.Logger             { return h.log }
func (h *fakeHAL) Display() hal.Display           { return h }
func (h *fakeHAL) Framebuffer() hal.Framebuffer   { return h.fb }
func (h *fakeHAL) Input() hal.Input               { return h }
func (h *fakeHAL) Keyboard() hal.Keyboard         { return h }
func (h *fakeHAL) Events() <-chan hal.KeyEvent    { return h.keys }
func (h *fakeHAL) Time() hal.Time                 { return h }
func (h *fakeHAL) Ticks() <-chan uint64           { return h.ticks }
func (h *fakeHAL) pixel(x, y int) mono.Color      { return h.view().GetPixel(x, y) }
func (h *fakeHAL) press(code hal.KeyCode, r rune) { h.keys <- hal.KeyEvent{Code: code, Rune: r, Press: true} }
func (h *fakeHAL) view() *fb.Framebuffer {
	f, _ := fb.New(h.fb.w, h.fb.h, h.fb.buf)
	return f
}

type memStore struct {
	values map[string]int
	saves  int
	err    error
}

func (m *memStore) Load(context.Context) (map[string]int, error) { return m.values, m.err }

func (m *memStore) Save(_ context.Context, v map[string]int) error {
	m.saves++
	m.values = v
	return m.err
}

func TestApplyKey(t *testing.T) {
	tests := []struct {
		name string
		in   State
		ev   hal.KeyEvent
		want State
		ok   bool
	}{
		{"tab", DefaultState, hal.KeyEvent{Code: hal.KeyTab, Press: true}, State{Radius: 5, Thickness: 1, Scroll: 50, Focus: FieldRadius}, true},
		{"tab wraps", State{Radius: 5, Thickness: 1, Focus: FieldScroll}, hal.KeyEvent{Code: hal.KeyTab, Press: true}, State{Radius: 5, Thickness: 1}, true},
		{"up", DefaultState, hal.KeyEvent{Code: hal.KeyUp, Press: true}, State{Progress: 5, Radius: 5, Thickness: 1, Scroll: 50}, true},
		{"plus rune", DefaultState, hal.KeyEvent{Rune: '+', Press: true}, State{Progress: 5, Radius: 5, Thickness: 1, Scroll: 50}, true},
		{"clamp high", State{Progress: 100, Radius: 5, Thickness: 1}, hal.KeyEvent{Code: hal.KeyRight, Press: true}, State{Progress: 100, Radius: 5, Thickness: 1}, false},
		{"clamp low", DefaultState, hal.KeyEvent{Code: hal.KeyDown, Press: true}, DefaultState, false},
		{"thickness bound", State{Radius: 3, Thickness: 3, Focus: FieldThickness}, hal.KeyEvent{Rune: '+', Press: true}, State{Radius: 3, Thickness: 3, Focus: FieldThickness}, false},
		{"radius drags thickness", State{Radius: 3, Thickness: 3, Focus: FieldRadius}, hal.KeyEvent{Rune: '-', Press: true}, State{Radius: 2, Thickness: 2, Focus: FieldRadius}, true},
		{"enter resets", State{Progress: 70, Radius: 5, Thickness: 1}, hal.KeyEvent{Code: hal.KeyEnter, Press: true}, State{Radius: 5, Thickness: 1}, true},
		{"release ignored", DefaultState, hal.KeyEvent{Code: hal.KeyUp}, DefaultState, false},
		{"other rune", DefaultState, hal.KeyEvent{Rune: 'x', Press: true}, DefaultState, false},
	}
	for _, tt := range tests {
		got, ok := applyKey(tt.in, tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("%s: applyKey() = %+v, %v; want %+v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStateClamp(t *testing.T) {
	got := State{Progress: 150, Radius: 40, Thickness: 0, Scroll: -1, Focus: 9}.Clamp()
	want := State{Progress: 100, Radius: MaxRadius, Thickness: 1, Scroll: 0}
	if got != want {
		t.Fatalf("Clamp() = %+v, want %+v", got, want)
	}
	if got := (State{Radius: 0, Thickness: 5}).Clamp().Thickness; got != 1 {
		t.Fatalf("Clamp().Thickness at radius 0 = %d, want 1", got)
	}
}

func TestStepRendersOnlyWhenDirty(t *testing.T) {
	h := newFakeHAL()
	step := New(h)

	if err := step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", h.fb.presents)
	}
	// progress bar outline and scroller guide
	if h.pixel(15, 5) != mono.Black || h.pixel(88, 15) != mono.Black {
		t.Fatalf("progress bar outline missing")
	}
	if h.pixel(5, 20) != mono.Black {
		t.Fatalf("scroller guide missing")
	}
	// 0% progress leaves the bar interior white
	if h.pixel(16, 10) != mono.White {
		t.Fatalf("progress bar filled at 0%%")
	}

	if err := step(); err != nil {
		t.Fatal(err)
	}
	if h.fb.presents != 1 {
		t.Fatalf("idle step presented: %d", h.fb.presents)
	}

	for range 10 {
		h.press(hal.KeyUp, 0)
	}
	if err := step(); err != nil {
		t.Fatal(err)
	}
	if h.fb.presents != 2 {
		t.Fatalf("presents = %d, want 2", h.fb.presents)
	}
	if h.pixel(16, 10) != mono.Black || h.pixel(87, 10) != mono.White {
		t.Fatalf("50%% progress bar not rendered")
	}
	if last := h.log.lines[len(h.log.lines)-1]; last != "progress = 50" {
		t.Fatalf("last log line = %q, want %q", last, "progress = 50")
	}
}

func TestStoreLoadAndSave(t *testing.T) {
	h := newFakeHAL()
	st := &memStore{values: map[string]int{"progress": 30, "radius": 99, "unknown": 1}}
	s, err := newSystem(h, Config{Store: st})
	if err != nil {
		t.Fatal(err)
	}
	if s.state.Progress != 30 || s.state.Radius != MaxRadius {
		t.Fatalf("loaded state = %+v", s.state)
	}

	h.press(hal.KeyTab, 0)
	if err := s.step(); err != nil {
		t.Fatal(err)
	}
	if st.saves != 1 || st.values["radius"] != MaxRadius || st.values["progress"] != 30 {
		t.Fatalf("saves = %d values = %v", st.saves, st.values)
	}
}

func TestStoreErrorsAreLogged(t *testing.T) {
	h := newFakeHAL()
	st := &memStore{err: errors.New("disk gone")}
	s, err := newSystem(h, Config{Store: st})
	if err != nil {
		t.Fatal(err)
	}
	if s.state != DefaultState {
		t.Fatalf("state = %+v, want defaults", s.state)
	}
	if !strings.Contains(strings.Join(h.log.lines, "\n"), "load failed: disk gone") {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestAnimateAdvancesProgress(t *testing.T) {
	h := newFakeHAL()
	s, err := newSystem(h, Config{Animate: true, AnimateTicks: 100})
	if err != nil {
		t.Fatal(err)
	}
	h.ticks <- 1
	h.ticks <- 150
	h.ticks <- 201
	if err := s.step(); err != nil {
		t.Fatal(err)
	}
	if s.state.Progress != 2 {
		t.Fatalf("Progress = %d, want 2", s.state.Progress)
	}
}

func TestConsoleMode(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Console: true})
	if err := step(); err != nil {
		t.Fatal(err)
	}
	if h.fb.presents == 0 {
		t.Fatalf("console never presented")
	}
	lit := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < h.fb.w; x++ {
			if h.pixel(x, y) == mono.Black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("console drew no text on the first line")
	}
	if len(h.log.lines) == 0 || !strings.HasPrefix(h.log.lines[0], "monolcd 160x32") {
		t.Fatalf("host log = %q", h.log.lines)
	}
}

func TestNoDisplay(t *testing.T) {
	step := NewWithConfig(nil, Config{})
	if err := step(); !errors.Is(err, hal.ErrNotImplemented) {
		t.Fatalf("step() error = %v, want ErrNotImplemented", err)
	}
}

func TestScenePicture(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	found := false
	sink := mono.PixelSinkFunc(func(x, y int, c mono.Color) bool {
		if pictureBox.Contains(coord.V(x, y)) && c == mono.Black {
			found = true
		}
		return true
	})
	Scene{State: DefaultState, Picture: img}.Draw(sink)
	if !found {
		t.Fatalf("picture not drawn")
	}
}
