//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"monolcd/internal/buildinfo"
)

// WindowConfig controls the desktop emulator window.
type WindowConfig struct {
	Host    HostConfig
	Scale   int
	TPS     int
	Palette *Palette
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = DefaultScale
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	pal := DefaultPalette
	if cfg.Palette != nil {
		pal = *cfg.Palette
	}

	h := newHost(cfg.Host)
	step := newApp(h)

	g := &hostGame{h: h, step: step, scale: cfg.Scale, palette: pal, hoverX: -1, hoverY: -1}
	g.title = "monolcd (" + buildinfo.Short() + ")"
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	step    func() error
	scale   int
	palette Palette
	title   string

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	drawn   uint64

	hoverX, hoverY int
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step(1)
	g.updateHover()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// updateHover shows the framebuffer coordinate under the cursor in the title
// and logs it on right click.
func (g *hostGame) updateHover() {
	cx, cy := ebiten.CursorPosition()
	x, y := cx/g.scale, cy/g.scale
	if cx < 0 || cy < 0 || x >= g.h.fb.width || y >= g.h.fb.height {
		x, y = -1, -1
	}
	if x != g.hoverX || y != g.hoverY {
		g.hoverX, g.hoverY = x, y
		if x < 0 {
			ebiten.SetWindowTitle(g.title)
		} else {
			ebiten.SetWindowTitle(fmt.Sprintf("%s x=%d y=%d", g.title, x, y))
		}
	}
	if x >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.h.logger.WriteLineString(fmt.Sprintf("cursor: (%d, %d)", x, y))
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	f := g.h.fb
	w, h := f.width*g.scale, f.height*g.scale
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, len(f.front))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.drawn = 0
	}

	if frames := f.snapshot(g.scratch); frames != g.drawn {
		g.drawn = frames
		view, err := f.view(g.scratch)
		if err != nil {
			g.h.logger.WriteLineString("window: " + err.Error())
			return
		}
		expandMono(g.img, view, g.scale, g.palette)
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width * g.scale, g.h.fb.height * g.scale
}
