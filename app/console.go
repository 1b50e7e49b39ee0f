package app

import (
	"sync"

	"monolcd/hal"
	"monolcd/mono/fb"
	"monolcd/mono/font/font6x8"
	"monolcd/mono/term"
)

// console is a text terminal drawn onto the panel framebuffer.
type console struct {
	t *term.Terminal
}

func newConsole(f *fb.Framebuffer, present func() error) *console {
	d := fb.NewDisplayer(f)
	d.Present = present
	return &console{t: term.New(d, term.Config{
		Font:       font6x8.Font,
		FontHeight: font6x8.Height,
		FontOffset: font6x8.Baseline,
	})}
}

func (c *console) WriteLine(s string) {
	_, _ = c.t.Write([]byte(s))
	_, _ = c.t.Write([]byte{'\r', '\n'})
}

// Flush presents what was written since the last flush.
func (c *console) Flush() error {
	return c.t.Display()
}

// teeLogger writes every line to the host logger and the console.
type teeLogger struct {
	mu   sync.Mutex
	base hal.Logger
	con  *console
}

func (l *teeLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.base != nil {
		l.base.WriteLineString(s)
	}
	l.con.WriteLine(s)
}

func (l *teeLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}
