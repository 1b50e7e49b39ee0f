//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop emulator window.
type WindowConfig struct {
	Host    HostConfig
	Scale   int
	TPS     int
	Palette *Palette
}

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
