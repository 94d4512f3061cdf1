package view

import "fmt"

// Config is the startup record the graphical viewer is built from.
type Config struct {
	WindowW   int
	WindowH   int
	RealRange float64
	ImagRange float64
	CenterX   float64
	CenterY   float64
}

func DefaultConfig() Config {
	return Config{
		WindowW:   800,
		WindowH:   600,
		RealRange: 3.6,
		ImagRange: 2.7,
		CenterX:   -0.6,
		CenterY:   0,
	}
}

func (c Config) Validate() error {
	if c.WindowW <= 0 || c.WindowH <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowW, c.WindowH)
	}
	if !(c.RealRange > 0) || !(c.ImagRange > 0) {
		return fmt.Errorf("ranges must be positive, got real %v imag %v", c.RealRange, c.ImagRange)
	}
	return nil
}
