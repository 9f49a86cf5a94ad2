package effects

import "fmt"

// Canvas is the output frame geometry every transition renders into.
type Canvas struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	FPS    int `yaml:"fps" toml:"fps"`
}

// DefaultCanvas is 1920x1080 at 30 fps.
var DefaultCanvas = Canvas{Width: 1920, Height: 1080, FPS: 30}

// Center returns the pixel coordinates of the frame center.
func (c Canvas) Center() (int, int) {
	return c.Width / 2, c.Height / 2
}

// Size renders the canvas as WxH.
func (c Canvas) Size() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// Validate reports an error for non-positive dimensions or rate.
func (c Canvas) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %s", c.Size())
	}
	if c.FPS <= 0 {
		return fmt.Errorf("canvas rate must be positive, got %d fps", c.FPS)
	}
	return nil
}
