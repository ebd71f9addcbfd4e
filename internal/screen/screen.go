// Package screen renders the sensor readings on a display surface.
// Every region render fully clears its area before drawing, so a shorter
// string never leaves characters from the previous one behind.
package screen

import (
	"fmt"

	"github.com/sweeney/hall-display/internal/logic"
)

// Surface is a display with a fixed layout.
type Surface interface {
	// RenderStaticLayout draws the header and labels. Called once at startup.
	RenderStaticLayout() error

	// RenderDigitalRegion clears the digital value region and draws text.
	RenderDigitalRegion(text string) error

	// RenderAnalogRegion clears the analog value region and draws text.
	RenderAnalogRegion(text string) error

	// Close releases the display.
	Close() error
}

// Layout text shared by all surfaces.
const (
	Title        = "KY024 Hall Sensor"
	Rule         = "-----------------"
	DigitalLabel = "Digital State:"
	AnalogLabel  = "Analog Value:"
)

// Render dispatches a command to the matching region.
func Render(s Surface, cmd logic.Command) error {
	switch cmd.Region {
	case logic.RegionDigital:
		return s.RenderDigitalRegion(cmd.Text)
	case logic.RegionAnalog:
		return s.RenderAnalogRegion(cmd.Text)
	}
	return fmt.Errorf("unknown region %v", cmd.Region)
}

// truncate limits a string to maxLen characters, adding ".." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 2 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
