// Package screen queries the display size so fallback terminal windows can
// be right-aligned. The probe shells out to xdpyinfo and parses its
// "dimensions: WxH pixels" line. Everything here is best-effort: a missing
// binary or unexpected output degrades to "no geometry" and the emulator
// places the window wherever it likes.
package screen

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Size holds screen dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// Geometry describes a terminal window placement in the WxH+X+Y form that
// gnome-terminal and friends accept. Width and height are character cells,
// offsets are pixels.
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Flag renders the geometry as a command-line flag.
func (g Geometry) Flag() string {
	return fmt.Sprintf("--geometry=%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// RightAligned computes a geometry whose x offset places the window flush
// against the right screen edge with the given margin. The width value
// doubles as the pixel estimate when computing the offset, so
// 1920 - 500 - 50 = 1370 for the defaults.
func RightAligned(s Size, width, height, rightMargin, topOffset int) Geometry {
	x := s.Width - width - rightMargin
	if x < 0 {
		x = 0
	}
	return Geometry{Width: width, Height: height, X: x, Y: topOffset}
}

// Prober detects the screen size via an external query utility.
type Prober struct {
	tool     string
	lookPath func(file string) (string, error)
	output   func(name string, args ...string) ([]byte, error)
}

// NewProber returns a prober backed by xdpyinfo.
func NewProber() *Prober {
	return &Prober{
		tool:     "xdpyinfo",
		lookPath: exec.LookPath,
		output: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

// Detect returns the screen size, or ok=false when the utility is missing,
// fails, or prints something unparsable. Never returns an error: callers
// treat every failure the same way, by omitting the geometry flag.
func (p *Prober) Detect() (Size, bool) {
	if _, err := p.lookPath(p.tool); err != nil {
		return Size{}, false
	}
	out, err := p.output(p.tool)
	if err != nil {
		return Size{}, false
	}
	return ParseDimensions(string(out))
}

// ParseDimensions extracts a WxH token from the line containing the
// "dimensions" token in xdpyinfo-style output.
func ParseDimensions(out string) (Size, bool) {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		for i, f := range fields {
			if strings.TrimSuffix(f, ":") != "dimensions" {
				continue
			}
			if i+1 >= len(fields) {
				return Size{}, false
			}
			return parseWxH(fields[i+1])
		}
	}
	return Size{}, false
}

func parseWxH(token string) (Size, bool) {
	parts := strings.SplitN(token, "x", 2)
	if len(parts) != 2 {
		return Size{}, false
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return Size{}, false
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}
