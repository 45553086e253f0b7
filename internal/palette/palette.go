// Package palette maps seeds to colors.
//
// The collection treats the palette as an external pure function; the
// keccak-backed implementation here is the one shared with the Crane
// collection and must never change its output for a given seed.
package palette

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Color is an opaque sRGB color
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the #rrggbb form used in SVG attributes
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Provider maps a seed to a color. Implementations must be pure.
type Provider interface {
	ColorFor(seed uint64) Color
}

type keccakPalette struct{}

// NewKeccak returns the default palette: the seed is hashed with keccak256 and
// the digest picks a hue, saturation and lightness within a readable range.
func NewKeccak() Provider {
	return keccakPalette{}
}

func (keccakPalette) ColorFor(seed uint64) Color {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], seed)
	h := crypto.Keccak256(buf[:])

	hue := int(binary.BigEndian.Uint16(h[0:2])) % 360
	sat := 45 + int(h[2])%45   // 45..89
	light := 35 + int(h[3])%35 // 35..69
	return FromHSL(hue, sat, light)
}

// FromHSL converts hue [0,360), saturation and lightness [0,100] to RGB.
// Integer arithmetic keeps the result identical on every platform.
func FromHSL(h, s, l int) Color {
	h = ((h % 360) + 360) % 360
	s = clamp(s, 0, 100)
	l = clamp(l, 0, 100)

	// chroma, scaled to 0..10000
	c := (100 - abs(2*l-100)) * s
	hp := h * 1000 / 60 // sector position, scaled by 1000
	x := c * (1000 - abs(hp%2000-1000)) / 1000
	m := l*100 - c/2

	var r, g, b int
	switch hp / 1000 {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
	}
}

func channel(v int) uint8 {
	return uint8(clamp((v*255+5000)/10000, 0, 255))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
