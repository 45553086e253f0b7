package render

import (
	"fmt"
	"strings"
)

const canvasSize = 400

// clawRadius by claw size
var clawRadius = [3]int{22, 30, 40}

// buildSVG writes the fixed crab layout parameterised by a
func buildSVG(a Attributes) []byte {
	var b strings.Builder
	b.Grow(2048)

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		canvasSize, canvasSize, canvasSize, canvasSize)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, canvasSize, canvasSize, a.Background.Hex())

	// legs
	for i := 0; i < 3; i++ {
		y := 230 + i*22
		fmt.Fprintf(&b, `<line x1="130" y1="%d" x2="70" y2="%d" stroke="%s" stroke-width="8" stroke-linecap="round"/>`,
			y, y+30, a.Shell.Hex())
		fmt.Fprintf(&b, `<line x1="270" y1="%d" x2="330" y2="%d" stroke="%s" stroke-width="8" stroke-linecap="round"/>`,
			y, y+30, a.Shell.Hex())
	}

	// arms and claws
	r := clawRadius[a.ClawSize]
	fmt.Fprintf(&b, `<path d="M140 210 Q110 170 100 140" stroke="%s" stroke-width="10" fill="none"/>`, a.Shell.Hex())
	fmt.Fprintf(&b, `<path d="M260 210 Q290 170 300 140" stroke="%s" stroke-width="10" fill="none"/>`, a.Shell.Hex())
	fmt.Fprintf(&b, `<circle cx="100" cy="%d" r="%d" fill="%s"/>`, 140-r/2, r, a.Claw.Hex())
	fmt.Fprintf(&b, `<circle cx="300" cy="%d" r="%d" fill="%s"/>`, 140-r/2, r, a.Claw.Hex())
	fmt.Fprintf(&b, `<path d="M100 %d L%d %d" stroke="%s" stroke-width="6"/>`, 140-r/2, 100+r, 140-r, a.Background.Hex())
	fmt.Fprintf(&b, `<path d="M300 %d L%d %d" stroke="%s" stroke-width="6"/>`, 140-r/2, 300-r, 140-r, a.Background.Hex())

	// body
	fmt.Fprintf(&b, `<ellipse cx="200" cy="240" rx="95" ry="65" fill="%s"/>`, a.Shell.Hex())
	fmt.Fprintf(&b, `<ellipse cx="200" cy="262" rx="55" ry="30" fill="%s"/>`, a.Belly.Hex())
	writePattern(&b, a)

	// eye stalks
	fmt.Fprintf(&b, `<line x1="175" y1="185" x2="170" y2="150" stroke="%s" stroke-width="6"/>`, a.Shell.Hex())
	fmt.Fprintf(&b, `<line x1="225" y1="185" x2="230" y2="150" stroke="%s" stroke-width="6"/>`, a.Shell.Hex())
	writeEyes(&b, a)
	writeMouth(&b, a)

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

func writePattern(b *strings.Builder, a Attributes) {
	switch a.Pattern {
	case PatternSpots:
		for _, p := range [][2]int{{160, 215}, {240, 215}, {200, 200}, {135, 245}, {265, 245}} {
			fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="7" fill="%s" opacity="0.6"/>`, p[0], p[1], a.Claw.Hex())
		}
	case PatternStripes:
		for i := 0; i < 3; i++ {
			y := 200 + i*14
			fmt.Fprintf(b, `<path d="M%d %d Q200 %d %d %d" stroke="%s" stroke-width="5" fill="none" opacity="0.6"/>`,
				130+i*8, y, y-12, 270-i*8, y, a.Claw.Hex())
		}
	}
}

func writeEyes(b *strings.Builder, a Attributes) {
	for _, x := range []int{170, 230} {
		switch a.EyeStyle {
		case EyeStyleSleepy:
			fmt.Fprintf(b, `<circle cx="%d" cy="142" r="12" fill="#ffffff"/>`, x)
			fmt.Fprintf(b, `<rect x="%d" y="130" width="26" height="12" fill="%s"/>`, x-13, a.Shell.Hex())
			fmt.Fprintf(b, `<circle cx="%d" cy="146" r="5" fill="%s"/>`, x, a.Eye.Hex())
		case EyeStyleWide:
			fmt.Fprintf(b, `<circle cx="%d" cy="142" r="16" fill="#ffffff"/>`, x)
			fmt.Fprintf(b, `<circle cx="%d" cy="142" r="8" fill="%s"/>`, x, a.Eye.Hex())
		default:
			fmt.Fprintf(b, `<circle cx="%d" cy="142" r="12" fill="#ffffff"/>`, x)
			fmt.Fprintf(b, `<circle cx="%d" cy="142" r="6" fill="%s"/>`, x, a.Eye.Hex())
		}
	}
}

func writeMouth(b *strings.Builder, a Attributes) {
	switch a.Mood {
	case MoodGrumpy:
		b.WriteString(`<path d="M185 232 Q200 220 215 232" stroke="#1f1f1f" stroke-width="4" fill="none"/>`)
	case MoodSurprised:
		b.WriteString(`<circle cx="200" cy="228" r="7" fill="#1f1f1f"/>`)
	default:
		b.WriteString(`<path d="M185 224 Q200 238 215 224" stroke="#1f1f1f" stroke-width="4" fill="none"/>`)
	}
}
