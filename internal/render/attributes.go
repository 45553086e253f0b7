// Package render derives the appearance of a token from its id and
// serializes it as an inlined SVG wrapped in inlined JSON metadata.
package render

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/palette"
)

var seedDomain = []byte("rustacean")

// seed slots, one keccak digest per slot
const (
	slotBackground uint8 = iota
	slotShell
	slotClaw
	slotEye
	slotBelly
	slotClawSize
	slotEyeStyle
	slotPattern
	slotMood
)

type EyeStyle string

const (
	EyeStyleRound  EyeStyle = "round"
	EyeStyleSleepy EyeStyle = "sleepy"
	EyeStyleWide   EyeStyle = "wide"
)

type Pattern string

const (
	PatternPlain   Pattern = "plain"
	PatternSpots   Pattern = "spots"
	PatternStripes Pattern = "stripes"
)

type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodGrumpy    Mood = "grumpy"
	MoodSurprised Mood = "surprised"
)

var (
	eyeStyles = []EyeStyle{EyeStyleRound, EyeStyleSleepy, EyeStyleWide}
	patterns  = []Pattern{PatternPlain, PatternSpots, PatternStripes}
	moods     = []Mood{MoodHappy, MoodGrumpy, MoodSurprised}
)

// Attributes are the visual traits of one token
type Attributes struct {
	Background palette.Color
	Shell      palette.Color
	Claw       palette.Color
	Eye        palette.Color
	Belly      palette.Color
	ClawSize   int // 0 small, 1 medium, 2 large
	EyeStyle   EyeStyle
	Pattern    Pattern
	Mood       Mood
}

// Seed returns the 64-bit seed for the given slot of a token:
// the first 8 bytes of keccak256("rustacean" || uint256(id) || uint8(slot)).
func Seed(id domain.TokenID, slot uint8) uint64 {
	idBytes := math.U256Bytes(new(big.Int).SetUint64(uint64(id)))
	h := crypto.Keccak256(seedDomain, idBytes, []byte{slot})
	return binary.BigEndian.Uint64(h[:8])
}

// DeriveAttributes computes the traits of id using p for colors
func DeriveAttributes(p palette.Provider, id domain.TokenID) Attributes {
	return Attributes{
		Background: p.ColorFor(Seed(id, slotBackground)),
		Shell:      p.ColorFor(Seed(id, slotShell)),
		Claw:       p.ColorFor(Seed(id, slotClaw)),
		Eye:        p.ColorFor(Seed(id, slotEye)),
		Belly:      p.ColorFor(Seed(id, slotBelly)),
		ClawSize:   int(Seed(id, slotClawSize) % 3),
		EyeStyle:   eyeStyles[Seed(id, slotEyeStyle)%uint64(len(eyeStyles))],
		Pattern:    patterns[Seed(id, slotPattern)%uint64(len(patterns))],
		Mood:       moods[Seed(id, slotMood)%uint64(len(moods))],
	}
}

func (a Attributes) clawSizeName() string {
	switch a.ClawSize {
	case 0:
		return "small"
	case 1:
		return "medium"
	default:
		return "large"
	}
}
