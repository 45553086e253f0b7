package render

import (
	"fmt"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/palette"
	"github.com/feral-file/rustaceans/internal/uri"
)

const (
	tokenName   = "Rustacean"
	description = "Rustaceans are crafted from Cranes. Every crab is drawn from its token id alone."
)

// Trait is one entry of the metadata attributes list
type Trait struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Metadata is the token metadata document
type Metadata struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Attributes  []Trait `json:"attributes"`
}

// Renderer turns token ids into metadata documents.
// It holds no state beyond its collaborators and performs no I/O.
type Renderer interface {
	// Attributes returns the visual traits of id
	Attributes(id domain.TokenID) Attributes
	// SVG returns the image of id
	SVG(id domain.TokenID) []byte
	// Metadata returns the metadata document of id
	Metadata(id domain.TokenID) Metadata
	// MetadataJSON returns the canonical JSON encoding of the metadata document
	MetadataJSON(id domain.TokenID) ([]byte, error)
	// TokenURI returns the metadata as a data:application/json;base64 URI
	TokenURI(id domain.TokenID) (string, error)
}

type renderer struct {
	palette palette.Provider
	json    adapter.JSON
	codec   uri.Codec
}

// NewRenderer creates a renderer. json should be canonical so that equal
// documents always encode to the same bytes.
func NewRenderer(p palette.Provider, json adapter.JSON, codec uri.Codec) Renderer {
	return &renderer{palette: p, json: json, codec: codec}
}

func (r *renderer) Attributes(id domain.TokenID) Attributes {
	return DeriveAttributes(r.palette, id)
}

func (r *renderer) SVG(id domain.TokenID) []byte {
	return buildSVG(r.Attributes(id))
}

func (r *renderer) Metadata(id domain.TokenID) Metadata {
	a := r.Attributes(id)
	return Metadata{
		Name:        fmt.Sprintf("%s #%s", tokenName, id),
		Description: description,
		Image:       r.codec.Encode(uri.MimeTypeSVG, buildSVG(a)),
		Attributes: []Trait{
			{TraitType: "Background", Value: a.Background.Hex()},
			{TraitType: "Shell", Value: a.Shell.Hex()},
			{TraitType: "Claw", Value: a.Claw.Hex()},
			{TraitType: "Eye", Value: a.Eye.Hex()},
			{TraitType: "Belly", Value: a.Belly.Hex()},
			{TraitType: "Claw Size", Value: a.clawSizeName()},
			{TraitType: "Eye Style", Value: string(a.EyeStyle)},
			{TraitType: "Pattern", Value: string(a.Pattern)},
			{TraitType: "Mood", Value: string(a.Mood)},
		},
	}
}

func (r *renderer) MetadataJSON(id domain.TokenID) ([]byte, error) {
	data, err := r.json.Marshal(r.Metadata(id))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata for token %s: %w", id, err)
	}
	return data, nil
}

func (r *renderer) TokenURI(id domain.TokenID) (string, error) {
	data, err := r.MetadataJSON(id)
	if err != nil {
		return "", err
	}
	return r.codec.Encode(uri.MimeTypeJSON, data), nil
}
