package uri

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/feral-file/rustaceans/internal/adapter"
)

const (
	// MimeTypeJSON is the media type of the token metadata document
	MimeTypeJSON = "application/json"
	// MimeTypeSVG is the media type of the token image
	MimeTypeSVG = "image/svg+xml"

	dataScheme   = "data:"
	base64Marker = "base64"
)

// DataURI is a parsed RFC 2397 data URI
type DataURI struct {
	MimeType    string   // declared media type, "text/plain" when omitted
	Params      []string // media type parameters such as charset=utf-8
	Base64      bool
	DecodedData []byte
}

// Codec builds and parses inlined resources
//
//go:generate mockgen -source=data_uri.go -destination=../mocks/data_uri.go -package=mocks -mock_names=Codec=MockDataURICodec
type Codec interface {
	// Encode inlines payload as data:<mediaType>;base64,<payload>
	Encode(mediaType string, payload []byte) string
	// Parse decodes a data URI
	Parse(dataURI string) (*DataURI, error)
}

type codec struct {
	base64 adapter.Base64
}

// NewCodec creates a data URI codec
func NewCodec(b64 adapter.Base64) Codec {
	return &codec{base64: b64}
}

func (c *codec) Encode(mediaType string, payload []byte) string {
	var b strings.Builder
	b.Grow(len(dataScheme) + len(mediaType) + len(base64Marker) + 2 + (len(payload)+2)/3*4)
	b.WriteString(dataScheme)
	b.WriteString(mediaType)
	b.WriteByte(';')
	b.WriteString(base64Marker)
	b.WriteByte(',')
	b.WriteString(c.base64.Encode(payload))
	return b.String()
}

func (c *codec) Parse(dataURI string) (*DataURI, error) {
	if !strings.HasPrefix(dataURI, dataScheme) {
		return nil, errors.New("invalid data URI: must start with 'data:'")
	}

	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURI, dataScheme), ",")
	if !ok {
		return nil, errors.New("invalid data URI format: missing comma separator")
	}

	parts := strings.Split(header, ";")
	parsed := &DataURI{MimeType: strings.TrimSpace(parts[0])}
	if parsed.MimeType == "" {
		parsed.MimeType = "text/plain"
	}

	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, base64Marker) {
			parsed.Base64 = true
			continue
		}
		if p != "" {
			parsed.Params = append(parsed.Params, p)
		}
	}

	if parsed.Base64 {
		data, err := c.base64.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		parsed.DecodedData = data
		return parsed, nil
	}

	data, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape data: %w", err)
	}
	parsed.DecodedData = []byte(data)
	return parsed, nil
}
