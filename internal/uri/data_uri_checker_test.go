package uri_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/uri"
)

func strPtr(s string) *string {
	return &s
}

func TestDataURIChecker_Check(t *testing.T) {
	checker := uri.NewDataURIChecker(uri.NewCodec(adapter.NewBase64()), uri.MimeTypeSVG, "image/svg", uri.MimeTypeJSON)

	svgData := `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100"><circle cx="50" cy="50" r="40" fill="red"/></svg>`
	validSVGBase64 := base64.StdEncoding.EncodeToString([]byte(svgData))

	tests := []struct {
		name                   string
		dataURI                string
		expectValid            bool
		expectError            *string
		expectMimeType         string
		expectDeclaredMimeType string
	}{
		{
			name:                   "valid SVG with base64",
			dataURI:                "data:image/svg+xml;base64," + validSVGBase64,
			expectValid:            true,
			expectMimeType:         "image/svg+xml",
			expectDeclaredMimeType: "image/svg+xml",
		},
		{
			name:                   "SVG with image/svg mime type (without +xml)",
			dataURI:                "data:image/svg;base64," + validSVGBase64,
			expectValid:            true,
			expectMimeType:         "image/svg+xml",
			expectDeclaredMimeType: "image/svg",
		},
		{
			name:                   "valid JSON document",
			dataURI:                "data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte(`{"name":"Rustacean #0"}`)),
			expectValid:            true,
			expectMimeType:         "application/json",
			expectDeclaredMimeType: "application/json",
		},
		{
			name:        "missing data: prefix",
			dataURI:     "image/svg+xml;base64," + validSVGBase64,
			expectValid: false,
			expectError: strPtr("invalid data URI: must start with 'data:'"),
		},
		{
			name:        "missing comma separator",
			dataURI:     "data:image/svg+xml;base64" + validSVGBase64,
			expectValid: false,
			expectError: strPtr("invalid data URI format: missing comma separator"),
		},
		{
			name:                   "empty data",
			dataURI:                "data:image/svg+xml;base64,",
			expectValid:            false,
			expectError:            strPtr("invalid data URI: empty data"),
			expectDeclaredMimeType: "image/svg+xml",
		},
		{
			name:        "invalid base64 encoding",
			dataURI:     "data:image/svg+xml;base64,!!!invalid!!!",
			expectValid: false,
			expectError: strPtr("failed to decode base64: illegal base64 data at input byte 0"),
		},
		{
			name:                   "unsupported mime type",
			dataURI:                "data:image/png;base64," + validSVGBase64,
			expectValid:            false,
			expectError:            strPtr("unsupported mime type: image/png"),
			expectDeclaredMimeType: "image/png",
		},
		{
			name:                   "omitted mime type defaults to text/plain",
			dataURI:                "data:;base64," + validSVGBase64,
			expectValid:            false,
			expectError:            strPtr("unsupported mime type: text/plain"),
			expectDeclaredMimeType: "text/plain",
		},
		{
			name:                   "declared SVG but content is text",
			dataURI:                "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte("not an image")),
			expectValid:            false,
			expectError:            strPtr("mime type mismatch: declared image/svg+xml but detected text/plain; charset=utf-8"),
			expectMimeType:         "text/plain; charset=utf-8",
			expectDeclaredMimeType: "image/svg+xml",
		},
		{
			name:                   "case insensitive mime type",
			dataURI:                "data:IMAGE/SVG+XML;base64," + validSVGBase64,
			expectValid:            true,
			expectMimeType:         "image/svg+xml",
			expectDeclaredMimeType: "IMAGE/SVG+XML",
		},
		{
			name:                   "charset parameter is ignored",
			dataURI:                "data:image/svg+xml;charset=utf-8;base64," + validSVGBase64,
			expectValid:            true,
			expectMimeType:         "image/svg+xml",
			expectDeclaredMimeType: "image/svg+xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checker.Check(tt.dataURI)

			assert.Equal(t, tt.expectValid, result.Valid, "Valid mismatch")

			if tt.expectError != nil {
				if assert.NotNil(t, result.Error, "Expected error but got nil") {
					assert.Equal(t, *tt.expectError, *result.Error, "Error message mismatch")
				}
			} else {
				assert.Nil(t, result.Error, "Expected no error but got: %v", result.Error)
			}

			if tt.expectMimeType != "" {
				assert.Equal(t, tt.expectMimeType, result.MimeType, "MimeType mismatch")
			}

			if tt.expectDeclaredMimeType != "" {
				assert.Equal(t, tt.expectDeclaredMimeType, result.DeclaredMimeType, "DeclaredMimeType mismatch")
			}
		})
	}
}

func TestCodec_EncodeParse(t *testing.T) {
	codec := uri.NewCodec(adapter.NewBase64())

	encoded := codec.Encode(uri.MimeTypeJSON, []byte(`{"a":1}`))
	assert.Equal(t, "data:application/json;base64,eyJhIjoxfQ==", encoded)

	parsed, err := codec.Parse(encoded)
	assert.NoError(t, err)
	assert.Equal(t, uri.MimeTypeJSON, parsed.MimeType)
	assert.True(t, parsed.Base64)
	assert.Equal(t, []byte(`{"a":1}`), parsed.DecodedData)
}

func TestCodec_ParsePercentEncoded(t *testing.T) {
	codec := uri.NewCodec(adapter.NewBase64())

	parsed, err := codec.Parse("data:text/plain;charset=utf-8,hello%20crab")
	assert.NoError(t, err)
	assert.False(t, parsed.Base64)
	assert.Equal(t, []string{"charset=utf-8"}, parsed.Params)
	assert.Equal(t, "hello crab", string(parsed.DecodedData))
}
