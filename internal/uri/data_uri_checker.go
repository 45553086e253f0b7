package uri

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DataURICheckResult represents the result of validating a data URI
type DataURICheckResult struct {
	Valid            bool
	Error            *string
	MimeType         string // Detected mime type from content
	DeclaredMimeType string // Declared mime type in URI
	Data             []byte // Decoded payload, set when the URI parsed
}

// DataURIChecker verifies that an inlined resource is what it claims to be
//
//go:generate mockgen -source=data_uri_checker.go -destination=../mocks/data_uri_checker.go -package=mocks -mock_names=DataURIChecker=MockDataURIChecker
type DataURIChecker interface {
	// Check validates a data URI:
	// 1. Format follows RFC 2397
	// 2. Declared mime type is one of the allowed types
	// 3. Content matches the declared mime type using magic numbers
	Check(dataURI string) DataURICheckResult
}

type dataURIChecker struct {
	codec   Codec
	allowed []string
}

// NewDataURIChecker creates a checker accepting the given mime types.
// An entry ending in "/" (e.g. "image/") accepts the whole top-level type.
func NewDataURIChecker(codec Codec, allowed ...string) DataURIChecker {
	return &dataURIChecker{codec: codec, allowed: allowed}
}

// Check validates a data URI
func (c *dataURIChecker) Check(dataURI string) DataURICheckResult {
	parsed, err := c.codec.Parse(dataURI)
	if err != nil {
		return failed(err.Error(), "", "")
	}

	if !c.isAllowed(parsed.MimeType) {
		return failed(fmt.Sprintf("unsupported mime type: %s", parsed.MimeType), parsed.MimeType, "")
	}

	if len(parsed.DecodedData) == 0 {
		return failed("invalid data URI: empty data", parsed.MimeType, "")
	}

	detected := mimetype.Detect(parsed.DecodedData).String()
	if !mimeTypesMatch(parsed.MimeType, detected) {
		return failed(fmt.Sprintf("mime type mismatch: declared %s but detected %s", parsed.MimeType, detected), parsed.MimeType, detected)
	}

	return DataURICheckResult{
		Valid:            true,
		MimeType:         detected,
		DeclaredMimeType: parsed.MimeType,
		Data:             parsed.DecodedData,
	}
}

func (c *dataURIChecker) isAllowed(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	for _, a := range c.allowed {
		a = strings.ToLower(a)
		if strings.HasSuffix(a, "/") && strings.HasPrefix(mimeType, a) {
			return true
		}
		if mimeType == a {
			return true
		}
	}
	return false
}

func failed(msg, declared, detected string) DataURICheckResult {
	return DataURICheckResult{
		Valid:            false,
		Error:            &msg,
		DeclaredMimeType: declared,
		MimeType:         detected,
	}
}

// mimeTypesMatch compares ignoring case and parameters;
// image/svg and image/svg+xml are treated as equivalent
func mimeTypesMatch(declared, detected string) bool {
	declared = strings.ToLower(strings.TrimSpace(declared))
	detected = strings.ToLower(strings.TrimSpace(detected))

	if declared == detected {
		return true
	}

	if (declared == "image/svg" && detected == MimeTypeSVG) ||
		(declared == MimeTypeSVG && detected == "image/svg") {
		return true
	}

	declaredBase := strings.Split(declared, ";")[0]
	detectedBase := strings.Split(detected, ";")[0]

	return strings.TrimSpace(declaredBase) == strings.TrimSpace(detectedBase)
}
