package security

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
)

// FileValidationResult contains the result of file validation
type FileValidationResult struct {
	Valid        bool   // Whether the file passed all validation checks
	DeclaredMIME string // Content type sent by the client
	DetectedMIME string // Content type sniffed from the payload
	Error        string // Error message if validation failed
}

// Magic byte signatures for the allowed image types
var magicBytes = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
}

// AllowedImageTypes lists the accepted upload content types.
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif"}

// NormalizeMIME lower-cases a content type and strips parameters.
func NormalizeMIME(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if contentType == "image/jpg" || contentType == "image/pjpeg" {
		return "image/jpeg"
	}
	return contentType
}

// IsAllowedImageType reports whether contentType is an accepted image MIME type.
func IsAllowedImageType(contentType string) bool {
	_, ok := magicBytes[NormalizeMIME(contentType)]
	return ok
}

// ValidateImage performs 3-layer image validation:
// 1. Size ceiling
// 2. Declared MIME type whitelist
// 3. Magic byte verification (content matches declared type)
func ValidateImage(declaredMIME string, data []byte, maxBytes int64) FileValidationResult {
	result := FileValidationResult{
		DeclaredMIME: NormalizeMIME(declaredMIME),
		DetectedMIME: http.DetectContentType(data),
	}

	if len(data) == 0 {
		result.Error = "file is empty"
		return result
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		result.Error = fmt.Sprintf("file size too large. Maximum size is %s", FormatBytes(maxBytes))
		return result
	}

	signatures, ok := magicBytes[result.DeclaredMIME]
	if !ok {
		result.Error = "invalid file type. Only JPEG, PNG and GIF are allowed"
		return result
	}

	if !hasSignature(data, signatures) {
		result.Error = "file content does not match its declared type"
		return result
	}

	result.Valid = true
	return result
}

func hasSignature(data []byte, signatures [][]byte) bool {
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}

// FormatBytes renders a byte count as a short human string (5MB, 512KB, 10B).
func FormatBytes(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%dB", n)
	}
}
