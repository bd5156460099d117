package storage

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrContentMismatch is returned when the bytes of an upload are not an image
// of the type its extension claims.
var ErrContentMismatch = errors.New("file content does not match its extension")

var contentTypeExtensions = map[string]map[string]bool{
	"image/jpeg": {"jpg": true, "jpeg": true},
	"image/png":  {"png": true},
	"image/gif":  {"gif": true},
	"image/webp": {"webp": true},
}

// ValidateContent sniffs the first 512 bytes of r and checks them against ext.
// r is rewound before returning.
func ValidateContent(r io.ReadSeeker, ext string) error {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("read upload: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind upload: %w", err)
	}

	contentType := http.DetectContentType(buf[:n])
	if exts, ok := contentTypeExtensions[contentType]; ok && exts[ext] {
		return nil
	}
	return fmt.Errorf("%w: detected %s for .%s", ErrContentMismatch, contentType, ext)
}
