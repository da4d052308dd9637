// Package ocr defines the text-recognition adapter.
package ocr

import (
	"context"

	"github.com/autoconnect/backend/pkg/domain"
)

// Adapter is the AdapterError.Adapter value for OCR failures.
const Adapter = "ocr"

var (
	ErrNoFile = domain.NewAdapterError(Adapter, domain.ErrInvalidInput, "No file uploaded", nil)
	ErrNoText = domain.NewAdapterError(Adapter, domain.ErrEmptyResult, "No text extracted", nil)
)

// Reader extracts printed text lines from an image.
type Reader interface {
	// ReadText returns the recognized lines encoded as a JSON array of strings.
	ReadText(ctx context.Context, image []byte) (string, error)
}
