// Package receipt turns a photographed receipt into text lines and,
// optionally, a structured receipt object.
package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/llm"
	"github.com/autoconnect/backend/pkg/provider/ocr"
)

const systemPrompt = `You extract structured data from receipt text.
Reply with a single JSON object with keys:
"merchant" (string), "date" (YYYY-MM-DD or empty), "total" (number),
"currency" (ISO 4217 code or empty) and "items" (array of {"name": string, "quantity": number, "price": number}).
Use null for values that are not present in the text.`

// Result is the outcome of a scan. Receipt is set only when extraction ran.
type Result struct {
	Lines   []string        `json:"lines"`
	Receipt json.RawMessage `json:"receipt,omitempty"`
}

var (
	// ErrOCRDisabled is returned when no vision endpoint is configured.
	ErrOCRDisabled = domain.NewAdapterError(ocr.Adapter, domain.ErrRequestFailed, "OCR is not configured", nil)
	// ErrLLMDisabled reports a structured extraction request without an LLM.
	ErrLLMDisabled = domain.NewAdapterError(llm.Adapter, domain.ErrRequestFailed, "LLM is not configured", nil)
)

type Service struct {
	reader    ocr.Reader
	completer llm.Completer
	logger    *slog.Logger
}

// New creates a receipt Service. completer may be nil, which disables
// extraction; a nil reader makes every scan fail with ErrOCRDisabled.
func New(reader ocr.Reader, completer llm.Completer, logger *slog.Logger) *Service {
	return &Service{reader: reader, completer: completer, logger: logger}
}

// CanExtract reports whether structured extraction is available.
func (s *Service) CanExtract() bool {
	return s.completer != nil
}

// Scan runs OCR on image. When extract is true and an LLM is configured the
// recognized lines are also sent for structured extraction.
func (s *Service) Scan(ctx context.Context, image []byte, extract bool) (*Result, error) {
	log := s.logger.With("context", "Scan", "bytes", len(image))
	if len(image) == 0 {
		return nil, ocr.ErrNoFile
	}
	if s.reader == nil {
		return nil, ErrOCRDisabled
	}

	raw, err := s.reader.ReadText(ctx, image)
	if err != nil {
		log.Warn("ocr failed", "error", err)
		return nil, err
	}
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, domain.NewAdapterError(
			ocr.Adapter, domain.ErrInvalidResponseFormat,
			fmt.Sprintf("OCR returned malformed lines: %v", err), err,
		)
	}
	if len(lines) == 0 {
		return nil, ocr.ErrNoText
	}
	res := &Result{Lines: lines}

	if !extract || s.completer == nil {
		return res, nil
	}
	out, err := s.completer.CompleteJSON(ctx, systemPrompt, strings.Join(lines, "\n"))
	if err != nil {
		log.Warn("receipt extraction failed", "error", err)
		return nil, err
	}
	res.Receipt = out
	log.Info("receipt extracted", "lines", len(lines))
	return res, nil
}
