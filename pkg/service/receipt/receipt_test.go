package receipt_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/autoconnect/backend/internal/fixtures"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/llm"
	"github.com/autoconnect/backend/pkg/provider/ocr"
	"github.com/autoconnect/backend/pkg/service/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	image  = []byte{0xff, 0xd8, 0xff}
)

func TestScan_LinesOnly(t *testing.T) {
	reader := fixtures.NewMockOCRReader(t)
	reader.On("ReadText", mock.Anything, image).Return(`["Item 1","Item 2"]`, nil).Once()
	completer := fixtures.NewMockCompleter(t)

	res, err := receipt.New(reader, completer, logger).Scan(context.Background(), image, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Item 1", "Item 2"}, res.Lines)
	assert.Nil(t, res.Receipt)
	completer.AssertNotCalled(t, "CompleteJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestScan_Extract(t *testing.T) {
	reader := fixtures.NewMockOCRReader(t)
	reader.On("ReadText", mock.Anything, image).Return(`["FUEL STATION","TOTAL 1200.00"]`, nil).Once()
	completer := fixtures.NewMockCompleter(t)
	completer.On("CompleteJSON", mock.Anything, mock.AnythingOfType("string"), "FUEL STATION\nTOTAL 1200.00").
		Return(json.RawMessage(`{"merchant":"FUEL STATION","total":1200}`), nil).Once()

	res, err := receipt.New(reader, completer, logger).Scan(context.Background(), image, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"merchant":"FUEL STATION","total":1200}`, string(res.Receipt))
}

func TestScan_ExtractWithoutCompleter(t *testing.T) {
	reader := fixtures.NewMockOCRReader(t)
	reader.On("ReadText", mock.Anything, image).Return(`["A"]`, nil).Once()

	svc := receipt.New(reader, nil, logger)
	assert.False(t, svc.CanExtract())
	res, err := svc.Scan(context.Background(), image, true)
	require.NoError(t, err)
	assert.Nil(t, res.Receipt)
}

func TestScan_Errors(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		_, err := receipt.New(fixtures.NewMockOCRReader(t), nil, logger).Scan(context.Background(), nil, false)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.EqualError(t, err, "No file uploaded")
	})

	t.Run("ocr not configured", func(t *testing.T) {
		_, err := receipt.New(nil, nil, logger).Scan(context.Background(), image, false)
		assert.ErrorIs(t, err, receipt.ErrOCRDisabled)
	})

	t.Run("no text", func(t *testing.T) {
		reader := fixtures.NewMockOCRReader(t)
		reader.On("ReadText", mock.Anything, image).Return("", ocr.ErrNoText).Once()
		_, err := receipt.New(reader, nil, logger).Scan(context.Background(), image, false)
		assert.ErrorIs(t, err, domain.ErrEmptyResult)
	})

	t.Run("malformed lines", func(t *testing.T) {
		reader := fixtures.NewMockOCRReader(t)
		reader.On("ReadText", mock.Anything, image).Return("not json", nil).Once()
		_, err := receipt.New(reader, nil, logger).Scan(context.Background(), image, false)
		assert.ErrorIs(t, err, domain.ErrInvalidResponseFormat)
	})

	t.Run("llm failure", func(t *testing.T) {
		reader := fixtures.NewMockOCRReader(t)
		reader.On("ReadText", mock.Anything, image).Return(`["A"]`, nil).Once()
		completer := fixtures.NewMockCompleter(t)
		completer.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domain.NewAdapterError(llm.Adapter, domain.ErrRequestFailed, "LLM request failed: timeout", nil)).Once()

		_, err := receipt.New(reader, completer, logger).Scan(context.Background(), image, true)
		assert.ErrorIs(t, err, domain.ErrRequestFailed)
	})
}
