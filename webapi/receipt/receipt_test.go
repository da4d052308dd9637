package receipt_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/llm"
	"github.com/autoconnect/backend/pkg/provider/ocr"
	receiptsvc "github.com/autoconnect/backend/pkg/service/receipt"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/autoconnect/backend/webapi/receipt"
	"github.com/autoconnect/backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var jpeg = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}

type ReceiptTestSuite struct {
	testutils.E2ETestSuite
	token string
}

func (s *ReceiptTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	_, s.token = s.CreateTestUserWithToken()
}

func (s *ReceiptTestSuite) TestScan_Lines() {
	s.OCR.On("ReadText", mock.Anything, jpeg).Return(`["HP FUEL STATION","PETROL 35.2L","TOTAL 3250.75"]`, nil).Once()

	resp := s.MakeUpload("/api/receipts/scan", receipt.FormField, jpeg, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var out receiptsvc.Result
	s.DecodeJSON(resp, &out)
	s.Equal([]string{"HP FUEL STATION", "PETROL 35.2L", "TOTAL 3250.75"}, out.Lines)
	s.Nil(out.Receipt)
	s.LLM.AssertNotCalled(s.T(), "CompleteJSON", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReceiptTestSuite) TestScan_Extract() {
	s.OCR.On("ReadText", mock.Anything, jpeg).Return(`["HP FUEL STATION","TOTAL 3250.75"]`, nil).Once()
	s.LLM.On("CompleteJSON", mock.Anything, mock.Anything, "HP FUEL STATION\nTOTAL 3250.75").
		Return(json.RawMessage(`{"merchant":"HP FUEL STATION","total":3250.75,"currency":"INR"}`), nil).Once()

	resp := s.MakeUpload("/api/receipts/scan?extract=true", receipt.FormField, jpeg, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var out receiptsvc.Result
	s.DecodeJSON(resp, &out)
	s.JSONEq(`{"merchant":"HP FUEL STATION","total":3250.75,"currency":"INR"}`, string(out.Receipt))
}

func (s *ReceiptTestSuite) TestScan_Failures() {
	tests := []struct {
		name   string
		ocrErr error
		status int
		reason string
	}{
		{"no text", ocr.ErrNoText, fiber.StatusUnprocessableEntity, "No text extracted"},
		{
			"upstream down",
			domain.NewAdapterError(ocr.Adapter, domain.ErrRequestFailed, "OCR request failed: 503", nil),
			fiber.StatusBadGateway,
			"OCR request failed: 503",
		},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.OCR.On("ReadText", mock.Anything, jpeg).Return("", tc.ocrErr).Once()

			resp := s.MakeUpload("/api/receipts/scan", receipt.FormField, jpeg, s.token)
			s.Equal(tc.status, resp.StatusCode)
			var env common.ErrorResponse
			s.DecodeJSON(resp, &env)
			s.Equal("Receipt scan failed", env.Message)
			s.Equal(tc.reason, env.Error)
		})
	}
}

func (s *ReceiptTestSuite) TestScan_ExtractionFailure() {
	s.OCR.On("ReadText", mock.Anything, jpeg).Return(`["A"]`, nil).Once()
	s.LLM.On("CompleteJSON", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.NewAdapterError(llm.Adapter, domain.ErrInvalidResponseFormat, "LLM returned invalid JSON", nil)).Once()

	resp := s.MakeUpload("/api/receipts/scan?extract=true", receipt.FormField, jpeg, s.token)
	s.Equal(fiber.StatusBadGateway, resp.StatusCode)
}

func (s *ReceiptTestSuite) TestScan_ExtractWithoutLLM() {
	s.App = fiber.New()
	receipt.Routes(s.App, receiptsvc.New(s.OCR, nil, slog.New(slog.NewTextHandler(io.Discard, nil))), s.Cfg)

	resp := s.MakeUpload("/api/receipts/scan?extract=true", receipt.FormField, jpeg, s.token)
	s.Equal(fiber.StatusBadGateway, resp.StatusCode)
	var env common.ErrorResponse
	s.DecodeJSON(resp, &env)
	s.Equal("Receipt scan failed", env.Message)
	s.Equal("LLM is not configured", env.Error)
	s.OCR.AssertNotCalled(s.T(), "ReadText", mock.Anything, mock.Anything)

	s.OCR.On("ReadText", mock.Anything, jpeg).Return(`["A"]`, nil).Once()
	resp = s.MakeUpload("/api/receipts/scan", receipt.FormField, jpeg, s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *ReceiptTestSuite) TestScan_NoFile() {
	for name, field := range map[string]string{"no file part": "", "wrong field": "image"} {
		s.Run(name, func() {
			var file []byte
			if field != "" {
				file = jpeg
			}
			resp := s.MakeUpload("/api/receipts/scan", field, file, s.token)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			var env common.ErrorResponse
			s.DecodeJSON(resp, &env)
			s.Equal("No file uploaded", env.Error)
		})
	}
}

func (s *ReceiptTestSuite) TestScan_RequiresToken() {
	resp := s.MakeUpload("/api/receipts/scan", receipt.FormField, jpeg, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func TestReceiptTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptTestSuite))
}
