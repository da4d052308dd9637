// Package receipt exposes OCR receipt scanning over HTTP.
package receipt

import (
	"errors"
	"io"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/middleware"
	"github.com/autoconnect/backend/pkg/provider/ocr"
	receiptsvc "github.com/autoconnect/backend/pkg/service/receipt"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// FormField is the multipart field carrying the image.
const FormField = "receipt"

func Routes(app *fiber.App, receiptSvc *receiptsvc.Service, cfg *config.App) {
	app.Post("/api/receipts/scan", middleware.JwtProtected(cfg.Auth.Jwt), Scan(receiptSvc))
}

// Scan returns a Fiber handler running OCR over an uploaded receipt.
// @Summary Scan a receipt
// @Description Extracts text lines from the uploaded image. With extract=true it also returns a structured receipt, or 502 when no LLM is configured.
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param receipt formData file true "Receipt image"
// @Param extract query bool false "Run structured extraction"
// @Success 200 {object} receiptsvc.Result
// @Failure 400 {object} common.ErrorResponse "No file uploaded"
// @Failure 422 {object} common.ErrorResponse "No text extracted"
// @Failure 502 {object} common.ErrorResponse "Upstream failure"
// @Router /api/receipts/scan [post]
// @Security Bearer
func Scan(receiptSvc *receiptsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, err := readUpload(c)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Receipt scan failed", err)
		}
		extract := c.QueryBool("extract")
		if extract && !receiptSvc.CanExtract() {
			return common.ErrorResponseJSON(c, fiber.StatusBadGateway, "Receipt scan failed", receiptsvc.ErrLLMDisabled)
		}
		res, err := receiptSvc.Scan(c.UserContext(), image, extract)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Receipt scan failed", err)
		}
		return c.JSON(res)
	}
}

func readUpload(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile(FormField)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, ocr.ErrNoFile
		}
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint: errcheck
	return io.ReadAll(f)
}
