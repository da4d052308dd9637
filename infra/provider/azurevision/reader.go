// Package azurevision reads receipt text with Azure AI Vision Image Analysis.
package azurevision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/provider/ocr"
)

const (
	moduleName    = "azurevision"
	moduleVersion = "v1.0.0"
	apiVersion    = "2024-02-01"
	keyHeader     = "Ocp-Apim-Subscription-Key"
)

// Reader implements ocr.Reader.
type Reader struct {
	endpoint string
	pipeline runtime.Pipeline
	logger   *slog.Logger
}

var _ ocr.Reader = (*Reader)(nil)

type subscriptionKeyPolicy struct {
	key string
}

func (p subscriptionKeyPolicy) Do(req *policy.Request) (*http.Response, error) {
	req.Raw().Header.Set(keyHeader, p.key)
	return req.Next()
}

// New builds a Reader. options may be nil; retries are always disabled.
func New(cfg *config.Vision, options *azcore.ClientOptions, logger *slog.Logger) *Reader {
	opts := azcore.ClientOptions{}
	if options != nil {
		opts = *options
	}
	opts.Retry.MaxRetries = -1
	if logger == nil {
		logger = slog.Default()
	}
	pl := runtime.NewPipeline(moduleName, moduleVersion, runtime.PipelineOptions{
		PerCall: []policy.Policy{subscriptionKeyPolicy{key: cfg.ApiKey}},
	}, &opts)
	return &Reader{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		pipeline: pl,
		logger:   logger.With("provider", "azure-vision"),
	}
}

type analyzeResult struct {
	ReadResult *struct {
		Blocks []struct {
			Lines []struct {
				Text string `json:"text"`
			} `json:"lines"`
		} `json:"blocks"`
	} `json:"readResult"`
}

// ReadText implements ocr.Reader.
func (r *Reader) ReadText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ocr.ErrNoFile
	}

	url := fmt.Sprintf("%s/computervision/imageanalysis:analyze?features=read&api-version=%s", r.endpoint, apiVersion)
	req, err := runtime.NewRequest(ctx, http.MethodPost, url)
	if err != nil {
		return "", requestFailed(err)
	}
	if err := req.SetBody(streaming.NopCloser(bytes.NewReader(image)), "application/octet-stream"); err != nil {
		return "", requestFailed(err)
	}

	resp, err := r.pipeline.Do(req)
	if err != nil {
		r.logger.Error("image analysis request failed", "error", err)
		return "", requestFailed(err)
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		err := runtime.NewResponseError(resp)
		r.logger.Error("image analysis rejected", "status", resp.StatusCode, "error", err)
		return "", requestFailed(err)
	}

	body, err := runtime.Payload(resp)
	if err != nil {
		return "", requestFailed(err)
	}
	var result analyzeResult
	if err := json.Unmarshal(body, &result); err != nil {
		return "", domain.NewAdapterError(
			ocr.Adapter,
			domain.ErrInvalidResponseFormat,
			fmt.Sprintf("OCR returned invalid JSON: %v", err),
			err,
		)
	}

	lines := make([]string, 0)
	if result.ReadResult != nil {
		for _, b := range result.ReadResult.Blocks {
			for _, l := range b.Lines {
				lines = append(lines, l.Text)
			}
		}
	}
	if len(lines) == 0 {
		return "", ocr.ErrNoText
	}

	out, err := json.Marshal(lines)
	if err != nil {
		return "", err
	}
	r.logger.Debug("text extracted", "lines", len(lines))
	return string(out), nil
}

func requestFailed(err error) error {
	return domain.NewAdapterError(
		ocr.Adapter,
		domain.ErrRequestFailed,
		fmt.Sprintf("OCR request failed: %v", err),
		err,
	)
}
