// Package custom_http is the JSON and multipart HTTP client shared by the
// REST-style provider adapters.
package custom_http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
)

// maxErrorBody caps how much of a failed response is echoed into errors
const maxErrorBody = 2048

// Client sends authenticated requests to one provider and classifies failures
type Client struct {
	provider   string
	authHeader string
	authValue  string
	client     *http.Client
	logger     *zap.Logger
}

// NewClient creates a client that sets authHeader: authValue on every request.
// A zero timeout leaves requests bounded only by their context.
func NewClient(provider, authHeader, authValue string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		provider:   provider,
		authHeader: authHeader,
		authValue:  authValue,
		client:     &http.Client{Timeout: timeout},
		logger:     logging.OrNop(logger),
	}
}

// PostMultipart streams filePath under fileField together with fields and
// decodes the JSON response into out.
func (c *Client) PostMultipart(ctx context.Context, url, fileField, filePath string, fields map[string]string, out interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.KindInvalidInput, "open audio file")
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer file.Close()
		pw.CloseWithError(writeForm(writer, fileField, filePath, file, fields))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, pr)
	if err != nil {
		pr.Close()
		return apperrors.Wrap(err, apperrors.KindInternal, "create request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, out)
}

func writeForm(writer *multipart.Writer, fileField, filePath string, file io.Reader, fields map[string]string) error {
	part, err := writer.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy audio data: %w", err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	return writer.Close()
}

// PostFile streams the raw bytes of filePath as the request body
func (c *Client) PostFile(ctx context.Context, url, filePath string, out interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.KindInvalidInput, "open audio file")
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, file)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "create request")
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if info, err := file.Stat(); err == nil {
		req.ContentLength = info.Size()
	}

	return c.do(req, out)
}

// PostJSON sends body as JSON and decodes the JSON response into out
func (c *Client) PostJSON(ctx context.Context, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// GetJSON fetches url and decodes the JSON response into out
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindInternal, "create request")
	}
	return c.do(req, out)
}

// GetBytes fetches url and returns the raw response body
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindInternal, "create request")
	}

	var body []byte
	err = c.send(req, func(r io.Reader) error {
		var readErr error
		body, readErr = io.ReadAll(r)
		return readErr
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	return c.send(req, func(r io.Reader) error {
		if out == nil {
			return nil
		}
		return json.NewDecoder(r).Decode(out)
	})
}

func (c *Client) send(req *http.Request, read func(io.Reader) error) error {
	if c.authHeader != "" {
		req.Header.Set(c.authHeader, c.authValue)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.KindUpstreamRequest, "%s request", c.provider)
	}
	defer resp.Body.Close()

	c.logger.Debug("provider response",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return apperrors.UpstreamStatus(c.provider, resp.StatusCode, string(bytes.TrimSpace(body)))
	}

	if err := read(resp.Body); err != nil {
		return apperrors.Wrapf(err, apperrors.KindUpstreamRequest, "%s: decode response", c.provider)
	}
	return nil
}
