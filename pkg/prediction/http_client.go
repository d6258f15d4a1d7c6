package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"farmtwin/pkg/apperr"
)

type httpClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTP returns a Client for the ML service at baseURL, e.g.
// "http://localhost:5000/api".
func NewHTTP(baseURL string) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *httpClient) PredictYield(ctx context.Context, req YieldRequest) (*Result, error) {
	return c.post(ctx, "/predict-yield", req, "failed to get yield prediction")
}

func (c *httpClient) PredictIrrigation(ctx context.Context, req IrrigationRequest) (*Result, error) {
	return c.post(ctx, "/predict-irrigation", req, "failed to get irrigation prediction")
}

func (c *httpClient) post(ctx context.Context, path string, payload any, genericMsg string) (*Result, error) {
	b, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, genericMsg, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.Upstream, genericMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// prefer the upstream-supplied error text
		var upstream struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&upstream); err == nil && upstream.Error != "" {
			return nil, apperr.New(apperr.Upstream, upstream.Error)
		}
		return nil, apperr.New(apperr.Upstream, genericMsg)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, genericMsg, err)
	}
	return &out, nil
}

func (c *httpClient) ReloadModels(ctx context.Context) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reload-models", nil)
	if err != nil {
		return 0, nil, apperr.Wrap(apperr.Upstream, "failed to reach model service", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, apperr.Wrap(apperr.Upstream, "failed to reach model service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, apperr.Wrap(apperr.Upstream, "failed to read model service response", err)
	}
	return resp.StatusCode, body, nil
}
