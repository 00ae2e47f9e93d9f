package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/minutemeet/pkg/config"
)

// InferenceClient is a minimal client for a hosted summarization model
type InferenceClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewInferenceClient creates an inference client using values from the
// provided config. Pass a nil config to fall back to environment variables.
// Returns nil when no endpoint is configured so callers can skip the remote
// path entirely.
func NewInferenceClient(cfg *config.InferenceConfig) *InferenceClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("INFERENCE_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("INFERENCE_API_URL")
	}
	if base == "" {
		return nil
	}

	model := "facebook/bart-large-cnn"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	timeout := 30 * time.Second
	if cfg != nil && cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &InferenceClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// SummarizeRequest is the shape for summarization requests
type SummarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters SummarizeParameters `json:"parameters"`
}

// SummarizeParameters controls generation bounds
type SummarizeParameters struct {
	MaxLength int  `json:"max_length,omitempty"`
	MinLength int  `json:"min_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

// SummarizeResponse is a minimal response shape
type SummarizeResponse []struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends the transcript to the hosted model and returns the summary.
// Transient failures are retried with exponential backoff.
func (ic *InferenceClient) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	reqBody := SummarizeRequest{
		Inputs: text,
		Parameters: SummarizeParameters{
			MaxLength: maxLength,
			MinLength: minLength,
			DoSample:  false,
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s", ic.baseURL, ic.model)

	var summary string
	callFn := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		if ic.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+ic.apiKey)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := ic.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		// 503 means the model is still loading; retry
		if resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("inference endpoint returned status %d", resp.StatusCode))
		}

		var sr SummarizeResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			return backoff.Permanent(err)
		}
		if len(sr) == 0 || sr[0].SummaryText == "" {
			return backoff.Permanent(fmt.Errorf("empty response from inference endpoint"))
		}
		summary = sr[0].SummaryText
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(callFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return summary, nil
}
