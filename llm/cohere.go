package llm

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const defaultCohereModel = "command-r-08-2024"

type cohereCompleter struct {
	client *cohereclient.Client
	model  string
}

func newCohereCompleter(apiKey, model string) *cohereCompleter {
	if model == "" {
		model = defaultCohereModel
	}
	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere
	// edge.
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &cohereCompleter{client: client, model: model}
}

func (c *cohereCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	model := c.model
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &model,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("cohere chat returned empty response")
	}
	return resp.Text, nil
}
