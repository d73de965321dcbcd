package tool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	ai "github.com/lexdraft/lexdraft"
)

const defaultTavilyURL = "https://api.tavily.com/search"

// SearchToolOption configures the search tool.
type SearchToolOption func(*searchToolConfig)

type searchToolConfig struct {
	apiKey     string
	baseURL    string
	maxResults int
	client     *http.Client
}

// WithSearchMaxResults limits the number of search results.
// Default is 5.
func WithSearchMaxResults(n int) SearchToolOption {
	return func(c *searchToolConfig) {
		c.maxResults = n
	}
}

// WithSearchBaseURL overrides the Tavily endpoint. Mainly for tests.
func WithSearchBaseURL(url string) SearchToolOption {
	return func(c *searchToolConfig) {
		c.baseURL = url
	}
}

// WithSearchHTTPClient sets a custom HTTP client.
func WithSearchHTTPClient(client *http.Client) SearchToolOption {
	return func(c *searchToolConfig) {
		c.client = client
	}
}

func applySearchOpts(apiKey string, opts []SearchToolOption) *searchToolConfig {
	cfg := &searchToolConfig{
		apiKey:     apiKey,
		baseURL:    defaultTavilyURL,
		maxResults: 5,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// searchArgs defines arguments for the search tool.
type searchArgs struct {
	Query string `json:"query" desc:"The search query" required:"true"`
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// NewSearchTool creates the web search tool backed by the Tavily API.
//
// Search failures (network errors, non-200 responses) are reported through
// the handler error and end up as tool-result content, never as a fatal
// orchestrator error.
func NewSearchTool(apiKey string, opts ...SearchToolOption) (ai.Tool, Handler) {
	cfg := applySearchOpts(apiKey, opts)

	t := ai.Tool{
		Name: "search",
		Description: "Search the web for current information, legal precedents, " +
			"statutes, or cases. Returns a list of relevant results.",
		Parameters: ai.MustSchemaFor[searchArgs](),
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args searchArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", fmt.Errorf("search: invalid arguments: %w", err)
		}
		if args.Query == "" {
			return "", fmt.Errorf("search: query is required")
		}

		results, err := cfg.search(ctx, args.Query)
		if err != nil {
			return "", err
		}

		out, err := json.Marshal(results)
		if err != nil {
			return "", fmt.Errorf("search: encode results: %w", err)
		}
		return string(out), nil
	}

	return t, handler
}

func (c *searchToolConfig) search(ctx context.Context, query string) ([]tavilyResult, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: c.maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("search: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("search: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search: status %d: %s", resp.StatusCode, msg)
	}

	var decoded tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("search: decode response: %w", err)
	}

	if len(decoded.Results) > c.maxResults {
		decoded.Results = decoded.Results[:c.maxResults]
	}
	return decoded.Results, nil
}
