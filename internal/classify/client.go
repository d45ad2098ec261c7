package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Classification errors.
var (
	ErrEmptyItem          = errors.New("item cannot be empty")
	ErrInvalidCategory    = errors.New("invalid waste category")
	ErrServiceUnavailable = errors.New("classification service unavailable")
	ErrNotConfigured      = errors.New("classification endpoint not configured")
)

// MaxGuideWords bounds the length of a remote disposal guide.
const MaxGuideWords = 15

// DefaultTimeout bounds a remote classification call.
const DefaultTimeout = 10 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 64 << 10

// Source records where a classification came from.
type Source string

const (
	SourceGuide  Source = "guide"
	SourceCache  Source = "cache"
	SourceRemote Source = "remote"
)

// Result is a classified item.
type Result struct {
	Item

	Source Source `json:"source"`
}

// Classifier classifies a free-text item name.
type Classifier interface {
	Classify(ctx context.Context, item string) (Result, error)
}

type classifyRequest struct {
	Item string `json:"item"`
}

type classifyResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Guide    string `json:"guide"`
}

// HTTPClient classifies items through a JSON endpoint. It POSTs
// {"item": "..."} and expects {"name", "category", "guide"}.
type HTTPClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPClient creates a client for endpoint. A nil client gets one with
// DefaultTimeout.
func NewHTTPClient(endpoint, apiKey string, client *http.Client) *HTTPClient {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPClient{endpoint: strings.TrimSpace(endpoint), apiKey: apiKey, client: client}
}

// Classify calls the remote endpoint. Transport, status and decode failures
// wrap ErrServiceUnavailable; an unknown category is ErrInvalidCategory.
func (h *HTTPClient) Classify(ctx context.Context, item string) (Result, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return Result{}, ErrEmptyItem
	}
	if h.endpoint == "" {
		return Result{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, ErrNotConfigured)
	}

	body, err := json.Marshal(classifyRequest{Item: item})
	if err != nil {
		return Result{}, fmt.Errorf("encode classify request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: build classify request: %w", ErrServiceUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: classify request: %w", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: classify returned %s", ErrServiceUnavailable, resp.Status)
	}

	var out classifyResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); decodeErr != nil {
		return Result{}, fmt.Errorf("%w: decode classify response: %w", ErrServiceUnavailable, decodeErr)
	}

	category, err := ParseCategory(out.Category)
	if err != nil {
		return Result{}, err
	}
	name := strings.TrimSpace(out.Name)
	if name == "" {
		name = item
	}
	return Result{
		Item:   Item{Name: name, Category: category, Guide: TrimWords(out.Guide, MaxGuideWords)},
		Source: SourceRemote,
	}, nil
}

// TrimWords keeps the first n whitespace-separated words of s.
func TrimWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
