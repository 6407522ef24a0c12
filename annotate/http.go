package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// HTTPEngine calls an external annotation server (a spaCy or CoreNLP
// wrapper) over JSON. The server receives {"text": ...} and responds with
// {"sentences": [...]} in the Sentence wire shape.
type HTTPEngine struct {
	url    string
	client *http.Client
}

func NewHTTPEngine(url string, timeout time.Duration) *HTTPEngine {
	client := retryablehttp.NewClient()
	client.Logger = nil

	standard := client.StandardClient()
	standard.Timeout = timeout

	return &HTTPEngine{
		url:    url,
		client: standard,
	}
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Sentences []Sentence `json:"sentences"`
}

func (e *HTTPEngine) Annotate(ctx context.Context, text string) ([]Sentence, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation engine returned %v: %v", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var r annotateResponse
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}

	for i, sentence := range r.Sentences {
		if !sentence.Aligned() {
			return nil, fmt.Errorf("sentence %v: annotation arrays are not aligned", i)
		}
	}

	return r.Sentences, nil
}
